// Package handler consumes care events pushed by Pub/Sub (or the local HTTP publisher).
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"leafcare/config"
	deliverycontext "leafcare/internal/delivery/context"
	"leafcare/internal/domain/constants"
	"leafcare/internal/domain/service"
	"leafcare/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const defaultEventTopic = "care-events"

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError marks failures that should make Pub/Sub redeliver the message
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TokenVerifier checks the OIDC token of a push request
type TokenVerifier func(req *http.Request) error

// PushHandler turns care events into topic notifications
type PushHandler struct {
	verifyToken TokenVerifier
	notifier    service.NotificationService
	topic       string
	logger      *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Notifier service.NotificationService
	Verifier TokenVerifier `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	topic := defaultEventTopic
	if params.Config.Firebase != nil && params.Config.Firebase.EventTopic != "" {
		topic = params.Config.Firebase.EventTopic
	}

	verify := params.Verifier
	if verify == nil && params.Config.Worker.VerifyPushAuth {
		verify = verifyPubSubToken
	}

	return &PushHandler{
		verifyToken: verify,
		notifier:    params.Notifier,
		topic:       topic,
		logger:      params.Logger,
	}
}

// HandlePush handles POST /events
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyToken != nil {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.CareEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse care event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing care event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("event_type", event.EventType),
		slog.String("plant_id", event.PlantID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process care event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)

		// 503 asks Pub/Sub to retry; 200 drops messages that can never succeed.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then the request header
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.CareEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

func (h *PushHandler) processEvent(ctx context.Context, event *service.CareEvent) error {
	title, body, err := describeEvent(event)
	if err != nil {
		return err
	}

	data := map[string]string{
		"event_type": event.EventType,
		"entity_id":  event.EntityID,
		"plant_id":   event.PlantID,
		"care_type":  event.CareType,
		"date":       event.Date,
	}

	messageID, err := h.notifier.SendTopicNotification(ctx, h.topic, title, body, data)
	if errors.Is(err, service.ErrNotificationsDisabled) {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("[Worker] Push notifications disabled, event dropped")

		return nil
	}
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Care event notification sent",
		slog.String("topic", h.topic),
		slog.String("fcm_message_id", messageID),
	)

	return nil
}

func describeEvent(event *service.CareEvent) (title, body string, err error) {
	plant := event.PlantName
	if plant == "" {
		plant = "A plant"
	}

	switch event.EventType {
	case constants.EventCareLogCreated:
		return fmt.Sprintf("%s got some care", plant),
			fmt.Sprintf("%s logged on %s", event.CareType, event.Date), nil
	case constants.EventCareReminderCompleted:
		return fmt.Sprintf("%s reminder done", event.CareType),
			fmt.Sprintf("%s was taken care of on %s", plant, event.Date), nil
	default:
		return "", "", errors.Errorf("unknown event type %q", event.EventType)
	}
}

// verifyPubSubToken validates the Google-signed OIDC token Pub/Sub attaches to push requests.
// The audience is the URL of the push endpoint.
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
