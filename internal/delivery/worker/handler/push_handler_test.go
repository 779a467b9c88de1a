package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leafcare/config"
	"leafcare/internal/domain/constants"
	"leafcare/internal/domain/service"
	"leafcare/internal/errors"
	mockservice "leafcare/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, notifier service.NotificationService, verifier TokenVerifier) *PushHandler {
	t.Helper()

	return NewPushHandler(PushHandlerParams{
		Config:   &config.Config{Firebase: &config.FirebaseConfig{EventTopic: "plant-care"}},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Notifier: notifier,
		Verifier: verifier,
	})
}

func pushBody(t *testing.T, event service.CareEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/p/subscriptions/care-events-push"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(t *testing.T, h *PushHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

var careLogEvent = service.CareEvent{
	RequestID: "req-42",
	EventType: constants.EventCareLogCreated,
	EntityID:  "log-1",
	PlantID:   "plant-1",
	PlantName: "Monstera",
	CareType:  "water",
	Date:      "2024-03-10",
}

func TestHandlePush_SendsTopicNotification(t *testing.T) {
	notifier := mockservice.NewMockNotificationService(t)
	notifier.EXPECT().
		SendTopicNotification(mock.Anything, "plant-care", "Monstera got some care", "water logged on 2024-03-10",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["event_type"] == constants.EventCareLogCreated && data["plant_id"] == "plant-1"
			})).
		Return("fcm-1", nil)

	rec := doPush(t, newTestHandler(t, notifier, nil), pushBody(t, careLogEvent, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_ReminderCompleted(t *testing.T) {
	event := careLogEvent
	event.EventType = constants.EventCareReminderCompleted
	event.PlantName = ""

	notifier := mockservice.NewMockNotificationService(t)
	notifier.EXPECT().
		SendTopicNotification(mock.Anything, "plant-care", "water reminder done", "A plant was taken care of on 2024-03-10", mock.Anything).
		Return("fcm-2", nil)

	rec := doPush(t, newTestHandler(t, notifier, nil), pushBody(t, event, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_Responses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     func(t *testing.T) string
		verifier TokenVerifier
		setup    func(n *mockservice.MockNotificationService)
		wantCode int
	}{
		{
			name:     "rejected token",
			body:     func(t *testing.T) string { return pushBody(t, careLogEvent, nil) },
			verifier: func(*http.Request) error { return errors.New("bad token") },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "malformed envelope",
			body:     func(*testing.T) string { return "{not json" },
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "data is not base64",
			body:     func(*testing.T) string { return `{"message":{"data":"%%%"}}` },
			wantCode: http.StatusBadRequest,
		},
		{
			name: "data is not an event",
			body: func(*testing.T) string {
				return `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("plain")) + `"}}`
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown event type is dropped",
			body: func(t *testing.T) string {
				event := careLogEvent
				event.EventType = "plant.renamed"

				return pushBody(t, event, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "notifications disabled is dropped",
			body: func(t *testing.T) string { return pushBody(t, careLogEvent, nil) },
			setup: func(n *mockservice.MockNotificationService) {
				n.EXPECT().SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return("", service.ErrNotificationsDisabled)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "provider failure is retried",
			body: func(t *testing.T) string { return pushBody(t, careLogEvent, nil) },
			setup: func(n *mockservice.MockNotificationService) {
				n.EXPECT().SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return("", errors.New("fcm unavailable"))
			},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			notifier := mockservice.NewMockNotificationService(t)
			if tt.setup != nil {
				tt.setup(notifier)
			}

			rec := doPush(t, newTestHandler(t, notifier, tt.verifier), tt.body(t))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestExtractRequestID(t *testing.T) {
	t.Parallel()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	event := service.CareEvent{RequestID: "from-event"}

	assert.Equal(t, "from-attr", extractRequestID(t.Context(), &msg, &event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", extractRequestID(t.Context(), &msg, &event))

	event.RequestID = ""
	assert.NotEmpty(t, extractRequestID(t.Context(), &msg, &event))
}

func TestVerifyPubSubToken_RejectsMissingBearer(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/events", nil)
	require.Error(t, verifyPubSubToken(req))

	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	require.Error(t, verifyPubSubToken(req))
}

func TestNewPushHandler_DefaultTopic(t *testing.T) {
	t.Parallel()

	h := NewPushHandler(PushHandlerParams{
		Config:   &config.Config{},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Notifier: mockservice.NewMockNotificationService(t),
	})

	assert.Equal(t, defaultEventTopic, h.topic)
	assert.Nil(t, h.verifyToken)
}
