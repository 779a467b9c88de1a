package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"leafcare/config"
	"leafcare/internal/delivery/api/response"
	"leafcare/internal/delivery/api/validator"
	domainerrors "leafcare/internal/domain/errors"
	"leafcare/internal/domain/entity"
	"leafcare/internal/domain/repository"
	"leafcare/internal/errors"
	mockusecase "leafcare/internal/mocks/usecase"
	"leafcare/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func newContext(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Names must be set first: SetParamNames sizes the value slice that SetParamValues fills.
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	return c, rec
}

func TestNewContext_PathParams(t *testing.T) {
	id := uuid.NewString()

	c, _ := newContext(http.MethodGet, "/plants/by-location/"+id, "", "locationId", id, "kind", "label")

	assert.Equal(t, id, c.Param("locationId"))
	assert.Equal(t, "label", c.Param("kind"))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestSpeciesHandler_CreateSpecies(t *testing.T) {
	speciesUC := mockusecase.NewMockSpeciesUsecase(t)
	h := NewSpeciesHandler(SpeciesHandlerParams{SpeciesUC: speciesUC, Logger: discardLogger})

	created := &entity.Species{ID: uuid.New(), Name: "Ficus lyrata"}
	speciesUC.EXPECT().
		CreateSpecies(mock.Anything, mock.MatchedBy(func(in *usecase.CreateSpeciesInput) bool {
			return in.Name == "Ficus lyrata" && in.CareLevel == "moderate"
		})).
		Return(created, nil)

	c, rec := newContext(http.MethodPost, "/species", `{"name":"Ficus lyrata","careLevel":"moderate"}`)
	require.NoError(t, h.CreateSpecies(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.String())
}

func TestSpeciesHandler_ListSpecies(t *testing.T) {
	t.Run("filters are passed through", func(t *testing.T) {
		speciesUC := mockusecase.NewMockSpeciesUsecase(t)
		h := NewSpeciesHandler(SpeciesHandlerParams{SpeciesUC: speciesUC, Logger: discardLogger})

		speciesUC.EXPECT().
			ListSpecies(mock.Anything, repository.SpeciesFilter{LightRequirement: "high", CareLevel: "easy"}).
			Return([]*entity.Species{}, nil)

		c, rec := newContext(http.MethodGet, "/species?lightRequirement=high&careLevel=easy", "")
		require.NoError(t, h.ListSpecies(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown enum value is rejected", func(t *testing.T) {
		speciesUC := mockusecase.NewMockSpeciesUsecase(t)
		h := NewSpeciesHandler(SpeciesHandlerParams{SpeciesUC: speciesUC, Logger: discardLogger})

		c, rec := newContext(http.MethodGet, "/species?careLevel=trivial", "")
		require.NoError(t, h.ListSpecies(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Details, "careLevel")
	})
}

func TestSpeciesHandler_GetSpecies(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		param      string
		setup      func(uc *mockusecase.MockSpeciesUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed id",
			param:      "42",
			setup:      func(uc *mockusecase.MockSpeciesUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:  "missing species",
			param: id.String(),
			setup: func(uc *mockusecase.MockSpeciesUsecase) {
				uc.EXPECT().GetSpecies(mock.Anything, id).Return(nil, domainerrors.NotFound("species %s not found", id))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			speciesUC := mockusecase.NewMockSpeciesUsecase(t)
			tt.setup(speciesUC)
			h := NewSpeciesHandler(SpeciesHandlerParams{SpeciesUC: speciesUC, Logger: discardLogger})

			c, rec := newContext(http.MethodGet, "/species/"+tt.param, "", "id", tt.param)
			require.NoError(t, h.GetSpecies(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestSpeciesHandler_CanRemove(t *testing.T) {
	speciesUC := mockusecase.NewMockSpeciesUsecase(t)
	h := NewSpeciesHandler(SpeciesHandlerParams{SpeciesUC: speciesUC, Logger: discardLogger})
	id := uuid.New()

	speciesUC.EXPECT().CountPlants(mock.Anything, id).Return(int64(3), nil)

	c, rec := newContext(http.MethodGet, "/species/"+id.String()+"/can-remove", "", "id", id.String())
	require.NoError(t, h.CanRemove(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"canRemove":false,"plantCount":3}`, dataOf(t, rec))
}

func TestSpeciesHandler_UnclassifiedErrorIsReturned(t *testing.T) {
	speciesUC := mockusecase.NewMockSpeciesUsecase(t)
	h := NewSpeciesHandler(SpeciesHandlerParams{SpeciesUC: speciesUC, Logger: discardLogger})

	speciesUC.EXPECT().ListEasyCare(mock.Anything).Return(nil, errors.New("boom"))

	c, _ := newContext(http.MethodGet, "/species/easy-care", "")
	assert.EqualError(t, h.ListEasyCare(c), "boom")
}

func TestLocationHandler_IsEmpty(t *testing.T) {
	locationUC := mockusecase.NewMockLocationUsecase(t)
	h := NewLocationHandler(LocationHandlerParams{LocationUC: locationUC, Logger: discardLogger})
	id := uuid.New()

	locationUC.EXPECT().IsEmpty(mock.Anything, id).Return(true, int64(0), nil)

	c, rec := newContext(http.MethodGet, "/locations/"+id.String()+"/is-empty", "", "id", id.String())
	require.NoError(t, h.IsEmpty(c))

	assert.JSONEq(t, `{"isEmpty":true,"plantCount":0}`, dataOf(t, rec))
}

func TestLocationHandler_DeleteLocationConflict(t *testing.T) {
	locationUC := mockusecase.NewMockLocationUsecase(t)
	h := NewLocationHandler(LocationHandlerParams{LocationUC: locationUC, Logger: discardLogger})
	id := uuid.New()

	locationUC.EXPECT().DeleteLocation(mock.Anything, id).
		Return(errors.WithStack(domainerrors.Conflict("location %q cannot be removed: %d plant(s) are kept there", "Quarto", 2)))

	c, rec := newContext(http.MethodDelete, "/locations/"+id.String(), "", "id", id.String())
	require.NoError(t, h.DeleteLocation(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "Quarto")
}

func TestPlantHandler_ListByRelation(t *testing.T) {
	plantUC := mockusecase.NewMockPlantUsecase(t)
	h := NewPlantHandler(PlantHandlerParams{PlantUC: plantUC, Logger: discardLogger})
	locationID := uuid.New()
	speciesID := uuid.New()

	plantUC.EXPECT().ListPlants(mock.Anything, repository.PlantFilter{LocationID: locationID}).Return([]*entity.Plant{}, nil)
	plantUC.EXPECT().ListPlants(mock.Anything, repository.PlantFilter{SpeciesID: speciesID}).Return([]*entity.Plant{}, nil)

	c, rec := newContext(http.MethodGet, "/plants/location/x", "", "locationId", locationID.String())
	require.NoError(t, h.ListByLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/plants/species/x", "", "speciesId", speciesID.String())
	require.NoError(t, h.ListBySpecies(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPlantHandler_SearchByName(t *testing.T) {
	t.Run("no match", func(t *testing.T) {
		plantUC := mockusecase.NewMockPlantUsecase(t)
		h := NewPlantHandler(PlantHandlerParams{PlantUC: plantUC, Logger: discardLogger})

		plantUC.EXPECT().FindByName(mock.Anything, "cacto").Return(nil, nil)

		c, rec := newContext(http.MethodGet, "/plants/search?name=cacto", "")
		require.NoError(t, h.SearchByName(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, decodeError(t, rec).Details, "cacto")
	})

	t.Run("blank name", func(t *testing.T) {
		plantUC := mockusecase.NewMockPlantUsecase(t)
		h := NewPlantHandler(PlantHandlerParams{PlantUC: plantUC, Logger: discardLogger})

		c, rec := newContext(http.MethodGet, "/plants/search?name=%20", "")
		require.NoError(t, h.SearchByName(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPlantHandler_PlantLabel(t *testing.T) {
	plantUC := mockusecase.NewMockPlantUsecase(t)
	h := NewPlantHandler(PlantHandlerParams{PlantUC: plantUC, Logger: discardLogger})
	id := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\n")

	plantUC.EXPECT().PlantLabel(mock.Anything, id).Return(png, nil)

	c, rec := newContext(http.MethodGet, "/plants/"+id.String()+"/qr", "", "id", id.String())
	require.NoError(t, h.PlantLabel(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "plant-"+id.String()+".png")
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestCareReminderHandler_ListReminders(t *testing.T) {
	reminderUC := mockusecase.NewMockCareReminderUsecase(t)
	h := NewCareReminderHandler(CareReminderHandlerParams{ReminderUC: reminderUC, Logger: discardLogger})
	plantID := uuid.New()

	reminderUC.EXPECT().
		ListReminders(mock.Anything, repository.CareReminderFilter{PlantID: plantID, Type: "watering", ActiveOnly: true}).
		Return([]*entity.CareReminder{}, nil)

	c, rec := newContext(http.MethodGet, "/care-reminders?plantId="+plantID.String()+"&type=watering&active=true", "")
	require.NoError(t, h.ListReminders(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/care-reminders?plantId=abc", "")
	require.NoError(t, h.ListReminders(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCareReminderHandler_MarkDone(t *testing.T) {
	reminderUC := mockusecase.NewMockCareReminderUsecase(t)
	h := NewCareReminderHandler(CareReminderHandlerParams{ReminderUC: reminderUC, Logger: discardLogger})
	id := uuid.New()

	reminderUC.EXPECT().MarkDone(mock.Anything, id).
		Return(nil, domainerrors.Conflict("a %s reminder for plant %q due on %s already exists", "watering", "Jiboia", "2024-06-22"))

	c, rec := newContext(http.MethodPatch, "/care-reminders/"+id.String()+"/mark-done", "", "id", id.String())
	require.NoError(t, h.MarkDone(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", decodeError(t, rec).Code)
}

func TestCareLogHandler_ListLogs(t *testing.T) {
	logUC := mockusecase.NewMockCareLogUsecase(t)
	h := NewCareLogHandler(CareLogHandlerParams{LogUC: logUC, Logger: discardLogger})
	plantID := uuid.New()
	success := false

	logUC.EXPECT().
		ListLogs(mock.Anything, repository.CareLogFilter{
			PlantID: plantID,
			Type:    "pruning",
			Success: &success,
			From:    civil.Date{Year: 2024, Month: time.January, Day: 1},
			To:      civil.Date{Year: 2024, Month: time.March, Day: 31},
		}).
		Return([]*entity.CareLog{}, nil)

	target := "/care-logs?plantId=" + plantID.String() + "&type=pruning&success=false&from=2024-01-01&to=2024-03-31"
	c, rec := newContext(http.MethodGet, target, "")
	require.NoError(t, h.ListLogs(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCareLogHandler_ListLogsRejectsBadFilters(t *testing.T) {
	for _, query := range []string{"success=maybe", "from=someday", "type=misting"} {
		t.Run(query, func(t *testing.T) {
			logUC := mockusecase.NewMockCareLogUsecase(t)
			h := NewCareLogHandler(CareLogHandlerParams{LogUC: logUC, Logger: discardLogger})

			c, rec := newContext(http.MethodGet, "/care-logs?"+query, "")
			require.NoError(t, h.ListLogs(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCareLogHandler_CreateLogMalformedBody(t *testing.T) {
	logUC := mockusecase.NewMockCareLogUsecase(t)
	h := NewCareLogHandler(CareLogHandlerParams{LogUC: logUC, Logger: discardLogger})

	c, rec := newContext(http.MethodPost, "/care-logs", `["watering"]`)
	require.NoError(t, h.CreateLog(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "JSON object")
}

func TestHealthHandler(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "leafcare"

	t.Run("database up", func(t *testing.T) {
		h := NewHealthHandler(HealthHandlerParams{
			Config: cfg,
			DB:     pingFunc(func(context.Context) error { return nil }),
			Logger: discardLogger,
		})

		c, rec := newContext(http.MethodGet, "/health", "")
		require.NoError(t, h.Health(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","service":"leafcare","database":"up"}`, dataOf(t, rec))
	})

	t.Run("database down", func(t *testing.T) {
		h := NewHealthHandler(HealthHandlerParams{
			Config: cfg,
			DB:     pingFunc(func(context.Context) error { return errors.New("connection refused") }),
			Logger: discardLogger,
		})

		c, rec := newContext(http.MethodGet, "/health", "")
		require.NoError(t, h.Health(c))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, rec).Code)
	})
}

func dataOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return string(body.Data)
}
