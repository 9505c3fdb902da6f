package handler

import (
	"net/http"
	"testing"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/scoring"
	"safezone/internal/errors"
	mockUC "safezone/internal/mocks/usecase"
	"safezone/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type incidentHandlerFixtures struct {
	handler    *IncidentHandler
	incidentUC *mockUC.MockIncidentUsecase
	ledger     *mockUC.MockConfirmationLedger
}

func createTestIncidentHandler(t *testing.T) incidentHandlerFixtures {
	incidentUC := mockUC.NewMockIncidentUsecase(t)
	ledger := mockUC.NewMockConfirmationLedger(t)

	return incidentHandlerFixtures{
		handler: NewIncidentHandler(IncidentHandlerParams{
			IncidentUC: incidentUC,
			Ledger:     ledger,
			Logger:     newDiscardLogger(),
		}),
		incidentUC: incidentUC,
		ledger:     ledger,
	}
}

const validIncidentBody = `{"category":"theft","latitude":25.033,"longitude":121.5654,"title":"Bike stolen"}`

func TestIncidentHandler_CreateIncident(t *testing.T) {
	t.Run("anonymous report", func(t *testing.T) {
		fx := createTestIncidentHandler(t)
		fx.incidentUC.EXPECT().
			CreateIncident(mock.Anything, "", mock.MatchedBy(func(in *usecase.CreateIncidentInput) bool {
				return in.Category == entity.CategoryTheft && in.Title == "Bike stolen" && in.NotifyNearby == nil
			})).
			Return(&usecase.CreateIncidentOutput{Incident: &entity.Incident{ID: 11, Title: "Bike stolen"}}, nil)

		rec, body := serve(t, fx.handler.CreateIncident, newJSONRequest(http.MethodPost, "/api/v1/incidents", validIncidentBody), "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		var output struct {
			Incident struct {
				ID int64 `json:"id"`
			} `json:"incident"`
			Score *scoring.ScoreResult `json:"score"`
		}
		decodeData(t, body, &output)
		assert.Equal(t, int64(11), output.Incident.ID)
		assert.Nil(t, output.Score)
		assert.Equal(t, "req-test", body.Meta.RequestID)
	})

	t.Run("identified reporter", func(t *testing.T) {
		fx := createTestIncidentHandler(t)
		fx.incidentUC.EXPECT().
			CreateIncident(mock.Anything, "device-1", mock.Anything).
			Return(&usecase.CreateIncidentOutput{
				Incident: &entity.Incident{ID: 12},
				Score:    &scoring.ScoreResult{Earned: 12, TotalPoints: 12},
				Badges:   []entity.BadgeType{entity.BadgeFirstResponder},
			}, nil)

		rec, body := serve(t, fx.handler.CreateIncident, newJSONRequest(http.MethodPost, "/api/v1/incidents", validIncidentBody), "device-1")

		assert.Equal(t, http.StatusCreated, rec.Code)
		var output usecase.CreateIncidentOutput
		decodeData(t, body, &output)
		assert.Equal(t, 12, output.Score.Earned)
		assert.Equal(t, []entity.BadgeType{entity.BadgeFirstResponder}, output.Badges)
	})

	t.Run("validation", func(t *testing.T) {
		for name, payload := range map[string]string{
			"missing title":    `{"category":"theft","latitude":25.033,"longitude":121.5654}`,
			"missing category": `{"latitude":25.033,"longitude":121.5654,"title":"x"}`,
			"bad latitude":     `{"category":"theft","latitude":95,"longitude":121.5654,"title":"x"}`,
			"malformed json":   `{"category":`,
		} {
			t.Run(name, func(t *testing.T) {
				fx := createTestIncidentHandler(t)

				rec, body := serve(t, fx.handler.CreateIncident, newJSONRequest(http.MethodPost, "/api/v1/incidents", payload), "")

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
			})
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		fx := createTestIncidentHandler(t)
		fx.incidentUC.EXPECT().CreateIncident(mock.Anything, "", mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown incident category"))

		rec, body := serve(t, fx.handler.CreateIncident, newJSONRequest(http.MethodPost, "/api/v1/incidents", validIncidentBody), "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	})
}

func TestIncidentHandler_ListIncidents(t *testing.T) {
	fx := createTestIncidentHandler(t)
	fx.incidentUC.EXPECT().
		ListIncidents(mock.Anything, &usecase.ListIncidentsInput{Category: entity.CategoryFire, Limit: 20, Offset: 0}).
		Return([]*entity.Incident{{ID: 3}, {ID: 2}}, nil)

	rec, body := serve(t, fx.handler.ListIncidents,
		newJSONRequest(http.MethodGet, "/api/v1/incidents?category=fire&limit=20&offset=-4", ""), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var incidents []entity.Incident
	decodeData(t, body, &incidents)
	assert.Len(t, incidents, 2)
}

func TestIncidentHandler_GetIncident(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestIncidentHandler(t)
		fx.incidentUC.EXPECT().GetIncident(mock.Anything, int64(5)).Return(&entity.Incident{ID: 5, Title: "Fire"}, nil)

		rec, body := serve(t, fx.handler.GetIncident, newJSONRequest(http.MethodGet, "/api/v1/incidents/5", ""), "", "id", "5")

		assert.Equal(t, http.StatusOK, rec.Code)
		var incident entity.Incident
		decodeData(t, body, &incident)
		assert.Equal(t, "Fire", incident.Title)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestIncidentHandler(t)
		fx.incidentUC.EXPECT().GetIncident(mock.Anything, int64(404)).
			Return(nil, errors.Wrap(domainerrors.ErrIncidentNotFound, "incident 404"))

		rec, body := serve(t, fx.handler.GetIncident, newJSONRequest(http.MethodGet, "/api/v1/incidents/404", ""), "", "id", "404")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "INCIDENT_NOT_FOUND", body.Error.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		fx := createTestIncidentHandler(t)

		rec, body := serve(t, fx.handler.GetIncident, newJSONRequest(http.MethodGet, "/api/v1/incidents/abc", ""), "", "id", "abc")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", body.Error.Code)
	})
}

func TestIncidentHandler_FindNearby(t *testing.T) {
	t.Run("passes the query through", func(t *testing.T) {
		fx := createTestIncidentHandler(t)
		fx.incidentUC.EXPECT().
			FindNearby(mock.Anything, &usecase.NearbyQuery{Latitude: 25.033, Longitude: 121.5654, RadiusKm: 2.5}).
			Return([]*entity.NearbyIncident{{Incident: entity.Incident{ID: 1}, DistanceMeters: 55.6}}, nil)

		rec, body := serve(t, fx.handler.FindNearby,
			newJSONRequest(http.MethodGet, "/api/v1/incidents/nearby?latitude=25.033&longitude=121.5654&radius_km=2.5", ""), "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var nearby []entity.NearbyIncident
		decodeData(t, body, &nearby)
		assert.InDelta(t, 55.6, nearby[0].DistanceMeters, 0.01)
	})

	for name, target := range map[string]string{
		"missing longitude": "/api/v1/incidents/nearby?latitude=25.033",
		"not a number":      "/api/v1/incidents/nearby?latitude=north&longitude=121.5",
		"bad radius":        "/api/v1/incidents/nearby?latitude=25&longitude=121&radius_km=far",
	} {
		t.Run(name, func(t *testing.T) {
			fx := createTestIncidentHandler(t)

			rec, body := serve(t, fx.handler.FindNearby, newJSONRequest(http.MethodGet, target, ""), "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		})
	}
}

func TestIncidentHandler_ConfirmIncident(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		fx := createTestIncidentHandler(t)
		fx.ledger.EXPECT().Confirm(mock.Anything, int64(9), "device-witness").Return(&usecase.ConfirmationResult{
			PointsEarned:      5,
			TotalPoints:       5,
			ConfirmationCount: 2,
			Message:           usecase.MessageConfirmed,
		}, nil)

		rec, body := serve(t, fx.handler.ConfirmIncident,
			newJSONRequest(http.MethodPost, "/api/v1/incidents/9/confirm", ""), "device-witness", "id", "9")

		assert.Equal(t, http.StatusOK, rec.Code)
		var result usecase.ConfirmationResult
		decodeData(t, body, &result)
		assert.Equal(t, 5, result.PointsEarned)
		assert.Equal(t, 2, result.ConfirmationCount)
		assert.Equal(t, usecase.MessageConfirmed, result.Message)
	})

	t.Run("already confirmed", func(t *testing.T) {
		fx := createTestIncidentHandler(t)
		fx.ledger.EXPECT().Confirm(mock.Anything, int64(9), "device-witness").
			Return(nil, errors.Wrap(domainerrors.ErrAlreadyConfirmed, "duplicate confirmation"))

		rec, body := serve(t, fx.handler.ConfirmIncident,
			newJSONRequest(http.MethodPost, "/api/v1/incidents/9/confirm", ""), "device-witness", "id", "9")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "ALREADY_CONFIRMED", body.Error.Code)
		assert.Equal(t, "You have already confirmed this incident", body.Error.Message)
	})

	t.Run("persistence failure", func(t *testing.T) {
		fx := createTestIncidentHandler(t)
		fx.ledger.EXPECT().Confirm(mock.Anything, int64(9), "device-witness").
			Return(nil, errors.Wrap(domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "confirm"), "failed to confirm incident"))

		rec, body := serve(t, fx.handler.ConfirmIncident,
			newJSONRequest(http.MethodPost, "/api/v1/incidents/9/confirm", ""), "device-witness", "id", "9")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", body.Error.Code)
		assert.Nil(t, body.Error.Details)
	})
}

func TestIncidentHandler_GetNotificationSummary(t *testing.T) {
	fx := createTestIncidentHandler(t)
	fx.incidentUC.EXPECT().NotificationSummary(mock.Anything, int64(4)).
		Return(&entity.NotificationSummary{IncidentID: 4, Total: 3, Succeeded: 2, Failed: 1}, nil)

	rec, body := serve(t, fx.handler.GetNotificationSummary,
		newJSONRequest(http.MethodGet, "/api/v1/incidents/4/notifications", ""), "", "id", "4")

	assert.Equal(t, http.StatusOK, rec.Code)
	var summary entity.NotificationSummary
	decodeData(t, body, &summary)
	assert.Equal(t, int64(3), summary.Total)
	assert.Equal(t, int64(1), summary.Failed)
}
