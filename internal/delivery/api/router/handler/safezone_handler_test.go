package handler

import (
	"net/http"
	"testing"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/errors"
	mockUC "safezone/internal/mocks/usecase"
	"safezone/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestSafeZoneHandler(t *testing.T) (*SafeZoneHandler, *mockUC.MockSafeZoneUsecase) {
	safeZoneUC := mockUC.NewMockSafeZoneUsecase(t)

	return NewSafeZoneHandler(SafeZoneHandlerParams{SafeZoneUC: safeZoneUC, Logger: newDiscardLogger()}), safeZoneUC
}

const homeZoneBody = `{"name":"Home","latitude":25.033,"longitude":121.5654,"radius":300,"zone_type":"home"}`

func TestSafeZoneHandler_CreateZone(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, safeZoneUC := createTestSafeZoneHandler(t)
		safeZoneUC.EXPECT().
			CreateZone(mock.Anything, "device-1", mock.MatchedBy(func(in *usecase.SafeZoneInput) bool {
				return in.Name == "Home" && in.RadiusMeters == 300 && in.ZoneType == entity.ZoneTypeHome
			})).
			Return(&entity.SafeZone{ID: uuid.New(), Name: "Home", RadiusMeters: 300, IsActive: true}, nil)

		rec, body := serve(t, h.CreateZone, newJSONRequest(http.MethodPost, "/api/v1/safezones", homeZoneBody), "device-1")

		assert.Equal(t, http.StatusCreated, rec.Code)
		var zone entity.SafeZone
		decodeData(t, body, &zone)
		assert.Equal(t, "Home", zone.Name)
		assert.InDelta(t, 300.0, zone.RadiusMeters, 0.001)
	})

	for name, payload := range map[string]string{
		"zero radius":    `{"name":"Home","latitude":25,"longitude":121,"radius":0}`,
		"radius too big": `{"name":"Home","latitude":25,"longitude":121,"radius":50001}`,
		"unknown type":   `{"name":"Home","latitude":25,"longitude":121,"radius":10,"zone_type":"castle"}`,
		"missing name":   `{"latitude":25,"longitude":121,"radius":10}`,
	} {
		t.Run(name, func(t *testing.T) {
			h, _ := createTestSafeZoneHandler(t)

			rec, body := serve(t, h.CreateZone, newJSONRequest(http.MethodPost, "/api/v1/safezones", payload), "device-1")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		})
	}
}

func TestSafeZoneHandler_ListZones(t *testing.T) {
	h, safeZoneUC := createTestSafeZoneHandler(t)
	safeZoneUC.EXPECT().ListZones(mock.Anything, "device-1").Return([]*entity.SafeZone{{Name: "Home"}, {Name: "Work"}}, nil)

	rec, body := serve(t, h.ListZones, newJSONRequest(http.MethodGet, "/api/v1/safezones", ""), "device-1")

	assert.Equal(t, http.StatusOK, rec.Code)
	var zones []entity.SafeZone
	decodeData(t, body, &zones)
	assert.Len(t, zones, 2)
}

func TestSafeZoneHandler_UpdateZone(t *testing.T) {
	zoneID := uuid.New()

	t.Run("owner updates", func(t *testing.T) {
		h, safeZoneUC := createTestSafeZoneHandler(t)
		safeZoneUC.EXPECT().UpdateZone(mock.Anything, "device-1", zoneID, mock.Anything).
			Return(&entity.SafeZone{ID: zoneID, Name: "Home"}, nil)

		rec, _ := serve(t, h.UpdateZone,
			newJSONRequest(http.MethodPut, "/api/v1/safezones/"+zoneID.String(), homeZoneBody), "device-1", "id", zoneID.String())

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other owner is forbidden", func(t *testing.T) {
		h, safeZoneUC := createTestSafeZoneHandler(t)
		safeZoneUC.EXPECT().UpdateZone(mock.Anything, "device-2", zoneID, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrSafeZoneOwnershipViolation, "zone owned by another device"))

		rec, body := serve(t, h.UpdateZone,
			newJSONRequest(http.MethodPut, "/api/v1/safezones/"+zoneID.String(), homeZoneBody), "device-2", "id", zoneID.String())

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "SAFE_ZONE_OWNERSHIP_VIOLATION", body.Error.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h, _ := createTestSafeZoneHandler(t)

		rec, body := serve(t, h.UpdateZone,
			newJSONRequest(http.MethodPut, "/api/v1/safezones/nope", homeZoneBody), "device-1", "id", "nope")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", body.Error.Code)
	})
}

func TestSafeZoneHandler_SetZoneActive(t *testing.T) {
	zoneID := uuid.New()

	t.Run("deactivate", func(t *testing.T) {
		h, safeZoneUC := createTestSafeZoneHandler(t)
		safeZoneUC.EXPECT().SetZoneActive(mock.Anything, "device-1", zoneID, false).
			Return(&entity.SafeZone{ID: zoneID, IsActive: false}, nil)

		rec, _ := serve(t, h.SetZoneActive,
			newJSONRequest(http.MethodPatch, "/api/v1/safezones/"+zoneID.String()+"/active", `{"is_active":false}`),
			"device-1", "id", zoneID.String())

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("flag is required", func(t *testing.T) {
		h, _ := createTestSafeZoneHandler(t)

		rec, _ := serve(t, h.SetZoneActive,
			newJSONRequest(http.MethodPatch, "/api/v1/safezones/"+zoneID.String()+"/active", `{}`),
			"device-1", "id", zoneID.String())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSafeZoneHandler_DeleteZone(t *testing.T) {
	zoneID := uuid.New()
	h, safeZoneUC := createTestSafeZoneHandler(t)
	safeZoneUC.EXPECT().DeleteZone(mock.Anything, "device-1", zoneID).
		Return(errors.Wrap(domainerrors.ErrSafeZoneNotFound, "zone gone"))

	rec, body := serve(t, h.DeleteZone,
		newJSONRequest(http.MethodDelete, "/api/v1/safezones/"+zoneID.String(), ""), "device-1", "id", zoneID.String())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SAFE_ZONE_NOT_FOUND", body.Error.Code)
}
