package entity

import (
	"time"

	"github.com/google/uuid"
)

// ZoneType classifies a safe zone.
type ZoneType string

const (
	ZoneTypeHome   ZoneType = "home"
	ZoneTypeWork   ZoneType = "work"
	ZoneTypeSchool ZoneType = "school"
	ZoneTypeCustom ZoneType = "custom"
)

// Valid reports whether t is a known zone type.
func (t ZoneType) Valid() bool {
	switch t {
	case ZoneTypeHome, ZoneTypeWork, ZoneTypeSchool, ZoneTypeCustom:
		return true
	default:
		return false
	}
}

// SafeZone is a circular geofence owned by a device identity.
type SafeZone struct {
	ID            uuid.UUID `json:"id"`
	OwnerHash     string    `json:"-"`               // sha256 of the owning device id, used for matching
	SealedOwner   string    `json:"-"`               // encrypted owning device id
	Name          string    `json:"name"`            // user label, e.g. "Home"
	Latitude      float64   `json:"latitude"`        // center latitude
	Longitude     float64   `json:"longitude"`       // center longitude
	RadiusMeters  float64   `json:"radius"`          // always > 0
	ZoneType      ZoneType  `json:"zone_type"`       // home/work/school/custom
	IsActive      bool      `json:"is_active"`       // only active zones are matched
	NotifyOnEnter bool      `json:"notify_on_enter"` // client-side geofence toggle
	NotifyOnExit  bool      `json:"notify_on_exit"`  // client-side geofence toggle
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
