// Package entity contains the core business objects of the project.
package entity

import "time"

// IncidentCategory is the kind of reported incident.
type IncidentCategory string

const (
	CategoryAccident         IncidentCategory = "accident"
	CategoryFire             IncidentCategory = "fire"
	CategoryTheft            IncidentCategory = "theft"
	CategorySuspicious       IncidentCategory = "suspicious"
	CategoryLighting         IncidentCategory = "lighting"
	CategoryAssault          IncidentCategory = "assault"
	CategoryVandalism        IncidentCategory = "vandalism"
	CategoryHarassment       IncidentCategory = "harassment"
	CategoryRoadHazard       IncidentCategory = "roadHazard"
	CategoryAnimalDanger     IncidentCategory = "animalDanger"
	CategoryMedicalEmergency IncidentCategory = "medicalEmergency"
	CategoryNaturalDisaster  IncidentCategory = "naturalDisaster"
	CategoryPowerOutage      IncidentCategory = "powerOutage"
	CategoryWaterIssue       IncidentCategory = "waterIssue"
	CategoryNoise            IncidentCategory = "noise"
	CategoryTrespassing      IncidentCategory = "trespassing"
	CategoryDrugActivity     IncidentCategory = "drugActivity"
	CategoryWeaponSighting   IncidentCategory = "weaponSighting"
)

var categoryDisplayNames = map[IncidentCategory]string{
	CategoryAccident:         "Accident",
	CategoryFire:             "Fire",
	CategoryTheft:            "Theft",
	CategorySuspicious:       "Suspicious Activity",
	CategoryLighting:         "Lighting Issue",
	CategoryAssault:          "Assault",
	CategoryVandalism:        "Vandalism",
	CategoryHarassment:       "Harassment",
	CategoryRoadHazard:       "Road Hazard",
	CategoryAnimalDanger:     "Animal Danger",
	CategoryMedicalEmergency: "Medical Emergency",
	CategoryNaturalDisaster:  "Natural Disaster",
	CategoryPowerOutage:      "Power Outage",
	CategoryWaterIssue:       "Water Issue",
	CategoryNoise:            "Noise Complaint",
	CategoryTrespassing:      "Trespassing",
	CategoryDrugActivity:     "Drug Activity",
	CategoryWeaponSighting:   "Weapon Sighting",
}

// Valid reports whether c is one of the known categories.
func (c IncidentCategory) Valid() bool {
	_, ok := categoryDisplayNames[c]

	return ok
}

// DisplayName returns the human label, falling back to the raw value.
func (c IncidentCategory) DisplayName() string {
	if name, ok := categoryDisplayNames[c]; ok {
		return name
	}

	return string(c)
}

// Incident is a location-tagged report. Only ConfirmationCount and VerifiedAt
// change after creation.
type Incident struct {
	ID                int64            `json:"id"`
	Category          IncidentCategory `json:"category"`
	Latitude          float64          `json:"latitude"`
	Longitude         float64          `json:"longitude"`
	Title             string           `json:"title"`
	Description       *string          `json:"description"`
	NotifyNearby      bool             `json:"notify_nearby"`
	ConfirmationCount int              `json:"confirmed_by"`
	ReporterHash      *string          `json:"-"` // nil for anonymous reports
	VerifiedAt        *time.Time       `json:"verified_at,omitempty"`
	CreatedAt         time.Time        `json:"timestamp"`
}

// HasReporter reports whether the incident carries a reporter identity.
func (i *Incident) HasReporter() bool {
	return i.ReporterHash != nil && *i.ReporterHash != ""
}

// ReportedBy reports whether identityHash is the recorded reporter.
func (i *Incident) ReportedBy(identityHash string) bool {
	return i.HasReporter() && *i.ReporterHash == identityHash
}

// NearbyIncident is an incident annotated with its distance from a query point.
type NearbyIncident struct {
	Incident
	DistanceMeters float64 `json:"distance_meters"`
}
