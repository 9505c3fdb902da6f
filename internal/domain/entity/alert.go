package entity

import (
	"fmt"
	"time"
)

// AlertSeverity grades how urgent an alert is.
type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
	SeverityLow    AlertSeverity = "low"
	SeverityInfo   AlertSeverity = "info"
)

// AlertType is the client-facing alert bucket.
type AlertType string

const (
	AlertTypeHighRisk       AlertType = "highRisk"
	AlertTypeTheft          AlertType = "theft"
	AlertTypeEventCrowd     AlertType = "eventCrowd"
	AlertTypeTrafficCleared AlertType = "trafficCleared"
)

var categorySeverity = map[IncidentCategory]AlertSeverity{
	CategoryAccident:         SeverityHigh,
	CategoryFire:             SeverityHigh,
	CategoryAssault:          SeverityHigh,
	CategoryMedicalEmergency: SeverityHigh,
	CategoryNaturalDisaster:  SeverityHigh,
	CategoryWeaponSighting:   SeverityHigh,
	CategoryTheft:            SeverityMedium,
	CategorySuspicious:       SeverityMedium,
	CategoryHarassment:       SeverityMedium,
	CategoryAnimalDanger:     SeverityMedium,
	CategoryDrugActivity:     SeverityMedium,
	CategoryTrespassing:      SeverityMedium,
	CategoryRoadHazard:       SeverityMedium,
	CategoryVandalism:        SeverityLow,
	CategoryPowerOutage:      SeverityLow,
	CategoryWaterIssue:       SeverityLow,
	CategoryLighting:         SeverityInfo,
	CategoryNoise:            SeverityInfo,
}

var categoryAlertType = map[IncidentCategory]AlertType{
	CategoryTheft:      AlertTypeTheft,
	CategoryVandalism:  AlertTypeTheft,
	CategoryRoadHazard: AlertTypeTrafficCleared,
	CategoryLighting:   AlertTypeTrafficCleared,
	CategoryNoise:      AlertTypeEventCrowd,
}

// Severity returns the alert severity for the category.
func (c IncidentCategory) Severity() AlertSeverity {
	if s, ok := categorySeverity[c]; ok {
		return s
	}

	return SeverityInfo
}

// AlertType returns the alert bucket for the category.
func (c IncidentCategory) AlertType() AlertType {
	if t, ok := categoryAlertType[c]; ok {
		return t
	}

	return AlertTypeHighRisk
}

// Alert is the read model shown in the alert feed. It is derived from an
// incident, never stored.
type Alert struct {
	IncidentID     int64            `json:"incident_id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Location       string           `json:"location"`
	Category       IncidentCategory `json:"category"`
	Severity       AlertSeverity    `json:"severity"`
	AlertType      AlertType        `json:"alert_type"`
	ConfirmedBy    int              `json:"confirmed_by"`
	DistanceMeters *float64         `json:"distance_meters,omitempty"`
	Timestamp      time.Time        `json:"timestamp"`
}

// NewAlert derives the alert view of an incident.
func NewAlert(incident *Incident) *Alert {
	description := ""
	if incident.Description != nil {
		description = *incident.Description
	}

	return &Alert{
		IncidentID:  incident.ID,
		Title:       incident.Category.DisplayName() + " Reported Nearby",
		Description: description,
		Location:    fmt.Sprintf("%.6f, %.6f", incident.Latitude, incident.Longitude),
		Category:    incident.Category,
		Severity:    incident.Category.Severity(),
		AlertType:   incident.Category.AlertType(),
		ConfirmedBy: incident.ConfirmationCount,
		Timestamp:   incident.CreatedAt,
	}
}
