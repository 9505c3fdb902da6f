package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"safezone/internal/domain/entity"
	"safezone/internal/domain/geo"
	"safezone/internal/domain/repository"
	"safezone/internal/usecase"
)

const (
	pushBodyMaxRunes      = 100
	incidentAlertDataType = "incident_alert"
)

type incidentNotifier struct {
	zoneIndex  usecase.SafeZoneIndex
	deviceRepo repository.DeviceRepository
	dispatcher usecase.NotificationDispatcher
	logger     *slog.Logger
}

// NewIncidentNotifier creates the fanout that runs after an incident commits.
func NewIncidentNotifier(
	zoneIndex usecase.SafeZoneIndex,
	deviceRepo repository.DeviceRepository,
	dispatcher usecase.NotificationDispatcher,
	logger *slog.Logger,
) usecase.IncidentNotifier {
	return &incidentNotifier{
		zoneIndex:  zoneIndex,
		deviceRepo: deviceRepo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// OnIncidentCreated notifies owners of zones containing the incident. Errors
// and panics end here.
func (n *incidentNotifier) OnIncidentCreated(ctx context.Context, incident *entity.Incident) {
	if incident == nil {
		return
	}

	logger := n.logger.With(slog.Int64("incident_id", incident.ID))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Incident notification panicked", slog.Any("panic", r))
		}
	}()

	if !incident.NotifyNearby {
		logger.Debug("Incident opted out of nearby notifications")

		return
	}

	hashes, err := n.zoneIndex.MatchDevices(ctx, geo.NewPoint(incident.Latitude, incident.Longitude))
	if err != nil {
		logger.Error("Failed to match safe zones", slog.Any("error", err))

		return
	}
	if len(hashes) == 0 {
		logger.Info("no zones matched")

		return
	}

	hashes = excludeReporter(hashes, incident)
	if len(hashes) == 0 {
		logger.Info("Only the reporter's zones matched")

		return
	}

	devices, err := n.deviceRepo.FindActiveByIdentityHashes(ctx, hashes)
	if err != nil {
		logger.Error("Failed to resolve devices for matched zones", slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		logger.Info("No active devices for matched zones", slog.Int("matched", len(hashes)))

		return
	}

	targets := make([]usecase.DispatchTarget, 0, len(devices))
	for _, device := range devices {
		targets = append(targets, usecase.DispatchTarget{
			IdentityHash: device.IdentityHash,
			FCMToken:     device.FCMToken,
		})
	}

	result := n.dispatcher.Dispatch(ctx, buildIncidentPayload(incident), targets)

	logger.Info("Incident fanout finished",
		slog.Int("matched", len(hashes)),
		slog.Int("targets", len(targets)),
		slog.Int("succeeded", result.SuccessCount),
		slog.Int("failed", len(result.Failures)),
	)
}

func excludeReporter(hashes []string, incident *entity.Incident) []string {
	if !incident.HasReporter() {
		return hashes
	}

	kept := make([]string, 0, len(hashes))
	for _, hash := range hashes {
		if !incident.ReportedBy(hash) {
			kept = append(kept, hash)
		}
	}

	return kept
}

func buildIncidentPayload(incident *entity.Incident) *usecase.IncidentPayload {
	body := truncateRunes(incident.Title, pushBodyMaxRunes)
	if body == "" && incident.Description != nil {
		body = truncateRunes(*incident.Description, pushBodyMaxRunes)
	}

	return &usecase.IncidentPayload{
		IncidentID: incident.ID,
		Title:      fmt.Sprintf("⚠️ %s Reported Nearby", incident.Category.DisplayName()),
		Body:       body,
		Data: map[string]string{
			"incident_id": strconv.FormatInt(incident.ID, 10),
			"category":    string(incident.Category),
			"latitude":    strconv.FormatFloat(incident.Latitude, 'f', -1, 64),
			"longitude":   strconv.FormatFloat(incident.Longitude, 'f', -1, 64),
			"timestamp":   incident.CreatedAt.UTC().Format(time.RFC3339),
			"type":        incidentAlertDataType,
		},
	}
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}
