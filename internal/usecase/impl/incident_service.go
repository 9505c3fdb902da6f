package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"safezone/config"
	deliverycontext "safezone/internal/delivery/context"
	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/geo"
	"safezone/internal/domain/repository"
	"safezone/internal/domain/service"
	"safezone/internal/errors"
	"safezone/internal/usecase"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const (
	maxIncidentTitleRunes = 200
	defaultIncidentLimit  = 50
	maxIncidentLimit      = 200
	// nearbyCandidateLimit caps the rows read from the bounding box before
	// exact distances are computed.
	nearbyCandidateLimit = 1000
)

type incidentService struct {
	txManager        repository.TransactionManager
	incidentRepo     repository.IncidentRepository
	notificationRepo repository.NotificationRepository
	identity         service.IdentityProtector
	scoring          usecase.ScoringService
	publisher        service.EventPublisher
	notifier         usecase.IncidentNotifier
	defaultCount     int
	fanoutTimeout    time.Duration
	logger           *slog.Logger
	now              func() time.Time
}

// IncidentServiceParams holds the incident service dependencies, injected by Fx.
type IncidentServiceParams struct {
	fx.In

	Config           *config.Config
	TxManager        repository.TransactionManager
	IncidentRepo     repository.IncidentRepository
	NotificationRepo repository.NotificationRepository
	Identity         service.IdentityProtector
	Scoring          usecase.ScoringService
	Publisher        service.EventPublisher
	Notifier         usecase.IncidentNotifier
	Logger           *slog.Logger
}

// NewIncidentService creates the incident service.
func NewIncidentService(params IncidentServiceParams) usecase.IncidentUsecase {
	return &incidentService{
		txManager:        params.TxManager,
		incidentRepo:     params.IncidentRepo,
		notificationRepo: params.NotificationRepo,
		identity:         params.Identity,
		scoring:          params.Scoring,
		publisher:        params.Publisher,
		notifier:         params.Notifier,
		defaultCount:     params.Config.Scoring.DefaultConfirmationCount,
		fanoutTimeout:    params.Config.Notification.FanoutTimeout,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// CreateIncident stores the report and scores the reporter in one
// transaction, then hands the incident to the notification fanout.
func (srv *incidentService) CreateIncident(ctx context.Context, deviceID string, input *usecase.CreateIncidentInput) (*usecase.CreateIncidentOutput, error) {
	if err := validateIncidentInput(input); err != nil {
		return nil, err
	}

	var reporter *service.Identity
	if deviceID != "" {
		identity, err := protectIdentity(srv.identity, deviceID)
		if err != nil {
			return nil, err
		}
		reporter = &identity
	}

	notifyNearby := true
	if input.NotifyNearby != nil {
		notifyNearby = *input.NotifyNearby
	}

	incident := &entity.Incident{
		Category:          input.Category,
		Latitude:          input.Latitude,
		Longitude:         input.Longitude,
		Title:             strings.TrimSpace(input.Title),
		Description:       input.Description,
		NotifyNearby:      notifyNearby,
		ConfirmationCount: srv.defaultCount,
		CreatedAt:         srv.now().UTC(),
	}
	if reporter != nil {
		hash := reporter.Hash
		incident.ReporterHash = &hash
	}

	output := &usecase.CreateIncidentOutput{Incident: incident}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewIncidentRepository().CreateIncident(ctx, incident); err != nil {
			return errors.Wrap(err, "failed to create incident")
		}

		if reporter == nil {
			return nil
		}

		profile, err := repos.NewProfileRepository().GetOrCreateProfile(ctx, reporter.Hash, reporter.Sealed)
		if err != nil {
			return errors.Wrap(err, "failed to load reporter profile")
		}

		score, err := srv.scoring.AwardReportPoints(ctx, repos, profile, incident.CreatedAt)
		if err != nil {
			return errors.Wrap(err, "failed to award report points")
		}
		output.Score = score

		badges, err := srv.scoring.AwardReportBadges(ctx, repos, profile, incident)
		if err != nil {
			return errors.Wrap(err, "failed to award report badges")
		}
		output.Badges = badges

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to report incident")
	}

	srv.logger.Info("Incident reported",
		slog.Int64("incident_id", incident.ID),
		slog.String("category", string(incident.Category)),
		slog.Bool("anonymous", reporter == nil),
	)

	srv.startFanout(ctx, incident)

	return output, nil
}

// startFanout publishes the incident for the alert worker and falls back to
// an in-process fanout that outlives the request.
func (srv *incidentService) startFanout(ctx context.Context, incident *entity.Incident) {
	if !incident.NotifyNearby {
		return
	}

	event := &service.IncidentEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		IncidentID: incident.ID,
	}

	err := srv.publisher.PublishIncidentEvent(ctx, event)
	if err == nil {
		srv.logger.Debug("Incident event published", slog.Int64("incident_id", incident.ID))

		return
	}
	if !errors.Is(err, service.ErrPublishingDisabled) {
		srv.logger.Warn("Failed to publish incident event, notifying in process",
			slog.Int64("incident_id", incident.ID),
			slog.Any("error", err),
		)
	}

	fanoutCtx, cancel := deliverycontext.Detach(ctx, srv.fanoutTimeout)

	go func() {
		defer cancel()
		srv.notifier.OnIncidentCreated(fanoutCtx, incident)
	}()
}

// ListIncidents pages through incidents, newest first.
func (srv *incidentService) ListIncidents(ctx context.Context, input *usecase.ListIncidentsInput) ([]*entity.Incident, error) {
	if input.Category != "" && !input.Category.Valid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown incident category")
	}

	incidents, err := srv.incidentRepo.ListIncidents(ctx, repository.IncidentFilter{
		Category: input.Category,
		Limit:    clampLimit(input.Limit, defaultIncidentLimit, maxIncidentLimit),
		Offset:   max(input.Offset, 0),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list incidents")
	}

	return incidents, nil
}

// GetIncident returns a single incident.
func (srv *incidentService) GetIncident(ctx context.Context, id int64) (*entity.Incident, error) {
	incident, err := srv.incidentRepo.FindIncidentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrIncidentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrIncidentNotFound, "incident not found")
		}

		return nil, errors.Wrap(err, "failed to find incident")
	}

	return incident, nil
}

// FindNearby prefilters by bounding box and keeps incidents whose exact
// distance is within the radius.
func (srv *incidentService) FindNearby(ctx context.Context, query *usecase.NearbyQuery) ([]*entity.NearbyIncident, error) {
	if !geo.IsValidCoordinate(query.Latitude, query.Longitude) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCoordinates)
	}

	radiusKm := query.RadiusKm
	if radiusKm <= 0 {
		radiusKm = usecase.DefaultNearbyRadiusKm
	}
	radiusKm = min(radiusKm, usecase.MaxSearchRadiusKm)

	nearby, err := findWithin(ctx, srv.incidentRepo, repository.IncidentFilter{}, geo.NewPoint(query.Latitude, query.Longitude), radiusKm*1000)
	if err != nil {
		return nil, err
	}

	if limit := clampLimit(query.Limit, defaultIncidentLimit, maxIncidentLimit); len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby, nil
}

// ListMine lists the caller's own reports.
func (srv *incidentService) ListMine(ctx context.Context, deviceID string, limit, offset int) ([]*entity.Incident, error) {
	hash, err := hashIdentity(srv.identity, deviceID)
	if err != nil {
		return nil, err
	}

	incidents, err := srv.incidentRepo.ListIncidents(ctx, repository.IncidentFilter{
		ReporterHash: hash,
		Limit:        clampLimit(limit, defaultIncidentLimit, maxIncidentLimit),
		Offset:       max(offset, 0),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reported incidents")
	}

	return incidents, nil
}

// NotificationSummary aggregates the delivery attempts of an incident.
func (srv *incidentService) NotificationSummary(ctx context.Context, id int64) (*entity.NotificationSummary, error) {
	if _, err := srv.GetIncident(ctx, id); err != nil {
		return nil, err
	}

	summary, err := srv.notificationRepo.SummarizeByIncident(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize notifications")
	}

	return summary, nil
}

func validateIncidentInput(input *usecase.CreateIncidentInput) error {
	if !input.Category.Valid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown incident category %q", input.Category)
	}
	if !geo.IsValidCoordinate(input.Latitude, input.Longitude) {
		return errors.WithStack(domainerrors.ErrInvalidCoordinates)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "title is required")
	}
	if utf8.RuneCountInString(title) > maxIncidentTitleRunes {
		return errors.Wrap(domainerrors.ErrValidationFailed, "title is too long")
	}

	return nil
}

// findWithin reads the bounding box around center and returns incidents
// within radiusMeters, closest first.
func findWithin(
	ctx context.Context,
	incidentRepo repository.IncidentRepository,
	filter repository.IncidentFilter,
	center orb.Point,
	radiusMeters float64,
) ([]*entity.NearbyIncident, error) {
	bound := geo.BoundAround(center, radiusMeters)
	filter.Within = &bound
	filter.Limit = nearbyCandidateLimit

	candidates, err := incidentRepo.ListIncidents(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list nearby incidents")
	}

	nearby := make([]*entity.NearbyIncident, 0, len(candidates))
	for _, incident := range candidates {
		distance := geo.Distance(center, geo.NewPoint(incident.Latitude, incident.Longitude))
		if distance > radiusMeters {
			continue
		}
		nearby = append(nearby, &entity.NearbyIncident{Incident: *incident, DistanceMeters: distance})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	return nearby, nil
}

func clampLimit(limit, fallback, maxLimit int) int {
	if limit <= 0 {
		return fallback
	}

	return min(limit, maxLimit)
}
