package repository

import (
	"context"
	"time"

	"safezone/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

var (
	// ErrIncidentNotFound is returned when an incident id does not exist.
	ErrIncidentNotFound = errors.New("incident not found")
)

// IncidentFilter narrows incident listings. Zero values mean "no filter".
type IncidentFilter struct {
	Category     entity.IncidentCategory
	ReporterHash string
	Since        time.Time
	Within       *orb.Bound // lat/lon prefilter, exact distance is the caller's job
	ExcludeID    int64
	Limit        int
	Offset       int
}

// IncidentRepository defines incident storage.
type IncidentRepository interface {
	// CreateIncident inserts the incident and fills in ID and CreatedAt.
	CreateIncident(ctx context.Context, incident *entity.Incident) error

	// FindIncidentByID returns ErrIncidentNotFound when absent.
	FindIncidentByID(ctx context.Context, id int64) (*entity.Incident, error)

	// FindIncidentByIDForUpdate is FindIncidentByID holding a row lock until
	// the surrounding transaction ends.
	FindIncidentByIDForUpdate(ctx context.Context, id int64) (*entity.Incident, error)

	// ListIncidents returns incidents matching filter, newest first.
	ListIncidents(ctx context.Context, filter IncidentFilter) ([]*entity.Incident, error)

	// UpdateConfirmationCount overwrites the stored confirmation count.
	UpdateConfirmationCount(ctx context.Context, id int64, count int) error

	// MarkVerified sets verified_at once. It reports whether this call set it.
	MarkVerified(ctx context.Context, id int64, at time.Time) (bool, error)

	// CountCreatedBefore counts incidents created before cutoff.
	CountCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// DeleteCreatedBefore removes incidents created before cutoff along with
	// their confirmations and attempts.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
