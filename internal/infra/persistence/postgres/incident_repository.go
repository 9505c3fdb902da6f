package postgres

import (
	"context"
	"time"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/repository"
	"safezone/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type incidentRepository struct {
	db *gorm.DB
}

// NewIncidentRepository is the constructor for incidentRepository.
func NewIncidentRepository(db *gorm.DB) repository.IncidentRepository {
	return &incidentRepository{
		db: db,
	}
}

// CreateIncident inserts the incident and copies generated values back.
func (repo *incidentRepository) CreateIncident(ctx context.Context, incident *entity.Incident) error {
	incidentM := fromIncidentDomain(incident)

	if err := repo.db.WithContext(ctx).Create(incidentM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidCoordinates
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required incident information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create incident")
	}

	incident.ID = incidentM.ID
	incident.CreatedAt = incidentM.CreatedAt

	return nil
}

// FindIncidentByID retrieves an incident by id.
func (repo *incidentRepository) FindIncidentByID(ctx context.Context, id int64) (*entity.Incident, error) {
	return repo.findIncident(repo.db.WithContext(ctx), id)
}

// FindIncidentByIDForUpdate locks the incident row so concurrent
// confirmations of one incident recount one after another. SQLite has no row
// locks and already serializes writers.
func (repo *incidentRepository) FindIncidentByIDForUpdate(ctx context.Context, id int64) (*entity.Incident, error) {
	return repo.findIncident(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *incidentRepository) findIncident(db *gorm.DB, id int64) (*entity.Incident, error) {
	var incidentM model.IncidentModel

	if err := db.
		Where("id = ?", id).
		First(&incidentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIncidentNotFound
		}

		return nil, errors.Wrap(err, "failed to find incident by ID")
	}

	return toIncidentDomain(&incidentM), nil
}

// ListIncidents returns incidents matching filter, newest first.
func (repo *incidentRepository) ListIncidents(ctx context.Context, filter repository.IncidentFilter) ([]*entity.Incident, error) {
	query := repo.db.WithContext(ctx).Model(&model.IncidentModel{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.ReporterHash != "" {
		query = query.Where("reporter_hash = ?", filter.ReporterHash)
	}
	if !filter.Since.IsZero() {
		query = query.Where("created_at >= ?", filter.Since)
	}
	if filter.ExcludeID != 0 {
		query = query.Where("id <> ?", filter.ExcludeID)
	}
	if bound := filter.Within; bound != nil {
		query = query.Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat())
		if bound.Min.Lon() <= bound.Max.Lon() {
			query = query.Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon())
		} else {
			// The box wraps the antimeridian.
			query = query.Where("(longitude >= ? OR longitude <= ?)", bound.Min.Lon(), bound.Max.Lon())
		}
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var incidentModels []*model.IncidentModel
	if err := query.Order("created_at DESC").Order("id DESC").Find(&incidentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list incidents")
	}

	incidents := make([]*entity.Incident, 0, len(incidentModels))
	for _, incidentM := range incidentModels {
		incidents = append(incidents, toIncidentDomain(incidentM))
	}

	return incidents, nil
}

// UpdateConfirmationCount overwrites the stored count with a recomputed value.
func (repo *incidentRepository) UpdateConfirmationCount(ctx context.Context, id int64, count int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IncidentModel{}).
		Where("id = ?", id).
		Update("confirmation_count", count)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update confirmation count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrIncidentNotFound
	}

	return nil
}

// MarkVerified sets verified_at only if it is still empty.
func (repo *incidentRepository) MarkVerified(ctx context.Context, id int64, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.IncidentModel{}).
		Where("id = ? AND verified_at IS NULL", id).
		Update("verified_at", at)

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark incident verified")
	}

	return result.RowsAffected == 1, nil
}

// CountCreatedBefore counts incidents older than cutoff.
func (repo *incidentRepository) CountCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.IncidentModel{}).
		Where("created_at < ?", cutoff).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count old incidents")
	}

	return count, nil
}

// DeleteCreatedBefore removes old incidents; confirmations and attempts cascade.
func (repo *incidentRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.IncidentModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete old incidents")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toIncidentDomain(data *model.IncidentModel) *entity.Incident {
	if data == nil {
		return nil
	}

	return &entity.Incident{
		ID:                data.ID,
		Category:          entity.IncidentCategory(data.Category),
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		Title:             data.Title,
		Description:       data.Description,
		NotifyNearby:      data.NotifyNearby,
		ConfirmationCount: data.ConfirmationCount,
		ReporterHash:      data.ReporterHash,
		VerifiedAt:        data.VerifiedAt,
		CreatedAt:         data.CreatedAt,
	}
}

func fromIncidentDomain(data *entity.Incident) *model.IncidentModel {
	if data == nil {
		return nil
	}

	return &model.IncidentModel{
		ID:                data.ID,
		Category:          string(data.Category),
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		Title:             data.Title,
		Description:       data.Description,
		NotifyNearby:      data.NotifyNearby,
		ConfirmationCount: data.ConfirmationCount,
		ReporterHash:      data.ReporterHash,
		VerifiedAt:        data.VerifiedAt,
		CreatedAt:         data.CreatedAt,
	}
}
