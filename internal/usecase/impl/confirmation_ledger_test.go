package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/repository"
	"safezone/internal/errors"
	mockRepo "safezone/internal/mocks/repository"
	mockUC "safezone/internal/mocks/usecase"
	"safezone/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var confirmClock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestLedger(f *sqliteFixture) usecase.ConfirmationLedger {
	ledger := NewConfirmationLedger(newTestConfig(), f.txManager, f.protector, newTestScoring(confirmClock), newDiscardLogger())
	ledger.(*confirmationLedger).now = fixedClock(confirmClock)

	return ledger
}

func TestConfirmationLedger_Confirm(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	ledger := newTestLedger(f)
	incident := f.createIncident(t, &entity.Incident{})

	result, err := ledger.Confirm(ctx, incident.ID, "device-witness")

	require.NoError(t, err)
	assert.Equal(t, 2, result.ConfirmationCount)
	assert.Equal(t, 5, result.PointsEarned)
	assert.Equal(t, 5, result.TotalPoints)
	assert.False(t, result.TierChanged)
	assert.Equal(t, usecase.MessageConfirmed, result.Message)

	stored, err := f.incidents.FindIncidentByID(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.ConfirmationCount)
	assert.Nil(t, stored.VerifiedAt)

	profile, err := f.profiles.FindProfileByIdentityHash(ctx, f.hash(t, "device-witness"))
	require.NoError(t, err)
	assert.Equal(t, 1, profile.ConfirmationsCount)
}

func TestConfirmationLedger_Duplicate(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	ledger := newTestLedger(f)
	incident := f.createIncident(t, &entity.Incident{})

	_, err := ledger.Confirm(ctx, incident.ID, "device-witness")
	require.NoError(t, err)

	result, err := ledger.Confirm(ctx, incident.ID, "device-witness")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyConfirmed))

	stored, err := f.incidents.FindIncidentByID(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.ConfirmationCount)

	profile, err := f.profiles.FindProfileByIdentityHash(ctx, f.hash(t, "device-witness"))
	require.NoError(t, err)
	assert.Equal(t, 5, profile.TotalPoints)
}

func TestConfirmationLedger_UnknownIncident(t *testing.T) {
	f := newSQLiteFixture(t)
	ledger := newTestLedger(f)

	_, err := ledger.Confirm(context.Background(), 9999, "device-witness")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIncidentNotFound))
}

func TestConfirmationLedger_InvalidIdentity(t *testing.T) {
	f := newSQLiteFixture(t)
	ledger := newTestLedger(f)
	incident := f.createIncident(t, &entity.Incident{})

	_, err := ledger.Confirm(context.Background(), incident.ID, "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidIdentity))
}

func TestConfirmationLedger_VerifiesAtThreshold(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	ledger := newTestLedger(f)
	reporter := f.profile(t, "device-reporter")
	incident := f.createIncident(t, &entity.Incident{ReporterHash: &reporter.IdentityHash})

	_, err := ledger.Confirm(ctx, incident.ID, "device-witness-1")
	require.NoError(t, err)
	result, err := ledger.Confirm(ctx, incident.ID, "device-witness-2")
	require.NoError(t, err)
	_, err = ledger.Confirm(ctx, incident.ID, "device-witness-3")
	require.NoError(t, err)

	assert.Equal(t, 3, result.ConfirmationCount)

	stored, err := f.incidents.FindIncidentByID(ctx, incident.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.VerifiedAt)
	assert.Equal(t, 4, stored.ConfirmationCount)

	// Crossing the threshold again must not credit the reporter twice.
	refreshed, err := f.profiles.FindProfileByIdentityHash(ctx, reporter.IdentityHash)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.VerifiedReports)
}

func TestConfirmationLedger_CapReached(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	ledger := newTestLedger(f)
	incident := f.createIncident(t, &entity.Incident{})

	for i := 1; i <= 10; i++ {
		result, err := ledger.Confirm(ctx, incident.ID, fmt.Sprintf("device-witness-%d", i))
		require.NoError(t, err)
		assert.Equal(t, 5, result.PointsEarned, "confirmation %d", i)
	}

	result, err := ledger.Confirm(ctx, incident.ID, "device-latecomer")

	require.NoError(t, err)
	assert.Zero(t, result.PointsEarned)
	assert.Zero(t, result.TotalPoints)
	assert.Equal(t, 12, result.ConfirmationCount)
	assert.Equal(t, usecase.MessageConfirmedCapReached, result.Message)

	profile, err := f.profiles.FindProfileByIdentityHash(ctx, f.hash(t, "device-latecomer"))
	require.NoError(t, err)
	assert.Zero(t, profile.ConfirmationsCount)
}

func TestConfirmationLedger_TierChange(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	ledger := newTestLedger(f)
	incident := f.createIncident(t, &entity.Incident{})
	witness := f.profile(t, "device-witness")
	_, err := f.profiles.ApplyDelta(ctx, witness.ID, repository.ProfileDelta{Points: 48})
	require.NoError(t, err)

	result, err := ledger.Confirm(ctx, incident.ID, "device-witness")

	require.NoError(t, err)
	assert.Equal(t, 53, result.TotalPoints)
	assert.True(t, result.TierChanged)
	require.NotNil(t, result.NewTier)
	assert.Equal(t, 2, *result.NewTier)
	assert.Equal(t, "Neighborhood Watch", result.TierName)
	assert.Equal(t, "🛡️", result.TierIcon)
}

func TestConfirmationLedger_TransactionError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	scoringSvc := mockUC.NewMockScoringService(t)
	ctx := context.Background()
	ledger := NewConfirmationLedger(newTestConfig(), txManager, newTestProtector(t), scoringSvc, newDiscardLogger())

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			repos := mockRepo.NewMockRepositoryFactory(t)
			incidentRepo := mockRepo.NewMockIncidentRepository(t)
			repos.EXPECT().NewIncidentRepository().Return(incidentRepo)
			incidentRepo.EXPECT().FindIncidentByIDForUpdate(ctx, int64(7)).Return(nil, errors.New("connection reset"))

			_ = fn(repos)
		}).
		Return(errors.New("connection reset"))

	result, err := ledger.Confirm(ctx, 7, "device-witness")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to confirm incident")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestConfirmationLedger_InsertFailureIsDatabaseError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	ctx := context.Background()
	ledger := NewConfirmationLedger(newTestConfig(), txManager, newTestProtector(t), mockUC.NewMockScoringService(t), newDiscardLogger())

	repos := mockRepo.NewMockRepositoryFactory(t)
	incidentRepo := mockRepo.NewMockIncidentRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	confirmationRepo := mockRepo.NewMockConfirmationRepository(t)
	repos.EXPECT().NewIncidentRepository().Return(incidentRepo)
	repos.EXPECT().NewProfileRepository().Return(profileRepo)
	repos.EXPECT().NewConfirmationRepository().Return(confirmationRepo)
	incidentRepo.EXPECT().FindIncidentByIDForUpdate(ctx, int64(7)).Return(&entity.Incident{ID: 7, ConfirmationCount: 1}, nil)
	profileRepo.EXPECT().GetOrCreateProfile(ctx, mock.Anything, mock.Anything).Return(&entity.ScoreProfile{}, nil)
	confirmationRepo.EXPECT().CreateConfirmation(ctx, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to create confirmation"))

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos)
		})

	_, err := ledger.Confirm(ctx, 7, "device-witness")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, 500, appErr.HTTPCode())
}
