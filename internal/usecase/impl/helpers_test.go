package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"safezone/config"
	"safezone/internal/domain/entity"
	"safezone/internal/domain/repository"
	"safezone/internal/domain/service"
	"safezone/internal/infra/identity"
	"safezone/internal/infra/persistence/postgres"
	"safezone/internal/infra/persistence/testdb"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Identity:     &config.IdentityConfig{Secret: "impl-test-identity-secret"},
		Notification: &config.NotificationConfig{SendTimeout: 5 * time.Second, FanoutTimeout: time.Minute},
		Scoring:      &config.ScoringConfig{ConfirmationCap: 10, DefaultConfirmationCount: 1},
		Retention:    &config.RetentionConfig{IncidentDays: 90, DeviceTokenDays: 180},
	}
}

func newTestProtector(t *testing.T) service.IdentityProtector {
	t.Helper()
	protector, err := identity.NewProtector(newTestConfig())
	require.NoError(t, err)

	return protector
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// sqliteFixture wires real repositories over a migrated SQLite database.
type sqliteFixture struct {
	db        *gorm.DB
	txManager repository.TransactionManager
	protector service.IdentityProtector
	incidents repository.IncidentRepository
	profiles  repository.ProfileRepository
	devices   repository.DeviceRepository
	zones     repository.SafeZoneRepository
	attempts  repository.NotificationRepository
}

func newSQLiteFixture(t *testing.T) *sqliteFixture {
	t.Helper()
	db := testdb.New(t)

	return &sqliteFixture{
		db:        db,
		txManager: postgres.NewTransactionManager(db),
		protector: newTestProtector(t),
		incidents: postgres.NewIncidentRepository(db),
		profiles:  postgres.NewProfileRepository(db),
		devices:   postgres.NewDeviceRepository(db),
		zones:     postgres.NewSafeZoneRepository(db),
		attempts:  postgres.NewNotificationRepository(db),
	}
}

func (f *sqliteFixture) hash(t *testing.T, deviceID string) string {
	t.Helper()
	hash, err := f.protector.Hash(deviceID)
	require.NoError(t, err)

	return hash
}

func (f *sqliteFixture) profile(t *testing.T, deviceID string) *entity.ScoreProfile {
	t.Helper()
	ident, err := f.protector.Protect(deviceID)
	require.NoError(t, err)
	profile, err := f.profiles.GetOrCreateProfile(context.Background(), ident.Hash, ident.Sealed)
	require.NoError(t, err)

	return profile
}

func (f *sqliteFixture) createIncident(t *testing.T, incident *entity.Incident) *entity.Incident {
	t.Helper()
	if incident.Category == "" {
		incident.Category = entity.CategoryTheft
	}
	if incident.Title == "" {
		incident.Title = "Bike stolen"
	}
	if incident.ConfirmationCount == 0 {
		incident.ConfirmationCount = 1
	}
	if incident.CreatedAt.IsZero() {
		incident.CreatedAt = time.Now().UTC()
	}
	require.NoError(t, f.incidents.CreateIncident(context.Background(), incident))

	return incident
}

// inTx runs fn on transaction-bound repositories and fails the test on error.
func (f *sqliteFixture) inTx(t *testing.T, fn func(repos repository.RepositoryFactory) error) {
	t.Helper()
	require.NoError(t, f.txManager.Execute(context.Background(), fn))
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func floatPtr(f float64) *float64 {
	return &f
}
