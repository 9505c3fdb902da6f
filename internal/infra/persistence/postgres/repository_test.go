package postgres_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/geo"
	"safezone/internal/domain/repository"
	"safezone/internal/infra/persistence/postgres"
	"safezone/internal/infra/persistence/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func hashOf(s string) string {
	return strings.Repeat(s[:1], 64)
}

func createIncident(t *testing.T, db *gorm.DB, incident *entity.Incident) *entity.Incident {
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
	require.NoError(t, postgres.NewIncidentRepository(db).CreateIncident(context.Background(), incident))

	return incident
}

func TestMigrations(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()

	version, err := postgres.MigrationVersion(ctx, db)
	require.NoError(t, err)
	latest, err := postgres.LatestMigrationVersion(db)
	require.NoError(t, err)
	assert.Equal(t, latest, version)
	assert.Equal(t, "sqlite3", postgres.Dialect(db))

	// Re-running is a no-op.
	require.NoError(t, postgres.RunMigrations(ctx, db))
}

func TestIncidentRepository(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	repo := postgres.NewIncidentRepository(db)
	now := time.Now().UTC()
	reporter := hashOf("a")

	first := createIncident(t, db, &entity.Incident{Latitude: 40.0, Longitude: -74.0, NotifyNearby: false, ReporterHash: &reporter, CreatedAt: now.Add(-2 * time.Hour)})
	second := createIncident(t, db, &entity.Incident{Category: entity.CategoryFire, Latitude: 40.01, Longitude: -74.0, NotifyNearby: true, CreatedAt: now})
	createIncident(t, db, &entity.Incident{Latitude: 10.0, Longitude: 10.0, CreatedAt: now.Add(-time.Hour)})

	t.Run("assigns ids and round-trips fields", func(t *testing.T) {
		assert.NotZero(t, first.ID)
		assert.Greater(t, second.ID, first.ID)

		got, err := repo.FindIncidentByID(ctx, first.ID)
		require.NoError(t, err)
		assert.False(t, got.NotifyNearby)
		assert.True(t, got.ReportedBy(reporter))
		assert.Equal(t, 1, got.ConfirmationCount)
		assert.Nil(t, got.VerifiedAt)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindIncidentByID(ctx, 9999)
		assert.ErrorIs(t, err, repository.ErrIncidentNotFound)
	})

	t.Run("list newest first with filters", func(t *testing.T) {
		all, err := repo.ListIncidents(ctx, repository.IncidentFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, second.ID, all[0].ID)

		fires, err := repo.ListIncidents(ctx, repository.IncidentFilter{Category: entity.CategoryFire})
		require.NoError(t, err)
		require.Len(t, fires, 1)

		mine, err := repo.ListIncidents(ctx, repository.IncidentFilter{ReporterHash: reporter})
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, first.ID, mine[0].ID)

		bound := geo.BoundAround(geo.NewPoint(40.0, -74.0), 5000)
		nearby, err := repo.ListIncidents(ctx, repository.IncidentFilter{Within: &bound, Since: now.Add(-3 * time.Hour)})
		require.NoError(t, err)
		assert.Len(t, nearby, 2)

		paged, err := repo.ListIncidents(ctx, repository.IncidentFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, paged, 1)
	})

	t.Run("confirmation count and verification", func(t *testing.T) {
		require.NoError(t, repo.UpdateConfirmationCount(ctx, first.ID, 3))
		assert.ErrorIs(t, repo.UpdateConfirmationCount(ctx, 9999, 3), repository.ErrIncidentNotFound)

		marked, err := repo.MarkVerified(ctx, first.ID, now)
		require.NoError(t, err)
		assert.True(t, marked)

		marked, err = repo.MarkVerified(ctx, first.ID, now)
		require.NoError(t, err)
		assert.False(t, marked, "verified_at is only set once")

		got, err := repo.FindIncidentByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.ConfirmationCount)
		assert.NotNil(t, got.VerifiedAt)
	})

	t.Run("retention", func(t *testing.T) {
		count, err := repo.CountCreatedBefore(ctx, now.Add(-90*time.Minute))
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)

		deleted, err := repo.DeleteCreatedBefore(ctx, now.Add(-90*time.Minute))
		require.NoError(t, err)
		assert.EqualValues(t, 1, deleted)

		_, err = repo.FindIncidentByID(ctx, first.ID)
		assert.ErrorIs(t, err, repository.ErrIncidentNotFound)
	})
}

func TestIncidentRepository_FindForUpdateLocksRow(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	repo := postgres.NewIncidentRepository(db)
	incident := createIncident(t, db, &entity.Incident{Latitude: 1, Longitude: 1, CreatedAt: time.Now().UTC()})

	var locks []string
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("test:record_locking", func(tx *gorm.DB) {
		strength := ""
		if c, ok := tx.Statement.Clauses["FOR"]; ok {
			if locking, ok := c.Expression.(clause.Locking); ok {
				strength = locking.Strength
			}
		}
		locks = append(locks, strength)
	}))

	got, err := repo.FindIncidentByIDForUpdate(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, incident.ID, got.ID)

	_, err = repo.FindIncidentByID(ctx, incident.ID)
	require.NoError(t, err)

	_, err = repo.FindIncidentByIDForUpdate(ctx, 9999)
	require.ErrorIs(t, err, repository.ErrIncidentNotFound)

	assert.Equal(t, []string{clause.LockingStrengthUpdate, "", clause.LockingStrengthUpdate}, locks)
}

func TestSafeZoneRepository(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	repo := postgres.NewSafeZoneRepository(db)
	owner := hashOf("b")

	zone := &entity.SafeZone{OwnerHash: owner, SealedOwner: "sealed", Name: "Home", Latitude: 40, Longitude: -74, RadiusMeters: 500, ZoneType: entity.ZoneTypeHome, IsActive: true, NotifyOnEnter: false}
	require.NoError(t, repo.CreateSafeZone(ctx, zone))
	assert.NotEqual(t, uuid.Nil, zone.ID)

	other := &entity.SafeZone{OwnerHash: owner, SealedOwner: "sealed", Name: "Work", Latitude: 41, Longitude: -74, RadiusMeters: 200, ZoneType: entity.ZoneTypeWork, IsActive: true}
	require.NoError(t, repo.CreateSafeZone(ctx, other))

	got, err := repo.FindSafeZoneByID(ctx, zone.ID)
	require.NoError(t, err)
	assert.False(t, got.NotifyOnEnter, "false booleans are stored as given")
	assert.Equal(t, entity.ZoneTypeHome, got.ZoneType)

	require.NoError(t, repo.SetActive(ctx, other.ID, false))
	active, err := repo.FindActiveZones(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, zone.ID, active[0].ID)

	owned, err := repo.FindSafeZonesByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	zone.Name = "Home sweet home"
	zone.RadiusMeters = 750
	require.NoError(t, repo.UpdateSafeZone(ctx, zone))
	got, err = repo.FindSafeZoneByID(ctx, zone.ID)
	require.NoError(t, err)
	assert.Equal(t, "Home sweet home", got.Name)
	assert.Equal(t, 750.0, got.RadiusMeters)

	bad := &entity.SafeZone{OwnerHash: owner, SealedOwner: "sealed", Name: "Bad", Latitude: 40, Longitude: -74, RadiusMeters: 0, ZoneType: entity.ZoneTypeCustom, IsActive: true}
	assert.Error(t, repo.CreateSafeZone(ctx, bad))

	require.NoError(t, repo.DeleteSafeZone(ctx, zone.ID))
	_, err = repo.FindSafeZoneByID(ctx, zone.ID)
	assert.ErrorIs(t, err, repository.ErrSafeZoneNotFound)
	assert.ErrorIs(t, repo.DeleteSafeZone(ctx, zone.ID), repository.ErrSafeZoneNotFound)
}

func TestDeviceRepository(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	repo := postgres.NewDeviceRepository(db)
	alice, bob := hashOf("c"), hashOf("d")

	device := &entity.UserDevice{IdentityHash: alice, SealedIdentity: "s1", FCMToken: "token-1", Platform: entity.PlatformAndroid}
	require.NoError(t, repo.UpsertDevice(ctx, device))
	firstID := device.ID

	again := &entity.UserDevice{IdentityHash: alice, SealedIdentity: "s1", FCMToken: "token-2", Platform: entity.PlatformIOS}
	require.NoError(t, repo.UpsertDevice(ctx, again))
	assert.Equal(t, firstID, again.ID, "re-registration keeps the row")
	assert.Equal(t, "token-2", again.FCMToken)
	assert.Equal(t, entity.PlatformIOS, again.Platform)

	require.NoError(t, repo.UpsertDevice(ctx, &entity.UserDevice{IdentityHash: bob, SealedIdentity: "s2", FCMToken: "token-3", Platform: entity.PlatformWeb}))

	active, err := repo.FindActiveByIdentityHashes(ctx, []string{alice, bob, hashOf("e")})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	empty, err := repo.FindActiveByIdentityHashes(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	n, err := repo.DeactivateByToken(ctx, "token-3")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	active, err = repo.FindActiveByIdentityHashes(ctx, []string{alice, bob})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, alice, active[0].IdentityHash)

	require.NoError(t, repo.UpdateFCMToken(ctx, bob, "token-4"))
	got, err := repo.FindDeviceByIdentityHash(ctx, bob)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, "token-4", got.FCMToken)

	require.NoError(t, repo.DeactivateDevice(ctx, bob))
	assert.ErrorIs(t, repo.DeactivateDevice(ctx, hashOf("f")), repository.ErrDeviceNotFound)

	future := time.Now().UTC().Add(time.Hour)
	count, err := repo.CountInactiveBefore(ctx, future)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	deleted, err := repo.DeleteInactiveBefore(ctx, future)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, err = repo.FindDeviceByIdentityHash(ctx, bob)
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestNotificationRepository(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	repo := postgres.NewNotificationRepository(db)
	incident := createIncident(t, db, &entity.Incident{Latitude: 1, Longitude: 1})

	empty, err := repo.SummarizeByIncident(ctx, incident.ID)
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
	assert.Nil(t, empty.LastSentAt)

	require.NoError(t, repo.CreateAttempt(ctx, &entity.NotificationAttempt{IncidentID: incident.ID, IdentityHash: hashOf("a"), FCMToken: "t1", Success: true}))
	require.NoError(t, repo.CreateAttempt(ctx, &entity.NotificationAttempt{IncidentID: incident.ID, IdentityHash: hashOf("b"), FCMToken: "t2", Success: false, ErrorMessage: "unregistered"}))

	attempts, err := repo.FindAttemptsByIncident(ctx, incident.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 2)

	summary, err := repo.SummarizeByIncident(ctx, incident.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, summary.Total)
	assert.EqualValues(t, 1, summary.Succeeded)
	assert.EqualValues(t, 1, summary.Failed)
	assert.NotNil(t, summary.LastSentAt)

	err = repo.CreateAttempt(ctx, &entity.NotificationAttempt{IncidentID: 424242, IdentityHash: hashOf("a"), FCMToken: "t1"})
	assert.ErrorIs(t, err, repository.ErrIncidentNotFound)
}

func TestProfileRepository(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	repo := postgres.NewProfileRepository(db)
	identity := hashOf("a")

	profile, err := repo.GetOrCreateProfile(ctx, identity, "sealed")
	require.NoError(t, err)
	assert.Zero(t, profile.TotalPoints)
	assert.Equal(t, 1, profile.CurrentTier)

	same, err := repo.GetOrCreateProfile(ctx, identity, "sealed")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, same.ID)

	t.Run("delta keeps tier in step with points", func(t *testing.T) {
		updated, err := repo.ApplyDelta(ctx, profile.ID, repository.ProfileDelta{Points: 51, Reports: 1})
		require.NoError(t, err)
		assert.Equal(t, 51, updated.TotalPoints)
		assert.Equal(t, 1, updated.ReportsCount)
		assert.Equal(t, 2, updated.CurrentTier)

		updated, err = repo.ApplyDelta(ctx, profile.ID, repository.ProfileDelta{Points: 250, Confirmations: 1})
		require.NoError(t, err)
		assert.Equal(t, 301, updated.TotalPoints)
		assert.Equal(t, 4, updated.CurrentTier)

		updated, err = repo.ApplyDelta(ctx, profile.ID, repository.ProfileDelta{Points: 899, VerifiedReports: 1})
		require.NoError(t, err)
		assert.Equal(t, 1200, updated.TotalPoints)
		assert.Equal(t, 7, updated.CurrentTier)
		assert.Equal(t, 1, updated.VerifiedReports)
	})

	t.Run("missing profile", func(t *testing.T) {
		_, err := repo.ApplyDelta(ctx, uuid.New(), repository.ProfileDelta{Points: 1})
		assert.ErrorIs(t, err, repository.ErrProfileNotFound)

		_, err = repo.FindProfileByIdentityHash(ctx, hashOf("z"))
		assert.ErrorIs(t, err, repository.ErrProfileNotFound)
	})

	t.Run("badges are awarded once", func(t *testing.T) {
		awarded, err := repo.AwardBadge(ctx, profile.ID, entity.BadgeNightOwl, time.Now().UTC())
		require.NoError(t, err)
		assert.True(t, awarded)

		awarded, err = repo.AwardBadge(ctx, profile.ID, entity.BadgeNightOwl, time.Now().UTC())
		require.NoError(t, err)
		assert.False(t, awarded)

		badges, err := repo.FindBadgesByProfile(ctx, profile.ID)
		require.NoError(t, err)
		require.Len(t, badges, 1)
		assert.Equal(t, entity.BadgeNightOwl, badges[0].BadgeType)
	})

	t.Run("leaderboard order", func(t *testing.T) {
		runnerUp, err := repo.GetOrCreateProfile(ctx, hashOf("b"), "sealed-b")
		require.NoError(t, err)
		_, err = repo.ApplyDelta(ctx, runnerUp.ID, repository.ProfileDelta{Points: 10})
		require.NoError(t, err)

		top, err := repo.TopProfiles(ctx, 1)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, profile.ID, top[0].ID)
	})
}

func TestConfirmationRepository(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	repo := postgres.NewConfirmationRepository(db)
	incident := createIncident(t, db, &entity.Incident{Latitude: 1, Longitude: 1})

	require.NoError(t, repo.CreateConfirmation(ctx, &entity.Confirmation{IncidentID: incident.ID, IdentityHash: hashOf("a")}))
	require.NoError(t, repo.CreateConfirmation(ctx, &entity.Confirmation{IncidentID: incident.ID, IdentityHash: hashOf("b")}))

	err := repo.CreateConfirmation(ctx, &entity.Confirmation{IncidentID: incident.ID, IdentityHash: hashOf("a")})
	assert.ErrorIs(t, err, repository.ErrDuplicateConfirmation)

	count, err := repo.CountByIncident(ctx, incident.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	err = repo.CreateConfirmation(ctx, &entity.Confirmation{IncidentID: 987654, IdentityHash: hashOf("a")})
	assert.ErrorIs(t, err, repository.ErrIncidentNotFound)
}

func TestTransactionManager(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	txManager := postgres.NewTransactionManager(db)

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		incident := &entity.Incident{Category: entity.CategoryNoise, Latitude: 1, Longitude: 1, Title: "Loud", ConfirmationCount: 1, CreatedAt: time.Now().UTC()}
		if err := factory.NewIncidentRepository().CreateIncident(ctx, incident); err != nil {
			return err
		}

		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	incidents, err := postgres.NewIncidentRepository(db).ListIncidents(ctx, repository.IncidentFilter{})
	require.NoError(t, err)
	assert.Empty(t, incidents, "rolled back")

	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		incident := &entity.Incident{Category: entity.CategoryNoise, Latitude: 1, Longitude: 1, Title: "Loud", ConfirmationCount: 1, CreatedAt: time.Now().UTC()}

		return factory.NewIncidentRepository().CreateIncident(ctx, incident)
	})
	require.NoError(t, err)

	incidents, err = postgres.NewIncidentRepository(db).ListIncidents(ctx, repository.IncidentFilter{})
	require.NoError(t, err)
	assert.Len(t, incidents, 1)
}

func TestTransactionManager_BeginFailure(t *testing.T) {
	db := testdb.New(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	called := false
	err = postgres.NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
		called = true

		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}
