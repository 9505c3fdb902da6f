package impl

import (
	"context"
	"log/slog"

	deliverycontext "safezone/internal/delivery/context"
	"safezone/internal/domain/entity"
	"safezone/internal/domain/repository"
	"safezone/internal/domain/scoring"
	"safezone/internal/domain/service"
	"safezone/internal/errors"
	"safezone/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	identity    service.IdentityProtector
	cache       service.LeaderboardCache
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService. cache may be nil.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	identity service.IdentityProtector,
	cache service.LeaderboardCache,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		identity:    identity,
		cache:       cache,
		logger:      logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMyProfile returns the caller's profile with tier progress and badges.
func (srv *profileService) GetMyProfile(ctx context.Context, deviceID string) (*usecase.ProfileView, error) {
	profile, err := srv.loadProfile(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	badges, err := srv.profileRepo.FindBadgesByProfile(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find badges")
	}

	return newProfileView(profile, badges), nil
}

// GetMyBadges lists the caller's badges in the order earned.
func (srv *profileService) GetMyBadges(ctx context.Context, deviceID string) ([]*entity.Badge, error) {
	profile, err := srv.loadProfile(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	badges, err := srv.profileRepo.FindBadgesByProfile(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find badges")
	}

	return badges, nil
}

// Leaderboard serves the top profiles, from cache when available.
func (srv *profileService) Leaderboard(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error) {
	limit = clampLimit(limit, usecase.DefaultLeaderboardLimit, usecase.MaxLeaderboardLimit)

	if srv.cache != nil {
		entries, ok, err := srv.cache.Get(ctx, limit)
		if err != nil {
			srv.log(ctx).Warn("Leaderboard cache read failed", slog.Any("error", err))
		} else if ok {
			return entries, nil
		}
	}

	profiles, err := srv.profileRepo.TopProfiles(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load leaderboard")
	}

	entries := make([]*entity.LeaderboardEntry, 0, len(profiles))
	for _, profile := range profiles {
		entries = append(entries, newLeaderboardEntry(profile))
	}

	if srv.cache != nil {
		if err := srv.cache.Set(ctx, limit, entries); err != nil {
			srv.log(ctx).Warn("Leaderboard cache write failed", slog.Any("error", err))
		}
	}

	return entries, nil
}

func (srv *profileService) loadProfile(ctx context.Context, deviceID string) (*entity.ScoreProfile, error) {
	identity, err := protectIdentity(srv.identity, deviceID)
	if err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.GetOrCreateProfile(ctx, identity.Hash, identity.Sealed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load score profile")
	}

	return profile, nil
}

func newTierView(tier scoring.Tier) usecase.TierView {
	return usecase.TierView{
		Level:     tier.Level,
		Name:      tier.Name,
		Icon:      tier.Icon,
		Reward:    tier.Reward,
		MinPoints: tier.MinPoints,
	}
}

func newProfileView(profile *entity.ScoreProfile, badges []*entity.Badge) *usecase.ProfileView {
	current := scoring.TierFor(profile.TotalPoints)
	view := &usecase.ProfileView{
		ScoreProfile:       profile,
		Tier:               newTierView(current),
		AccuracyPercentage: scoring.AccuracyPercentage(profile.VerifiedReports, profile.ReportsCount),
		Badges:             badges,
	}
	if view.Badges == nil {
		view.Badges = []*entity.Badge{}
	}

	if next, ok := scoring.TierByLevel(current.Level + 1); ok {
		nextView := newTierView(next)
		view.NextTier = &nextView
		view.PointsToNextTier = next.MinPoints - profile.TotalPoints
	}

	return view
}

func newLeaderboardEntry(profile *entity.ScoreProfile) *entity.LeaderboardEntry {
	tier := scoring.TierFor(profile.TotalPoints)

	return &entity.LeaderboardEntry{
		ID:                 profile.ID,
		TotalPoints:        profile.TotalPoints,
		ReportsCount:       profile.ReportsCount,
		ConfirmationsCount: profile.ConfirmationsCount,
		CurrentTier:        tier.Level,
		TierName:           tier.Name,
		TierIcon:           tier.Icon,
		AccuracyPercentage: scoring.AccuracyPercentage(profile.VerifiedReports, profile.ReportsCount),
	}
}
