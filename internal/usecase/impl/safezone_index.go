package impl

import (
	"context"

	"safezone/internal/domain/geo"
	"safezone/internal/domain/repository"
	"safezone/internal/errors"
	"safezone/internal/usecase"

	"github.com/paulmach/orb"
)

type safeZoneIndex struct {
	zoneRepo repository.SafeZoneRepository
}

// NewSafeZoneIndex creates the zone matcher over the active zone list.
func NewSafeZoneIndex(zoneRepo repository.SafeZoneRepository) usecase.SafeZoneIndex {
	return &safeZoneIndex{
		zoneRepo: zoneRepo,
	}
}

// MatchDevices scans every active zone and keeps the owners whose circle
// contains point.
func (idx *safeZoneIndex) MatchDevices(ctx context.Context, point orb.Point) ([]string, error) {
	zones, err := idx.zoneRepo.FindActiveZones(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active safe zones")
	}

	owners := make([]string, 0)
	seen := make(map[string]struct{})

	for _, zone := range zones {
		if !zone.IsActive {
			continue
		}
		if _, ok := seen[zone.OwnerHash]; ok {
			continue
		}

		center := geo.NewPoint(zone.Latitude, zone.Longitude)
		if !geo.ContainsPoint(center, zone.RadiusMeters, point) {
			continue
		}

		seen[zone.OwnerHash] = struct{}{}
		owners = append(owners, zone.OwnerHash)
	}

	return owners, nil
}
