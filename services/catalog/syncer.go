package catalog

import (
	"context"
	"fmt"

	availabilityRepo "planora/database/repository/availability"
	eventRepo "planora/database/repository/event"
	vendorRepo "planora/database/repository/vendor"
	"planora/models"
	"planora/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Syncer refreshes the local catalog mirror from the upstream marketplace
// and invalidates the vendor cache afterwards.
type Syncer struct {
	Client           *Client
	VendorRepo       vendorRepo.VendorRepository
	EventRepo        eventRepo.EventRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	Cache            *redis.Client
}

// Sync pulls vendors, events and per-vendor availability, replaces the
// Mongo mirror and drops stale cache entries. A vendor whose availability
// fetch fails keeps its previous windows out of the snapshot; the next pass
// picks it up again.
func (s *Syncer) Sync(ctx context.Context) error {
	logger := utils.GetLogger()

	vendors, err := s.Client.FetchVendors(ctx)
	if err != nil {
		return fmt.Errorf("catalog sync: %w", err)
	}
	if err := s.VendorRepo.ReplaceAll(vendors); err != nil {
		return fmt.Errorf("catalog sync: %w", err)
	}

	events, err := s.Client.FetchEvents(ctx)
	if err != nil {
		return fmt.Errorf("catalog sync: %w", err)
	}
	if err := s.EventRepo.ReplaceAll(events); err != nil {
		return fmt.Errorf("catalog sync: %w", err)
	}

	availabilities := make([]models.VendorAvailability, 0, len(vendors))
	for _, v := range vendors {
		avail, err := s.Client.FetchAvailability(ctx, v.ID)
		if err != nil {
			logger.Warn("Skipping vendor availability",
				zap.String("vendorId", v.ID), zap.Error(err))
			continue
		}
		availabilities = append(availabilities, *avail)
	}
	if err := s.AvailabilityRepo.ReplaceAll(availabilities); err != nil {
		return fmt.Errorf("catalog sync: %w", err)
	}

	s.invalidateCache(ctx)

	logger.Info("Catalog sync complete",
		zap.Int("vendors", len(vendors)),
		zap.Int("events", len(events)),
		zap.Int("availabilities", len(availabilities)))
	return nil
}

func (s *Syncer) invalidateCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	keys, err := s.Cache.Keys(ctx, utils.VendorCachePrefix+"*").Result()
	if err != nil {
		utils.GetLogger().Warn("Failed to list vendor cache keys", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate vendor cache", zap.Error(err))
	}
}
