// File: services/matching/cache.go
package matching

import (
	"context"
	"encoding/json"
	"strings"

	"planora/models"
	"planora/utils"

	"go.uber.org/zap"
)

// loadVendors fetches the candidate vendor list for a category, preferring
// the redis cache and falling back to Mongo. Cache trouble is logged and
// degraded around, never surfaced to the caller.
func (s *DefaultMatchingService) loadVendors(ctx context.Context, category string) ([]models.Vendor, error) {
	key := vendorCacheKey(category)

	if s.Cache != nil {
		if val, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var vendors []models.Vendor
			if err := json.Unmarshal([]byte(val), &vendors); err == nil {
				return vendors, nil
			}
			// Corrupt entry: drop it and fall through to Mongo.
			s.Cache.Del(ctx, key)
		}
	}

	vendors, err := s.fetchVendors(category)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(vendors); err == nil {
			if err := s.Cache.Set(ctx, key, data, utils.VendorCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache vendor catalog",
					zap.String("key", key), zap.Error(err))
			}
		}
	}
	return vendors, nil
}

func (s *DefaultMatchingService) fetchVendors(category string) ([]models.Vendor, error) {
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return s.VendorRepo.GetAll()
	}
	return s.VendorRepo.GetByServiceType(category)
}

func vendorCacheKey(category string) string {
	if category == "" {
		category = CategoryAll
	}
	return utils.VendorCachePrefix + strings.ToLower(category)
}
