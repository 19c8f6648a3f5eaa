package matching

import (
	"context"
	"fmt"

	eventRepo "planora/database/repository/event"
	vendorRepo "planora/database/repository/vendor"
	"planora/models"
	"planora/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// MatchResult carries the filtered vendor list plus the budget-exhaustion
// signal the UI turns into a "budget too restrictive" hint.
type MatchResult struct {
	Vendors         []models.Vendor `json:"vendors"`
	BudgetExhausted bool            `json:"budgetExhausted"`
}

// MatchingService defines the interface for budget-aware vendor matching.
type MatchingService interface {
	MatchVendors(ctx context.Context, eventID string, filters Filters) (MatchResult, error)
}

// DefaultMatchingService implements MatchingService.
type DefaultMatchingService struct {
	VendorRepo vendorRepo.VendorRepository
	EventRepo  eventRepo.EventRepository
	Cache      *redis.Client
}

// MatchVendors loads the candidate catalog (cache first, Mongo on miss),
// resolves the selected event when an event id is given, and applies the
// filter conjunction. When no vendors match, it returns an empty list rather
// than an error.
func (s *DefaultMatchingService) MatchVendors(ctx context.Context, eventID string, filters Filters) (MatchResult, error) {
	logger := utils.GetLogger()

	vendors, err := s.loadVendors(ctx, filters.Category)
	if err != nil {
		return MatchResult{}, fmt.Errorf("failed to load vendor catalog: %w", err)
	}

	var selectedEvent *models.Event
	if eventID != "" {
		selectedEvent, err = s.EventRepo.GetByID(eventID)
		if err != nil {
			// An unknown event disables the budget heuristic instead of
			// failing the whole query.
			logger.Warn("Selected event not found, skipping budget filter",
				zap.String("eventId", eventID), zap.Error(err))
			selectedEvent = nil
		}
	}

	matched, budgetExhausted := FilterVendors(vendors, selectedEvent, filters)
	if len(matched) == 0 {
		logger.Debug("No vendors matched", zap.String("category", filters.Category),
			zap.Bool("budgetExhausted", budgetExhausted))
	}
	return MatchResult{Vendors: matched, BudgetExhausted: budgetExhausted}, nil
}
