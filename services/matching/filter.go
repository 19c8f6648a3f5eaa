package matching

import (
	"strings"

	"planora/models"
)

// BudgetAllocationRate is the share of an event's total budget assumed to be
// available for a single service category. Policy constant, not configurable.
const BudgetAllocationRate = 0.15

// budgetFloorRatio sets how far below the allocation a vendor's ceiling may
// sit before the vendor is considered out of reach.
const budgetFloorRatio = 0.5

// CategoryAll is the sentinel category value meaning "no category filter".
const CategoryAll = "all"

// Filters holds the manual filter inputs. Empty strings and nil numeric
// fields mean the corresponding filter is inactive; callers parsing form
// input must coerce invalid numbers to nil rather than failing.
type Filters struct {
	Category  string
	Location  string
	Search    string
	MinBudget *float64
	MaxBudget *float64
	MinRating *float64
}

// FilterVendors returns the vendors passing every active filter, plus a flag
// reporting that the event-budget step alone emptied a non-empty candidate
// list (the caller surfaces this as a "budget too restrictive" hint).
//
// Filters compose as a pure conjunction, so ordering does not change the
// result set; the event-budget step runs right after the category step to
// keep the exhaustion flag meaningful.
func FilterVendors(vendors []models.Vendor, selectedEvent *models.Event, f Filters) ([]models.Vendor, bool) {
	candidates := make([]models.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if passesCategory(v, f.Category) {
			candidates = append(candidates, v)
		}
	}

	budgetExhausted := false
	if selectedEvent != nil && selectedEvent.Budget != nil {
		allocated := *selectedEvent.Budget * BudgetAllocationRate
		kept := candidates[:0]
		for _, v := range candidates {
			if withinAllocation(v, allocated) {
				kept = append(kept, v)
			}
		}
		if len(candidates) > 0 && len(kept) == 0 {
			budgetExhausted = true
		}
		candidates = kept
	}

	matched := make([]models.Vendor, 0, len(candidates))
	for _, v := range candidates {
		if !passesManualBudget(v, f.MinBudget, f.MaxBudget) {
			continue
		}
		if !passesLocation(v, f.Location) {
			continue
		}
		if !passesSearch(v, f.Search) {
			continue
		}
		if f.MinRating != nil && v.Rating < *f.MinRating {
			continue
		}
		matched = append(matched, v)
	}
	return matched, budgetExhausted
}

func passesCategory(v models.Vendor, category string) bool {
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return true
	}
	return strings.EqualFold(v.ServiceType, category)
}

// withinAllocation admits vendors whose floor is within the allocation and
// whose ceiling is not wildly below it. The bounds are intentionally
// asymmetric: a vendor may quote above the allocation as long as its minimum
// is reachable.
func withinAllocation(v models.Vendor, allocated float64) bool {
	return v.PriceRange.Min <= allocated && v.PriceRange.Max >= allocated*budgetFloorRatio
}

// passesManualBudget applies the standard interval-overlap test between the
// vendor's price range and the requested [min, max] band. A missing bound
// passes on that side.
func passesManualBudget(v models.Vendor, minBudget, maxBudget *float64) bool {
	if maxBudget != nil && v.PriceRange.Min > *maxBudget {
		return false
	}
	if minBudget != nil && v.PriceRange.Max < *minBudget {
		return false
	}
	return true
}

func passesLocation(v models.Vendor, location string) bool {
	if location == "" {
		return true
	}
	return strings.Contains(strings.ToLower(v.Location), strings.ToLower(location))
}

// passesSearch matches the term against name, description and service type;
// any one hit is enough.
func passesSearch(v models.Vendor, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(v.Name), needle) ||
		strings.Contains(strings.ToLower(v.Description), needle) ||
		strings.Contains(strings.ToLower(v.ServiceType), needle)
}
