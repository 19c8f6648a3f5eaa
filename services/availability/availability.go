// services/availability/availability.go
package availability

import (
	"fmt"
	"time"

	"planora/config"
	availabilityRepo "planora/database/repository/availability"
	"planora/models"
	"planora/utils"

	"go.uber.org/zap"
)

// AvailabilityService defines methods for computing bookable slots.
type AvailabilityService interface {
	GetSlots(vendorID string, requested models.AppointmentType, horizonDays int) ([]models.TimeSlot, error)
	ValidateSlot(vendorID string, requested models.AppointmentType, start time.Time) (bool, error)
}

// DefaultAvailabilityService is a concrete implementation.
type DefaultAvailabilityService struct {
	AvailabilityRepo availabilityRepo.AvailabilityRepository
}

// GetSlots expands the vendor's weekly windows into bookable slots for the
// requested type. An empty result is a valid state (the caller prompts for a
// different appointment type), not an error.
func (s *DefaultAvailabilityService) GetSlots(vendorID string, requested models.AppointmentType, horizonDays int) ([]models.TimeSlot, error) {
	avail, err := s.AvailabilityRepo.GetByVendorID(vendorID)
	if err != nil {
		return nil, fmt.Errorf("vendor availability not found: %w", err)
	}

	loc := resolveTimezone(avail.Timezone)
	return GenerateSlots(avail.Windows, requested, time.Now(), SlotOptions{
		HorizonDays: horizonDays,
		Location:    loc,
	}), nil
}

// ValidateSlot reports whether start matches a currently generated slot for
// the vendor and type. Used before forwarding a booking request upstream.
func (s *DefaultAvailabilityService) ValidateSlot(vendorID string, requested models.AppointmentType, start time.Time) (bool, error) {
	slots, err := s.GetSlots(vendorID, requested, DefaultHorizonDays)
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		if slot.Start.Equal(start) {
			return true, nil
		}
	}
	return false, nil
}

// resolveTimezone loads the vendor's IANA timezone, falling back to the
// configured default and finally UTC.
func resolveTimezone(name string) *time.Location {
	if name == "" {
		name = config.AppConfig.DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		utils.GetLogger().Warn("Unknown vendor timezone, using UTC", zap.String("timezone", name))
		return time.UTC
	}
	return loc
}
