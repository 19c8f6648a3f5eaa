package availability

import (
	"time"

	"planora/models"
)

const (
	// DefaultHorizonDays is how far ahead slots are generated.
	DefaultHorizonDays = 14
	// DefaultSlotDuration is the bookable increment within a window.
	DefaultSlotDuration = time.Hour
)

// SlotOptions tunes slot generation. Zero values fall back to the defaults;
// a nil Location uses the location of the reference time.
type SlotOptions struct {
	HorizonDays  int
	SlotDuration time.Duration
	Location     *time.Location
}

// GenerateSlots expands a vendor's weekly availability windows into concrete
// bookable slots for the requested appointment type. Slots start tomorrow
// relative to now and run through now + horizon days inclusive, in
// chronological order. The result is deterministic for identical inputs and
// is not filtered against already-booked appointments; double-booking is
// enforced downstream at booking-commit time.
func GenerateSlots(windows []models.AvailabilityWindow, requested models.AppointmentType, now time.Time, opts SlotOptions) []models.TimeSlot {
	horizon := opts.HorizonDays
	if horizon <= 0 {
		horizon = DefaultHorizonDays
	}
	duration := opts.SlotDuration
	if duration <= 0 {
		duration = DefaultSlotDuration
	}
	loc := opts.Location
	if loc == nil {
		loc = now.Location()
	}
	step := int(duration / time.Minute)
	if step <= 0 {
		step = int(DefaultSlotDuration / time.Minute)
	}

	slots := make([]models.TimeSlot, 0)
	base := now.In(loc)
	for i := 1; i <= horizon; i++ {
		day := base.AddDate(0, 0, i)
		window, ok := firstMatchingWindow(windows, int(day.Weekday()), requested)
		if !ok {
			continue
		}
		// Strict < drops a trailing partial slot that would overrun the window.
		for minute := window.StartMinute; minute < window.EndMinute; minute += step {
			start := time.Date(day.Year(), day.Month(), day.Day(), 0, minute, 0, 0, loc)
			slots = append(slots, models.TimeSlot{
				Start:     start,
				DateLabel: start.Format("Monday, Jan 2"),
				TimeLabel: start.Format("3:04 PM"),
			})
		}
	}
	return slots
}

// firstMatchingWindow returns the first window in list order that falls on
// the weekday and offers the requested type. Later windows for the same day
// are ignored.
func firstMatchingWindow(windows []models.AvailabilityWindow, weekday int, requested models.AppointmentType) (models.AvailabilityWindow, bool) {
	for _, w := range windows {
		if w.DayOfWeek == weekday && w.Offers(requested) {
			return w, true
		}
	}
	return models.AvailabilityWindow{}, false
}
