package availability

import (
	"reflect"
	"testing"
	"time"

	"planora/models"
)

// aug30 is a Sunday.
var testNow = time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

func mondayPhoneWindow() []models.AvailabilityWindow {
	return []models.AvailabilityWindow{
		{
			DayOfWeek:        1,
			StartMinute:      540, // 09:00
			EndMinute:        660, // 11:00
			AppointmentTypes: []models.AppointmentType{models.AppointmentPhone},
		},
	}
}

func TestGenerateSlotsMondayExample(t *testing.T) {
	slots := GenerateSlots(mondayPhoneWindow(), models.AppointmentPhone, testNow, SlotOptions{})

	// Two Mondays fall inside the 14-day horizon starting tomorrow:
	// Aug 31 and Sep 7. Each yields 09:00 and 10:00; 11:00 is excluded by
	// the strict end bound.
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}

	expected := []time.Time{
		time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC),
		time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC),
	}
	for i, want := range expected {
		if !slots[i].Start.Equal(want) {
			t.Errorf("slot %d: expected %v, got %v", i, want, slots[i].Start)
		}
	}

	if slots[0].TimeLabel != "9:00 AM" {
		t.Errorf("expected label 9:00 AM, got %q", slots[0].TimeLabel)
	}
}

func TestGenerateSlotsDeterminism(t *testing.T) {
	first := GenerateSlots(mondayPhoneWindow(), models.AppointmentPhone, testNow, SlotOptions{})
	second := GenerateSlots(mondayPhoneWindow(), models.AppointmentPhone, testNow, SlotOptions{})
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different slot lists")
	}
}

func TestGenerateSlotsHorizonBound(t *testing.T) {
	windows := []models.AvailabilityWindow{}
	for day := 0; day < 7; day++ {
		windows = append(windows, models.AvailabilityWindow{
			DayOfWeek:        day,
			StartMinute:      600,
			EndMinute:        720,
			AppointmentTypes: []models.AppointmentType{models.AppointmentVirtual},
		})
	}

	slots := GenerateSlots(windows, models.AppointmentVirtual, testNow, SlotOptions{})

	tomorrow := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	limit := testNow.AddDate(0, 0, DefaultHorizonDays+1)
	for _, s := range slots {
		if s.Start.Before(tomorrow) {
			t.Errorf("slot %v precedes tomorrow", s.Start)
		}
		if !s.Start.Before(limit) {
			t.Errorf("slot %v exceeds the horizon", s.Start)
		}
	}
}

func TestGenerateSlotsEmptyWindows(t *testing.T) {
	slots := GenerateSlots(nil, models.AppointmentPhone, testNow, SlotOptions{})
	if len(slots) != 0 {
		t.Fatalf("expected no slots for empty windows, got %d", len(slots))
	}
}

func TestGenerateSlotsTypeFilter(t *testing.T) {
	slots := GenerateSlots(mondayPhoneWindow(), models.AppointmentVirtual, testNow, SlotOptions{})
	if len(slots) != 0 {
		t.Fatalf("expected no slots for unoffered type, got %d", len(slots))
	}
}

func TestGenerateSlotsDropsPartialSlot(t *testing.T) {
	windows := []models.AvailabilityWindow{
		{
			DayOfWeek:        1,
			StartMinute:      540, // 09:00
			EndMinute:        630, // 10:30
			AppointmentTypes: []models.AppointmentType{models.AppointmentInPerson},
		},
	}

	slots := GenerateSlots(windows, models.AppointmentInPerson, testNow, SlotOptions{HorizonDays: 7})

	// Only the 09:00 slot fits; the 10:00 slot would start inside the
	// window but a full hour is not required, only a start strictly before
	// the end, so 10:00 is still emitted. 10:30 onward is not.
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if got := slots[1].Start.Minute(); got != 0 {
		t.Errorf("expected slot on the hour, got minute %d", got)
	}
}

func TestGenerateSlotsFirstWindowWins(t *testing.T) {
	windows := []models.AvailabilityWindow{
		{
			DayOfWeek:        1,
			StartMinute:      540,
			EndMinute:        600,
			AppointmentTypes: []models.AppointmentType{models.AppointmentPhone},
		},
		{
			DayOfWeek:        1,
			StartMinute:      720,
			EndMinute:        780,
			AppointmentTypes: []models.AppointmentType{models.AppointmentPhone},
		},
	}

	slots := GenerateSlots(windows, models.AppointmentPhone, testNow, SlotOptions{HorizonDays: 7})

	if len(slots) != 1 {
		t.Fatalf("expected 1 slot from the first window only, got %d", len(slots))
	}
	if got := slots[0].Start.Hour(); got != 9 {
		t.Errorf("expected the 09:00 window to win, got hour %d", got)
	}
}

func TestGenerateSlotsCustomDuration(t *testing.T) {
	slots := GenerateSlots(mondayPhoneWindow(), models.AppointmentPhone, testNow, SlotOptions{
		HorizonDays:  7,
		SlotDuration: 30 * time.Minute,
	})

	// One Monday in a 7-day horizon, 09:00-11:00 in 30-minute steps.
	if len(slots) != 4 {
		t.Fatalf("expected 4 half-hour slots, got %d", len(slots))
	}
}

func TestGenerateSlotsChronological(t *testing.T) {
	windows := append(mondayPhoneWindow(), models.AvailabilityWindow{
		DayOfWeek:        4,
		StartMinute:      780,
		EndMinute:        900,
		AppointmentTypes: []models.AppointmentType{models.AppointmentPhone},
	})

	slots := GenerateSlots(windows, models.AppointmentPhone, testNow, SlotOptions{})
	for i := 1; i < len(slots); i++ {
		if !slots[i-1].Start.Before(slots[i].Start) {
			t.Fatalf("slots out of order at index %d: %v >= %v", i, slots[i-1].Start, slots[i].Start)
		}
	}
}
