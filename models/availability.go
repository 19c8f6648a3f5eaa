package models

import "time"

// AppointmentType is the channel through which a vendor/client meeting occurs.
type AppointmentType string

const (
	AppointmentInPerson AppointmentType = "in_person"
	AppointmentPhone    AppointmentType = "phone"
	AppointmentVirtual  AppointmentType = "virtual"
)

// Valid reports whether t is one of the known appointment types.
func (t AppointmentType) Valid() bool {
	switch t {
	case AppointmentInPerson, AppointmentPhone, AppointmentVirtual:
		return true
	}
	return false
}

// AvailabilityWindow is a recurring weekly interval during which a vendor
// accepts the listed appointment types. Start and End are minutes from
// midnight (e.g., 540 for 9:00 AM), with Start < End. Windows for the same
// weekday are not required to be non-overlapping.
type AvailabilityWindow struct {
	DayOfWeek        int               `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartMinute      int               `bson:"startMinute" json:"startMinute"`
	EndMinute        int               `bson:"endMinute" json:"endMinute"`
	AppointmentTypes []AppointmentType `bson:"appointmentTypes" json:"appointmentTypes"`
}

// Offers reports whether the window accepts the given appointment type.
func (w AvailabilityWindow) Offers(t AppointmentType) bool {
	for _, at := range w.AppointmentTypes {
		if at == t {
			return true
		}
	}
	return false
}

// VendorAvailability is a vendor's full weekly availability setup as mirrored
// from the upstream marketplace.
type VendorAvailability struct {
	VendorID string               `bson:"vendorId" json:"vendorId"`
	Timezone string               `bson:"timezone,omitempty" json:"timezone,omitempty"` // IANA name, e.g. "America/New_York"
	Windows  []AvailabilityWindow `bson:"windows" json:"windows"`
	SyncedAt time.Time            `bson:"syncedAt" json:"syncedAt,omitzero"`
}

// TimeSlot is a single bookable start-time instance derived from a recurring
// weekly availability window. Slots are computed fresh on every request and
// never persisted; they become an appointment only when a client submits a
// booking request.
type TimeSlot struct {
	Start     time.Time `json:"start"`
	DateLabel string    `json:"dateLabel"`
	TimeLabel string    `json:"timeLabel"`
}
