package models

import "time"

// PriceRange is the price band a vendor quotes for its service category.
// Min is never greater than Max; both are non-negative.
type PriceRange struct {
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}

// Vendor is one entry in the marketplace catalog mirror. Descriptive fields
// (description, specialties, portfolio) are opaque pass-through data from the
// upstream marketplace and are never interpreted here beyond substring search.
type Vendor struct {
	ID          string     `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	ServiceType string     `bson:"serviceType" json:"serviceType"` // e.g. "Catering"
	PriceRange  PriceRange `bson:"priceRange" json:"priceRange"`
	Location    string     `bson:"location" json:"location"`
	Rating      float64    `bson:"rating" json:"rating"` // 0 to 5
	Description string     `bson:"description" json:"description,omitempty"`
	Specialties []string   `bson:"specialties" json:"specialties,omitempty"`
	Portfolio   []string   `bson:"portfolio" json:"portfolio,omitempty"`
	SyncedAt    time.Time  `bson:"syncedAt" json:"syncedAt,omitzero"`
}
