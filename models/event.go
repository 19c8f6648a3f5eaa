package models

import "time"

// Event is the slice of an upstream event record that matching cares about.
// Budget is nil when the client has not entered one yet.
type Event struct {
	ID       string    `bson:"id" json:"id"`
	Name     string    `bson:"name" json:"name"`
	Budget   *float64  `bson:"budget,omitempty" json:"budget,omitempty"`
	SyncedAt time.Time `bson:"syncedAt" json:"syncedAt,omitzero"`
}
