// Package entity defines the domain models for the mood feature.
package entity

import "time"

// Mood is one journal entry. Entries are immutable once saved.
type Mood struct {
	ID        uint
	Email     string    // owner; matched by value, not a managed reference
	Mood      string    // free-form label, e.g. "happy"
	Triggers  []string  // set of tags; order is not significant
	CreatedAt time.Time // assigned by the server at save time (UTC)
}

// History is the answer to a history query.
type History struct {
	// Entries are ordered newest first.
	Entries []Mood
	// TriggerCounts maps each trigger to the number of Entries carrying it.
	TriggerCounts map[string]int
}
