// Package repository defines the quest store contract and the row model shared
// by the sqlite and postgres implementations.
package repository

import "context"

// Quest is the storage row for a quest.
// RepeatTime is stored as "HH:MM:SS"; RepeatDays as a comma-separated list.
// A nil RepeatDays is NULL, an empty string is an empty list.
type Quest struct {
	ID          int64
	Description *string
	Important   bool
	Completed   bool
	ImageURL    *string
	Repeatable  bool
	RepeatTime  *string
	RepeatDays  *string
}

// Repository defines the persistence operations for quests
type Repository interface {
	// FindAll returns every quest ordered by id ascending.
	FindAll(ctx context.Context) ([]*Quest, error)
	// FindByID returns a not found error when no quest has the id.
	FindByID(ctx context.Context, id int64) (*Quest, error)
	// Save inserts when ID is zero and assigns the new ID, otherwise updates in place.
	Save(ctx context.Context, quest *Quest) error
	Delete(ctx context.Context, quest *Quest) error

	Close() error
}
