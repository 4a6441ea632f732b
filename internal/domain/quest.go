package domain

import "strings"

// Quest represents a quest in the domain model.
// Pointer fields are optional; a nil Description is distinct from an empty one.
type Quest struct {
	ID          int64
	Description *string
	Important   bool
	Completed   bool
	ImageURL    *string
	Repeatable  bool
	RepeatTime  *TimeOfDay
	RepeatDays  []Weekday
}

// NewQuest creates a new, not yet persisted Quest with the given description.
func NewQuest(description string) Quest {
	return Quest{
		Description: &description,
	}
}

// IsPersisted reports whether storage has assigned an identity.
func (q Quest) IsPersisted() bool {
	return q.ID > 0
}

// DescriptionText returns the description or "" when absent.
func (q Quest) DescriptionText() string {
	if q.Description == nil {
		return ""
	}
	return *q.Description
}

// HasBlankDescription reports whether the description is present but empty or whitespace.
func (q Quest) HasBlankDescription() bool {
	return q.Description != nil && strings.TrimSpace(*q.Description) == ""
}

// MissingRepeatTime reports whether a repeatable quest lacks its repeat time.
func (q Quest) MissingRepeatTime() bool {
	return q.Repeatable && q.RepeatTime == nil
}

// ApplyFrom copies every mutable field of src onto q. The identity is left untouched.
func (q *Quest) ApplyFrom(src Quest) {
	q.Description = src.Description
	q.Important = src.Important
	q.Completed = src.Completed
	q.ImageURL = src.ImageURL
	q.Repeatable = src.Repeatable
	q.RepeatTime = src.RepeatTime
	q.RepeatDays = src.RepeatDays
}

// String returns the description for display purposes.
func (q Quest) String() string {
	return q.DescriptionText()
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
