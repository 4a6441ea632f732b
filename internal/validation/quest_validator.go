package validation

import (
	"quest-tracker/internal/domain"
)

const (
	FieldDescription = "description"
	FieldRepeatTime  = "repeat_time"
)

// QuestValidator holds the create and update rules for quests.
// Create only enforces the recurrence rule; update also requires a non-blank description.
type QuestValidator struct{}

// NewQuestValidator creates a new quest validator
func NewQuestValidator() *QuestValidator {
	return &QuestValidator{}
}

// ValidateForCreate rejects a repeatable quest without a repeat time.
func (qv *QuestValidator) ValidateForCreate(q domain.Quest) error {
	if q.MissingRepeatTime() {
		ve := NewValidationError()
		ve.AddRequiredError(FieldRepeatTime)
		return ve
	}
	return nil
}

// ValidateForUpdate checks, in order: description present, description not blank,
// repeat time present when repeatable. The first failure is returned.
func (qv *QuestValidator) ValidateForUpdate(q domain.Quest) error {
	ve := NewValidationError()

	switch {
	case q.Description == nil:
		ve.AddRequiredError(FieldDescription)
	case q.HasBlankDescription():
		ve.AddBlankError(FieldDescription, *q.Description)
	case q.MissingRepeatTime():
		ve.AddRequiredError(FieldRepeatTime)
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
