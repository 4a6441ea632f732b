package domain

import (
	"fmt"

	"quest-tracker/internal/repository"
)

// QuestMapper handles conversion between domain and storage Quest models.
type QuestMapper struct{}

// NewQuestMapper creates a new QuestMapper instance.
func NewQuestMapper() *QuestMapper {
	return &QuestMapper{}
}

// ToRecord converts a domain Quest to a storage row.
func (m *QuestMapper) ToRecord(q Quest) *repository.Quest {
	record := &repository.Quest{
		ID:          q.ID,
		Description: copyString(q.Description),
		Important:   q.Important,
		Completed:   q.Completed,
		ImageURL:    copyString(q.ImageURL),
		Repeatable:  q.Repeatable,
	}

	if q.RepeatTime != nil {
		record.RepeatTime = StringPtr(q.RepeatTime.String())
	}
	if q.RepeatDays != nil {
		record.RepeatDays = StringPtr(JoinWeekdays(q.RepeatDays))
	}

	return record
}

// FromRecord converts a storage row to a domain Quest.
// It fails only when a stored repeat time or day list cannot be parsed.
func (m *QuestMapper) FromRecord(record *repository.Quest) (Quest, error) {
	q := Quest{
		ID:          record.ID,
		Description: copyString(record.Description),
		Important:   record.Important,
		Completed:   record.Completed,
		ImageURL:    copyString(record.ImageURL),
		Repeatable:  record.Repeatable,
	}

	if record.RepeatTime != nil {
		t, err := ParseTimeOfDay(*record.RepeatTime)
		if err != nil {
			return Quest{}, fmt.Errorf("quest %d: %w", record.ID, err)
		}
		q.RepeatTime = &t
	}

	if record.RepeatDays != nil {
		days, err := ParseWeekdays(*record.RepeatDays)
		if err != nil {
			return Quest{}, fmt.Errorf("quest %d: %w", record.ID, err)
		}
		q.RepeatDays = days
	}

	return q, nil
}

// FromRecordSlice converts storage rows to domain Quests. Nil rows map to nil entries.
func (m *QuestMapper) FromRecordSlice(records []*repository.Quest) ([]*Quest, error) {
	quests := make([]*Quest, len(records))
	for i, record := range records {
		if record == nil {
			continue
		}
		q, err := m.FromRecord(record)
		if err != nil {
			return nil, err
		}
		quests[i] = &q
	}
	return quests, nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
