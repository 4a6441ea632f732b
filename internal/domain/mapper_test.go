package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quest-tracker/internal/repository"
)

func TestQuestMapper_ToRecord(t *testing.T) {
	mapper := NewQuestMapper()
	rt := MustParseTimeOfDay("08:30")
	quest := Quest{
		ID:          4,
		Description: StringPtr("Water plants"),
		Important:   true,
		ImageURL:    StringPtr("https://example.com/p.png"),
		Repeatable:  true,
		RepeatTime:  &rt,
		RepeatDays:  []Weekday{Monday, Thursday},
	}

	result := mapper.ToRecord(quest)

	expected := &repository.Quest{
		ID:          4,
		Description: StringPtr("Water plants"),
		Important:   true,
		ImageURL:    StringPtr("https://example.com/p.png"),
		Repeatable:  true,
		RepeatTime:  StringPtr("08:30:00"),
		RepeatDays:  StringPtr("MONDAY,THURSDAY"),
	}
	assert.Equal(t, expected, result)
}

func TestQuestMapper_ToRecordCopiesPointers(t *testing.T) {
	mapper := NewQuestMapper()
	quest := NewQuest("original")

	result := mapper.ToRecord(quest)
	*result.Description = "changed"

	assert.Equal(t, "original", *quest.Description)
}

func TestQuestMapper_RepeatDaysNilVersusEmpty(t *testing.T) {
	mapper := NewQuestMapper()

	nilDays := mapper.ToRecord(Quest{})
	assert.Nil(t, nilDays.RepeatDays)

	emptyDays := mapper.ToRecord(Quest{RepeatDays: []Weekday{}})
	require.NotNil(t, emptyDays.RepeatDays)
	assert.Equal(t, "", *emptyDays.RepeatDays)

	back, err := mapper.FromRecord(emptyDays)
	require.NoError(t, err)
	assert.NotNil(t, back.RepeatDays)
	assert.Empty(t, back.RepeatDays)

	back, err = mapper.FromRecord(nilDays)
	require.NoError(t, err)
	assert.Nil(t, back.RepeatDays)
}

func TestQuestMapper_FromRecord(t *testing.T) {
	mapper := NewQuestMapper()
	record := &repository.Quest{
		ID:          9,
		Description: StringPtr(""),
		Completed:   true,
		Repeatable:  true,
		RepeatTime:  StringPtr("21:05:09"),
		RepeatDays:  StringPtr("SUNDAY,SUNDAY"),
	}

	result, err := mapper.FromRecord(record)

	require.NoError(t, err)
	assert.Equal(t, int64(9), result.ID)
	require.NotNil(t, result.Description)
	assert.Equal(t, "", *result.Description)
	assert.True(t, result.Completed)
	assert.Equal(t, TimeOfDay{Hour: 21, Minute: 5, Second: 9}, *result.RepeatTime)
	assert.Equal(t, []Weekday{Sunday, Sunday}, result.RepeatDays)
	assert.Nil(t, result.ImageURL)
}

func TestQuestMapper_FromRecordRejectsCorruptColumns(t *testing.T) {
	mapper := NewQuestMapper()

	_, err := mapper.FromRecord(&repository.Quest{ID: 1, RepeatTime: StringPtr("noon")})
	assert.Error(t, err)

	_, err = mapper.FromRecord(&repository.Quest{ID: 2, RepeatDays: StringPtr("MONDAY,FUNDAY")})
	assert.Error(t, err)
}

func TestQuestMapper_FromRecordSlice(t *testing.T) {
	mapper := NewQuestMapper()
	records := []*repository.Quest{
		{ID: 1, Description: StringPtr("a")},
		nil,
		{ID: 3},
	}

	result, err := mapper.FromRecordSlice(records)

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Nil(t, result[1])
	assert.Equal(t, int64(3), result[2].ID)
}
