package sqlite

import (
	"database/sql"

	"quest-tracker/internal/repository"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// questColumns is the column order expected by ScanQuest.
const questColumns = `id, description, important, completed, image_url, repeatable, repeat_time, repeat_days`

// ScanQuest scans a single quest from a database row
func ScanQuest(scanner Scanner) (*repository.Quest, error) {
	quest := &repository.Quest{}
	var description, imageURL, repeatTime, repeatDays sql.NullString

	err := scanner.Scan(
		&quest.ID,
		&description,
		&quest.Important,
		&quest.Completed,
		&imageURL,
		&quest.Repeatable,
		&repeatTime,
		&repeatDays,
	)
	if err != nil {
		return nil, err
	}

	quest.Description = StringPtrFromNull(description)
	quest.ImageURL = StringPtrFromNull(imageURL)
	quest.RepeatTime = StringPtrFromNull(repeatTime)
	quest.RepeatDays = StringPtrFromNull(repeatDays)

	return quest, nil
}

// ScanQuests scans multiple quests from database rows
func ScanQuests(rows Rows) ([]*repository.Quest, error) {
	quests := []*repository.Quest{}
	for rows.Next() {
		quest, err := ScanQuest(rows)
		if err != nil {
			return nil, err
		}
		quests = append(quests, quest)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return quests, nil
}
