package sqlite

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quest-tracker/internal/repository"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}

	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = ts.data[i].(int64)
		case *bool:
			*v = ts.data[i].(bool)
		case *sql.NullString:
			*v = ts.data[i].(sql.NullString)
		}
	}

	return nil
}

// TestRows implements the Rows interface over a list of scanners
type TestRows struct {
	scanners []*TestScanner
	index    int
	err      error
}

func (tr *TestRows) Next() bool {
	if tr.index >= len(tr.scanners) {
		return false
	}
	tr.index++
	return true
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	return tr.scanners[tr.index-1].Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.err
}

func questRow(id int64, description sql.NullString, important bool) *TestScanner {
	return &TestScanner{
		data: []interface{}{
			id,
			description,
			important,
			false,
			sql.NullString{},
			false,
			sql.NullString{},
			sql.NullString{},
		},
	}
}

func TestScanQuest(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *repository.Quest
		expectError bool
	}{
		{
			name: "Repeatable quest with every column set",
			scanner: &TestScanner{
				data: []interface{}{
					int64(1),
					sql.NullString{String: "Water plants", Valid: true},
					true,
					false,
					sql.NullString{String: "https://example.com/plant.png", Valid: true},
					true,
					sql.NullString{String: "08:30:00", Valid: true},
					sql.NullString{String: "MONDAY,THURSDAY", Valid: true},
				},
			},
			expected: &repository.Quest{
				ID:          1,
				Description: strPtr("Water plants"),
				Important:   true,
				ImageURL:    strPtr("https://example.com/plant.png"),
				Repeatable:  true,
				RepeatTime:  strPtr("08:30:00"),
				RepeatDays:  strPtr("MONDAY,THURSDAY"),
			},
		},
		{
			name:    "Null columns stay nil",
			scanner: questRow(2, sql.NullString{}, false),
			expected: &repository.Quest{
				ID: 2,
			},
		},
		{
			name:    "Empty description is kept distinct from null",
			scanner: questRow(3, sql.NullString{String: "", Valid: true}, false),
			expected: &repository.Quest{
				ID:          3,
				Description: strPtr(""),
			},
		},
		{
			name:        "Scanner error",
			scanner:     &TestScanner{err: sql.ErrNoRows},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanQuest(tt.scanner)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestScanQuests(t *testing.T) {
	t.Run("Scans every row in order", func(t *testing.T) {
		rows := &TestRows{scanners: []*TestScanner{
			questRow(1, sql.NullString{String: "first", Valid: true}, false),
			questRow(2, sql.NullString{String: "second", Valid: true}, true),
		}}

		result, err := ScanQuests(rows)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, int64(1), result[0].ID)
		assert.Equal(t, int64(2), result[1].ID)
		assert.True(t, result[1].Important)
	})

	t.Run("No rows yields an empty slice", func(t *testing.T) {
		result, err := ScanQuests(&TestRows{})

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("Row scan error is returned", func(t *testing.T) {
		rows := &TestRows{scanners: []*TestScanner{{err: errors.New("bad row")}}}

		result, err := ScanQuests(rows)

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Iteration error is returned", func(t *testing.T) {
		rows := &TestRows{err: errors.New("connection lost")}

		result, err := ScanQuests(rows)

		assert.EqualError(t, err, "connection lost")
		assert.Nil(t, result)
	})
}

func strPtr(s string) *string {
	return &s
}
