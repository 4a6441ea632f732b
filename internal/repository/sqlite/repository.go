package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quest-tracker/internal/errors"
	"quest-tracker/internal/repository"
	"quest-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Options tunes the SQLite repository. Zero timeouts disable the per-call deadline.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// SQLiteRepository implements repository.Repository on an SQLite database
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

var _ repository.Repository = (*SQLiteRepository)(nil)

// questIDField tags store errors with the quest they concern.
const questIDField = "quest_id"

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions opens dbPath, runs migrations and applies the given timeouts.
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	if err := ensureDir(dbPath); err != nil {
		return nil, errors.NewDatabaseError("create database directory", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// One connection serialises writers and keeps ":memory:" a single database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("ping database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts}, nil
}

// ensureDir creates the parent directory of a file-backed database.
func ensureDir(dbPath string) error {
	if strings.Contains(dbPath, ":memory:") || strings.Contains(dbPath, "mode=memory") {
		return nil
	}
	clean := strings.Split(strings.TrimPrefix(dbPath, "file:"), "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, r.opts.QueryTimeout)
}

func (r *SQLiteRepository) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, r.opts.WriteTimeout)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// FindAll retrieves all quests ordered by id
func (r *SQLiteRepository) FindAll(ctx context.Context) ([]*repository.Quest, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `SELECT ` + questColumns + ` FROM quests ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanQuests, "quests")
}

// FindByID retrieves a quest by ID
func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*repository.Quest, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `SELECT ` + questColumns + ` FROM quests WHERE id = ?`
	quest, err := QuerySingle(ctx, r.db, query, ScanQuest, "quest", fmt.Sprintf("%d", id), id)
	return quest, errors.WithField(err, questIDField, id)
}

// Save inserts a new quest or updates an existing one
func (r *SQLiteRepository) Save(ctx context.Context, quest *repository.Quest) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	if quest.ID == 0 {
		return r.insert(ctx, quest)
	}
	return r.update(ctx, quest)
}

func (r *SQLiteRepository) insert(ctx context.Context, quest *repository.Quest) error {
	query := `
	INSERT INTO quests (description, important, completed, image_url, repeatable, repeat_time, repeat_days)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		NullableString(quest.Description),
		quest.Important,
		quest.Completed,
		NullableString(quest.ImageURL),
		quest.Repeatable,
		NullableString(quest.RepeatTime),
		NullableString(quest.RepeatDays),
	)
	if err != nil {
		return err
	}

	quest.ID = id
	return nil
}

func (r *SQLiteRepository) update(ctx context.Context, quest *repository.Quest) error {
	query := `
	UPDATE quests
	SET description = ?, important = ?, completed = ?, image_url = ?, repeatable = ?, repeat_time = ?, repeat_days = ?
	WHERE id = ?`

	err := ExecuteWithRowsAffected(ctx, r.db, query, "quest", fmt.Sprintf("%d", quest.ID),
		NullableString(quest.Description),
		quest.Important,
		quest.Completed,
		NullableString(quest.ImageURL),
		quest.Repeatable,
		NullableString(quest.RepeatTime),
		NullableString(quest.RepeatDays),
		quest.ID,
	)
	return errors.WithField(err, questIDField, quest.ID)
}

// Delete removes a quest by its ID
func (r *SQLiteRepository) Delete(ctx context.Context, quest *repository.Quest) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `DELETE FROM quests WHERE id = ?`
	err := ExecuteWithRowsAffected(ctx, r.db, query, "quest", fmt.Sprintf("%d", quest.ID), quest.ID)
	return errors.WithField(err, questIDField, quest.ID)
}
