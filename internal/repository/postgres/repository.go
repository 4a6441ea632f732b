// Package postgres implements the quest repository on PostgreSQL through the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"quest-tracker/internal/errors"
	"quest-tracker/internal/repository"
	"quest-tracker/internal/repository/postgres/migrations"
)

const questColumns = `id, description, important, completed, image_url, repeatable, repeat_time, repeat_days`

// Options tunes the PostgreSQL repository. Zero timeouts disable the per-call deadline.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
	MaxOpenConns int
}

// PostgresRepository implements repository.Repository on PostgreSQL
type PostgresRepository struct {
	db   *sql.DB
	opts Options
}

var _ repository.Repository = (*PostgresRepository)(nil)

// New connects to url, runs migrations and returns the repository.
func New(ctx context.Context, url string, opts Options) (*PostgresRepository, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, errors.NewStoreError("ping database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return NewWithDB(db, opts), nil
}

// NewWithDB wraps an already migrated connection.
func NewWithDB(db *sql.DB, opts Options) *PostgresRepository {
	return &PostgresRepository{db: db, opts: opts}
}

// Close closes the connection pool
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

func (r *PostgresRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanQuest(s scanner) (*repository.Quest, error) {
	var q repository.Quest
	var description, imageURL, repeatTime, repeatDays sql.NullString

	err := s.Scan(&q.ID, &description, &q.Important, &q.Completed, &imageURL, &q.Repeatable, &repeatTime, &repeatDays)
	if err != nil {
		return nil, err
	}

	q.Description = fromNull(description)
	q.ImageURL = fromNull(imageURL)
	q.RepeatTime = fromNull(repeatTime)
	q.RepeatDays = fromNull(repeatDays)
	return &q, nil
}

func fromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func toNull(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// FindAll retrieves all quests ordered by id
func (r *PostgresRepository) FindAll(ctx context.Context) ([]*repository.Quest, error) {
	ctx, cancel := r.withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+questColumns+` FROM quests ORDER BY id ASC`)
	if err != nil {
		return nil, MapError("query quests", "quests", "", err)
	}
	defer rows.Close()

	quests := make([]*repository.Quest, 0)
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, MapError("scan quests", "quests", "", err)
		}
		quests = append(quests, q)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError("scan quests", "quests", "", err)
	}

	return quests, nil
}

// FindByID retrieves a quest by ID
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*repository.Quest, error) {
	ctx, cancel := r.withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `SELECT `+questColumns+` FROM quests WHERE id = $1`, id)
	q, err := scanQuest(row)
	if err != nil {
		return nil, errors.WithField(MapError("find quest", "quest", fmt.Sprintf("%d", id), err), questIDField, id)
	}
	return q, nil
}

// Save inserts a new quest or updates an existing one
func (r *PostgresRepository) Save(ctx context.Context, quest *repository.Quest) error {
	ctx, cancel := r.withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	if quest.ID == 0 {
		query := `
		INSERT INTO quests (description, important, completed, image_url, repeatable, repeat_time, repeat_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

		err := r.db.QueryRowContext(ctx, query,
			toNull(quest.Description), quest.Important, quest.Completed,
			toNull(quest.ImageURL), quest.Repeatable, toNull(quest.RepeatTime), toNull(quest.RepeatDays),
		).Scan(&quest.ID)
		if err != nil {
			return MapError("insert quest", "quest", "", err)
		}
		return nil
	}

	query := `
	UPDATE quests
	SET description = $1, important = $2, completed = $3, image_url = $4, repeatable = $5, repeat_time = $6, repeat_days = $7
	WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		toNull(quest.Description), quest.Important, quest.Completed,
		toNull(quest.ImageURL), quest.Repeatable, toNull(quest.RepeatTime), toNull(quest.RepeatDays),
		quest.ID,
	)
	if err != nil {
		return errors.WithField(MapError("update quest", "quest", fmt.Sprintf("%d", quest.ID), err), questIDField, quest.ID)
	}
	return checkAffected(result, quest.ID)
}

// Delete removes a quest by its ID
func (r *PostgresRepository) Delete(ctx context.Context, quest *repository.Quest) error {
	ctx, cancel := r.withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx, `DELETE FROM quests WHERE id = $1`, quest.ID)
	if err != nil {
		return errors.WithField(MapError("delete quest", "quest", fmt.Sprintf("%d", quest.ID), err), questIDField, quest.ID)
	}
	return checkAffected(result, quest.ID)
}

func checkAffected(result sql.Result, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("get rows affected", err).With(questIDField, id)
	}
	if n == 0 {
		return errors.NewNotFoundError("quest", fmt.Sprintf("%d", id))
	}
	return nil
}
