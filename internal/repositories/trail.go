package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/munawir355/muawir-alharbi/internal/logger"
	"github.com/munawir355/muawir-alharbi/internal/models"
)

// TrailReadRepository reads trails from the store.
type TrailReadRepository struct {
	db *sqlx.DB
}

func NewTrailReadRepository(db *sqlx.DB) *TrailReadRepository {
	return &TrailReadRepository{db: db}
}

// List returns all trails. No pagination or filtering.
func (r *TrailReadRepository) List(ctx context.Context) ([]models.Trail, error) {
	const query = `
		SELECT trail_id, trail_name, description, date_created, created_by
		FROM trails
	`

	trails := []models.Trail{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &trails, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(trails),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return trails, nil
}

// GetByID returns the trail with the given id, or nil when absent.
func (r *TrailReadRepository) GetByID(ctx context.Context, trailID int) (*models.Trail, error) {
	const query = `
		SELECT trail_id, trail_name, description, date_created, created_by
		FROM trails
		WHERE trail_id = $1
	`

	var trail models.Trail
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &trail, query, trailID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{trailID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &trail, nil
}

// ListByUserID returns the trails associated with a user through the
// user_trails join table.
func (r *TrailReadRepository) ListByUserID(ctx context.Context, userID int) ([]models.Trail, error) {
	const query = `
		SELECT t.trail_id, t.trail_name, t.description, t.date_created, t.created_by
		FROM trails t
		JOIN user_trails ut ON t.trail_id = ut.trail_id
		WHERE ut.user_id = $1
	`

	trails := []models.Trail{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &trails, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(trails),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return trails, nil
}

// TrailWriteRepository mutates trails in the store.
type TrailWriteRepository struct {
	db *sqlx.DB
}

func NewTrailWriteRepository(db *sqlx.DB) *TrailWriteRepository {
	return &TrailWriteRepository{db: db}
}

// Save inserts a trail with a server-assigned id and the wall-clock
// creation time, and links the creator in user_trails. The inserted row
// itself is returned via RETURNING; the legacy "newest row by descending
// id" read-back returns the wrong row when inserts interleave.
func (r *TrailWriteRepository) Save(ctx context.Context, trailName string, description *string, createdBy int) (*models.Trail, error) {
	const insertTrail = `
		INSERT INTO trails (trail_name, description, date_created, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING trail_id, trail_name, description, date_created, created_by
	`
	args := []any{trailName, description, time.Now(), createdBy}

	e := ext(ctx, r.db)

	var trail models.Trail
	err := sqlx.GetContext(ctx, e, &trail, insertTrail, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(insertTrail), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	const linkUser = `
		INSERT INTO user_trails (user_id, trail_id)
		VALUES ($1, $2)
	`
	if _, err := e.ExecContext(ctx, linkUser, createdBy, trail.TrailID); err != nil {
		logger.Log.Errorw("failed to link trail to user", "trail_id", trail.TrailID, "user_id", createdBy, "error", err)
		return nil, err
	}

	return &trail, nil
}

// Update mutates name and description only. Owner and creation timestamp
// never change.
func (r *TrailWriteRepository) Update(ctx context.Context, trailID int, trailName string, description *string) (*models.Trail, error) {
	const query = `
		UPDATE trails
		SET trail_name = $2, description = $3
		WHERE trail_id = $1
		RETURNING trail_id, trail_name, description, date_created, created_by
	`
	args := []any{trailID, trailName, description}

	var trail models.Trail
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &trail, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &trail, nil
}

// Delete removes the trail and its user associations. Deletion is hard.
func (r *TrailWriteRepository) Delete(ctx context.Context, trailID int) error {
	e := ext(ctx, r.db)

	const unlink = `DELETE FROM user_trails WHERE trail_id = $1`
	if _, err := e.ExecContext(ctx, unlink, trailID); err != nil {
		logger.Log.Errorw("failed to unlink trail", "trail_id", trailID, "error", err)
		return err
	}

	const query = `DELETE FROM trails WHERE trail_id = $1`
	_, err := e.ExecContext(ctx, query, trailID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{trailID},
		"error", err,
	)

	return err
}
