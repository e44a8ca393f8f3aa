package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/munawir355/muawir-alharbi/internal/logger"
	"github.com/munawir355/muawir-alharbi/internal/models"
)

// UserReadRepository reads users from the directory.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT user_id, name, email, password
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, email)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository creates users in the directory.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user with a fresh id. The legacy scheme assigned
// max(user_id)+1 with a separate read, which races under concurrency;
// computing it inside the INSERT keeps the observable contract (fresh
// unique positive ids, 1 on an empty table) in a single atomic statement.
func (r *UserWriteRepository) Save(ctx context.Context, name, email string) (*models.User, error) {
	const query = `
		INSERT INTO users (user_id, name, email, password)
		SELECT COALESCE(MAX(user_id), 0) + 1, $1, $2, $3
		FROM users
		RETURNING user_id, name, email, password
	`
	args := []any{name, email, models.PasswordSentinel}

	var user models.User
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}
