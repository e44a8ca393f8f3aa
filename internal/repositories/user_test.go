package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/munawir355/muawir-alharbi/internal/models"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "name", "email", "password"}).
			AddRow(1, "alice", "alice@example.com", models.PasswordSentinel)
		mock.ExpectQuery("SELECT user_id, name, email, password FROM users WHERE email").
			WithArgs("alice@example.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, 1, user.UserID)
		assert.Equal(t, "alice", user.Name)
	})

	t.Run("absent", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, name, email, password FROM users WHERE email").
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	t.Run("assigns next id", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "name", "email", "password"}).
			AddRow(4, "bob", "bob@example.com", models.PasswordSentinel)
		mock.ExpectQuery(regexp.QuoteMeta("COALESCE(MAX(user_id), 0) + 1")).
			WithArgs("bob", "bob@example.com", models.PasswordSentinel).
			WillReturnRows(rows)

		user, err := repo.Save(ctx, "bob", "bob@example.com")
		assert.NoError(t, err)
		assert.Equal(t, 4, user.UserID)
		assert.Equal(t, models.PasswordSentinel, user.Password)
	})

	t.Run("starts at one on empty table", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "name", "email", "password"}).
			AddRow(1, "first", "first@example.com", models.PasswordSentinel)
		mock.ExpectQuery(regexp.QuoteMeta("COALESCE(MAX(user_id), 0) + 1")).
			WithArgs("first", "first@example.com", models.PasswordSentinel).
			WillReturnRows(rows)

		user, err := repo.Save(ctx, "first", "first@example.com")
		assert.NoError(t, err)
		assert.Equal(t, 1, user.UserID)
	})

	t.Run("insert error surfaces", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("COALESCE(MAX(user_id), 0) + 1")).
			WithArgs("dup", "dup@example.com", models.PasswordSentinel).
			WillReturnError(sql.ErrConnDone)

		user, err := repo.Save(ctx, "dup", "dup@example.com")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
