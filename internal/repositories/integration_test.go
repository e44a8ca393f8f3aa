package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/munawir355/muawir-alharbi/internal/models"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id INT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS trails (
		trail_id SERIAL PRIMARY KEY,
		trail_name VARCHAR(200) NOT NULL,
		description TEXT,
		date_created TIMESTAMP NOT NULL DEFAULT NOW(),
		created_by INT NOT NULL REFERENCES users(user_id)
	);

	CREATE TABLE IF NOT EXISTS user_trails (
		user_id INT NOT NULL REFERENCES users(user_id),
		trail_id INT NOT NULL REFERENCES trails(trail_id),
		PRIMARY KEY (user_id, trail_id)
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserRepositories_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	t.Run("SaveAssignsSequentialIDs", func(t *testing.T) {
		alice, err := writeRepo.Save(ctx, "alice", "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, 1, alice.UserID)
		assert.Equal(t, models.PasswordSentinel, alice.Password)

		bob, err := writeRepo.Save(ctx, "bob", "bob@example.com")
		assert.NoError(t, err)
		assert.Equal(t, 2, bob.UserID)
	})

	t.Run("GetByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "alice", user.Name)
	})

	t.Run("GetByEmailAbsent", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestTrailRepositories_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userRepo := NewUserWriteRepository(db)
	writeRepo := NewTrailWriteRepository(db)
	readRepo := NewTrailReadRepository(db)
	ctx := context.Background()

	alice, err := userRepo.Save(ctx, "alice", "alice@example.com")
	assert.NoError(t, err)
	bob, err := userRepo.Save(ctx, "bob", "bob@example.com")
	assert.NoError(t, err)

	desc := "A loop around Dartmoor"
	trail, err := writeRepo.Save(ctx, "Dartmoor Loop", &desc, alice.UserID)
	assert.NoError(t, err)
	assert.NotZero(t, trail.TrailID)
	assert.Equal(t, alice.UserID, trail.CreatedBy)

	t.Run("GetByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, trail.TrailID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "Dartmoor Loop", got.TrailName)
	})

	t.Run("SaveLinksCreator", func(t *testing.T) {
		trails, err := readRepo.ListByUserID(ctx, alice.UserID)
		assert.NoError(t, err)
		assert.Len(t, trails, 1)

		trails, err = readRepo.ListByUserID(ctx, bob.UserID)
		assert.NoError(t, err)
		assert.Empty(t, trails)
	})

	t.Run("List", func(t *testing.T) {
		trails, err := readRepo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, trails, 1)
	})

	t.Run("Update", func(t *testing.T) {
		newDesc := "Extended loop"
		updated, err := writeRepo.Update(ctx, trail.TrailID, "Dartmoor Grand Loop", &newDesc)
		assert.NoError(t, err)
		assert.Equal(t, "Dartmoor Grand Loop", updated.TrailName)
		assert.Equal(t, alice.UserID, updated.CreatedBy)
	})

	t.Run("Delete", func(t *testing.T) {
		assert.NoError(t, writeRepo.Delete(ctx, trail.TrailID))

		got, err := readRepo.GetByID(ctx, trail.TrailID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
