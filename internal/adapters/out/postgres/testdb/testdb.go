// Package testdb opens throwaway databases with the courier schema for
// repository and handler tests.
package testdb

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	postgres_adapter "courier/internal/adapters/out/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLite returns a migrated in-memory database private to the test. The
// pool is limited to one connection so every statement sees the same memory
// database.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres_adapter.Migrate(db))
	return db
}

// Container is a running PostgreSQL instance with the schema applied.
type Container struct {
	container *postgres.PostgresContainer
	DB        *gorm.DB
}

// StartPostgres launches postgres:15-alpine and migrates it.
func StartPostgres(ctx context.Context) (*Container, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = postgres_adapter.Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Container{container: container, DB: db}, nil
}

// Truncate empties every table.
func (c *Container) Truncate() error {
	return c.DB.Exec("TRUNCATE TABLE " + strings.Join(postgres_adapter.TableNames(), ", ") + " RESTART IDENTITY").Error
}

func (c *Container) Terminate(ctx context.Context) error {
	if sqlDB, err := c.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return c.container.Terminate(ctx)
}
