package storage_test

import (
	"testing"

	"ordersys/internal/config"
	"ordersys/internal/repositories"
	"ordersys/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpen_Memory(t *testing.T) {
	repo, closeFn, err := storage.Open(config.StorageConfig{Driver: config.DriverMemory}, zap.NewNop())
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &repositories.MemoryRepository{}, repo)
}

func TestOpen_SQLite(t *testing.T) {
	repo, closeFn, err := storage.Open(config.StorageConfig{
		Driver: config.DriverSQLite,
		DSN:    "file:storage_open_test?mode=memory&cache=shared",
	}, zap.NewNop())
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &repositories.GORMRepository{}, repo)

	user, err := repo.AddUser("Alice", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, _, err := storage.Open(config.StorageConfig{Driver: "cassandra"}, zap.NewNop())
	assert.Error(t, err)
}
