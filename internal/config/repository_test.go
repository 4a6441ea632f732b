package config

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quest-tracker/internal/repository"
)

func TestCreateRepository_SQLite(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = t.TempDir()

	repo, err := CreateRepository(context.Background(), cfg)
	require.NoError(t, err)
	defer repo.Close()

	desc := "Test quest"
	require.NoError(t, repo.Save(context.Background(), &repository.Quest{Description: &desc}))

	quests, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, quests, 1)
}

func TestCreateRepository_UnsupportedDriver(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Driver = "mysql"

	repo, err := CreateRepository(context.Background(), cfg)

	assert.Nil(t, repo)
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "database.driver", cfgErr.Field)
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()
	require.NoError(t, err)
	defer repo.Close()

	quests, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, quests)
}
