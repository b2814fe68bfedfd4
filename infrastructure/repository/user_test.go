package repository

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mua-studio-api/infrastructure/storage"
	"github.com/vfg2006/mua-studio-api/internal/domain"
)

func TestUserRepository(t *testing.T) {
	backend := storage.NewMemoryBackend()
	repo := NewUserRepository(backend)

	user := &domain.User{
		ID:           "u-1",
		Name:         "Siti",
		Email:        "siti@example.com",
		PasswordHash: "hash",
		Active:       true,
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := repo.CreateUser(user)
	require.NoError(t, err)

	t.Run("Busca por email ignora maiúsculas", func(t *testing.T) {
		found, err := repo.GetUserByEmail("SITI@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "u-1", found.ID)
	})

	t.Run("Email não cadastrado", func(t *testing.T) {
		found, err := repo.GetUserByEmail("outra@example.com")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Atualização", func(t *testing.T) {
		updated := *user
		updated.Name = "Siti Rahma"
		require.NoError(t, repo.UpdateUser(&updated))

		found, err := repo.GetUserByID("u-1")
		require.NoError(t, err)
		assert.Equal(t, "Siti Rahma", found.Name)
	})

	t.Run("ID inexistente", func(t *testing.T) {
		_, err := repo.GetUserByID("u-9")
		assert.True(t, errors.Is(err, ErrUserNotFound))

		err = repo.UpdateUser(&domain.User{ID: "u-9"})
		assert.True(t, errors.Is(err, ErrUserNotFound))
	})

	t.Run("Listagem sem hash de senha", func(t *testing.T) {
		users, err := repo.ListUser()
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Empty(t, users[0].PasswordHash)

		found, err := repo.GetUserByID("u-1")
		require.NoError(t, err)
		assert.Equal(t, "hash", found.PasswordHash, "o slot mantém o hash")
	})

	t.Run("Contas ficam em slot próprio", func(t *testing.T) {
		_, exists, err := backend.Get(usersSlot)
		require.NoError(t, err)
		assert.True(t, exists)

		_, exists, err = backend.Get(domain.KindClients.String())
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
