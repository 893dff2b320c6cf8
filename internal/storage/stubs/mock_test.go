package stubs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datingbot/internal/models"
	"datingbot/internal/storage"
)

func testUser(telegramID int64) models.User {
	now := time.Now().UTC()
	return models.User{
		TelegramID:       telegramID,
		Username:         "alice",
		FirstName:        "Alice",
		Age:              25,
		Gender:           "Female",
		Location:         "Austin, USA",
		Denomination:     "Baptist",
		ChurchAttendance: "Weekly",
		Bio:              "hello",
		PhotoFileID:      "p",
		VideoFileID:      "v",
		CreatedAt:        now,
		LastActiveAt:     now,
	}
}

func TestMockDB_CreateUserWithWallet(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()

	id, err := db.CreateUserWithWallet(ctx, testUser(123))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	user, err := db.GetUserByTelegramID(ctx, 123)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)

	wallet, err := db.GetWalletByUserID(ctx, id)
	require.NoError(t, err)
	assert.True(t, wallet.Balance.IsZero())
}

func TestMockDB_DuplicateTelegramIDRejected(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()

	_, err := db.CreateUserWithWallet(ctx, testUser(123))
	require.NoError(t, err)

	_, err = db.CreateUserWithWallet(ctx, testUser(123))
	assert.Error(t, err)
	assert.Equal(t, 1, db.UserCount())
	assert.Equal(t, 1, db.WalletCount())
}

func TestMockDB_FailureInjectionLeavesZeroRows(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()

	db.FailCreateWith(errors.New("boom"))
	_, err := db.CreateUserWithWallet(ctx, testUser(123))
	assert.Error(t, err)
	assert.Equal(t, 0, db.UserCount())
	assert.Equal(t, 0, db.WalletCount())

	db.FailCreateWith(nil)
	_, err = db.CreateUserWithWallet(ctx, testUser(123))
	assert.NoError(t, err)
}

func TestMockDB_GetUserNotFound(t *testing.T) {
	db := NewMockDB()

	_, err := db.GetUserByTelegramID(context.Background(), 999)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = db.GetWalletByUserID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMockDB_UpdateLastActive(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()

	_, err := db.CreateUserWithWallet(ctx, testUser(123))
	require.NoError(t, err)

	later := time.Now().UTC().Add(time.Hour)
	require.NoError(t, db.UpdateLastActive(ctx, 123, later))

	user, err := db.GetUserByTelegramID(ctx, 123)
	require.NoError(t, err)
	assert.True(t, user.LastActiveAt.Equal(later))

	// unknown users are a no-op
	assert.NoError(t, db.UpdateLastActive(ctx, 999, later))
}
