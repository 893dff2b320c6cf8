package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"datingbot/internal/models"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// Storage defines the interface for data storage operations
type Storage interface {
	// CreateUserWithWallet inserts the user row and a zero-balance wallet row
	// in a single transaction. Either both rows exist afterwards or neither does.
	CreateUserWithWallet(ctx context.Context, user models.User) (uuid.UUID, error)

	// GetUserByTelegramID looks up a finalized profile by the Telegram user ID
	GetUserByTelegramID(ctx context.Context, telegramID int64) (models.User, error)

	// GetWalletByUserID returns the wallet created alongside the user
	GetWalletByUserID(ctx context.Context, userID uuid.UUID) (models.Wallet, error)

	// UpdateLastActive refreshes the last-active timestamp for a known user
	UpdateLastActive(ctx context.Context, telegramID int64, at time.Time) error

	// Lifecycle
	Ping(ctx context.Context) error
	Close() error
}
