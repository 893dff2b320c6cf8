package stubs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"datingbot/internal/models"
	"datingbot/internal/storage"
)

var _ storage.Storage = (*MockDB)(nil)

// MockDB is an in-memory implementation of the Storage interface for testing
type MockDB struct {
	mu      sync.RWMutex
	users   map[int64]models.User
	wallets map[uuid.UUID]models.Wallet

	createErr error
	lookupErr error
}

// NewMockDB creates an empty in-memory storage
func NewMockDB() *MockDB {
	return &MockDB{
		users:   make(map[int64]models.User),
		wallets: make(map[uuid.UUID]models.Wallet),
	}
}

// FailCreateWith makes the next CreateUserWithWallet calls return err.
// Pass nil to restore normal behaviour.
func (m *MockDB) FailCreateWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createErr = err
}

// FailLookupWith makes GetUserByTelegramID return err, simulating a storage
// outage. Pass nil to restore normal behaviour.
func (m *MockDB) FailLookupWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookupErr = err
}

// CreateUserWithWallet inserts the user and a zero-balance wallet atomically
func (m *MockDB) CreateUserWithWallet(ctx context.Context, user models.User) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return uuid.Nil, m.createErr
	}
	if _, exists := m.users[user.TelegramID]; exists {
		return uuid.Nil, fmt.Errorf("user already exists: %d", user.TelegramID)
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.TelegramID] = user
	m.wallets[user.ID] = models.Wallet{
		ID:        uuid.New(),
		UserID:    user.ID,
		Balance:   decimal.Zero,
		CreatedAt: user.CreatedAt,
	}

	return user.ID, nil
}

// GetUserByTelegramID looks up a user by Telegram user ID
func (m *MockDB) GetUserByTelegramID(ctx context.Context, telegramID int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.lookupErr != nil {
		return models.User{}, m.lookupErr
	}
	user, ok := m.users[telegramID]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

// GetWalletByUserID returns the wallet row for a user
func (m *MockDB) GetWalletByUserID(ctx context.Context, userID uuid.UUID) (models.Wallet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	wallet, ok := m.wallets[userID]
	if !ok {
		return models.Wallet{}, storage.ErrNotFound
	}
	return wallet, nil
}

// UpdateLastActive refreshes the last-active timestamp for a known user
func (m *MockDB) UpdateLastActive(ctx context.Context, telegramID int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[telegramID]
	if !ok {
		return nil
	}
	user.LastActiveAt = at
	m.users[telegramID] = user
	return nil
}

// UserCount returns the number of stored users
func (m *MockDB) UserCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

// WalletCount returns the number of stored wallets
func (m *MockDB) WalletCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.wallets)
}

// Ping always succeeds for the in-memory storage
func (m *MockDB) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory storage
func (m *MockDB) Close() error {
	return nil
}
