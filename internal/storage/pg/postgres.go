package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"datingbot/internal/models"
	"datingbot/internal/storage"
)

var _ storage.Storage = (*DB)(nil)

// DB is the Postgres implementation of the storage interface
type DB struct {
	pool *pgxpool.Pool
}

// New opens a connection pool and verifies connectivity
func New(ctx context.Context, dsn string) (*DB, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &DB{pool: pool}, nil
}

// CreateUserWithWallet inserts the user and a zero-balance wallet in one transaction
func (db *DB) CreateUserWithWallet(ctx context.Context, user models.User) (uuid.UUID, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	query := `INSERT INTO users (id, telegram_id, username, first_name, age, gender, location,
			  denomination, church_attendance, bio, photo_file_id, video_file_id,
			  verified, banned, created_at, last_active_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err = tx.Exec(ctx, query,
		user.ID, user.TelegramID, user.Username, user.FirstName, user.Age, user.Gender,
		user.Location, user.Denomination, user.ChurchAttendance, user.Bio,
		user.PhotoFileID, user.VideoFileID, user.Verified, user.Banned,
		user.CreatedAt, user.LastActiveAt,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}

	walletQuery := `INSERT INTO wallets (id, user_id, balance, created_at)
			  VALUES ($1, $2, $3, $4)`

	_, err = tx.Exec(ctx, walletQuery, uuid.New(), user.ID, decimal.Zero.String(), user.CreatedAt)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit registration: %w", err)
	}

	return user.ID, nil
}

// GetUserByTelegramID looks up a finalized profile by Telegram user ID
func (db *DB) GetUserByTelegramID(ctx context.Context, telegramID int64) (models.User, error) {
	var user models.User
	query := `SELECT id, telegram_id, username, first_name, age, gender, location,
			  denomination, church_attendance, bio, photo_file_id, video_file_id,
			  verified, banned, created_at, last_active_at
			  FROM users WHERE telegram_id = $1`

	err := db.pool.QueryRow(ctx, query, telegramID).Scan(
		&user.ID, &user.TelegramID, &user.Username, &user.FirstName, &user.Age, &user.Gender,
		&user.Location, &user.Denomination, &user.ChurchAttendance, &user.Bio,
		&user.PhotoFileID, &user.VideoFileID, &user.Verified, &user.Banned,
		&user.CreatedAt, &user.LastActiveAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user by telegram id: %w", err)
	}

	return user, nil
}

// GetWalletByUserID returns the wallet row for a user
func (db *DB) GetWalletByUserID(ctx context.Context, userID uuid.UUID) (models.Wallet, error) {
	var wallet models.Wallet
	var balance string
	query := `SELECT id, user_id, balance::text, created_at FROM wallets WHERE user_id = $1`

	err := db.pool.QueryRow(ctx, query, userID).Scan(
		&wallet.ID, &wallet.UserID, &balance, &wallet.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Wallet{}, storage.ErrNotFound
		}
		return models.Wallet{}, fmt.Errorf("failed to get wallet by user id: %w", err)
	}

	wallet.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return models.Wallet{}, fmt.Errorf("failed to parse wallet balance: %w", err)
	}

	return wallet, nil
}

// UpdateLastActive refreshes the last-active timestamp for a known user
func (db *DB) UpdateLastActive(ctx context.Context, telegramID int64, at time.Time) error {
	query := `UPDATE users SET last_active_at = $2 WHERE telegram_id = $1`

	_, err := db.pool.Exec(ctx, query, telegramID, at)
	if err != nil {
		return fmt.Errorf("failed to update last active: %w", err)
	}

	return nil
}

// Ping verifies the connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.pool == nil {
		return fmt.Errorf("connection pool is nil")
	}
	return db.pool.Ping(ctx)
}

// Close closes the connection pool
func (db *DB) Close() error {
	if db.pool != nil {
		db.pool.Close()
	}
	return nil
}
