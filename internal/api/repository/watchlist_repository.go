package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"anitrack/internal/api/models"

	"github.com/jmoiron/sqlx"
)

// WatchListRepository defines the interface for per-user watch-list
// operations. Entries are keyed by (user id, anime name).
type WatchListRepository interface {
	Get(ctx context.Context, userID, animeName string) (*models.WatchEntry, error)
	GetAll(ctx context.Context, userID string) ([]models.WatchEntry, error)
	Upsert(ctx context.Context, entry *models.WatchEntry) error
	Delete(ctx context.Context, userID, animeName string) error
}

type sqliteWatchListRepository struct {
	db *sqlx.DB
}

// NewWatchListRepository creates a new SQLite-based WatchListRepository.
func NewWatchListRepository(db *sqlx.DB) WatchListRepository {
	return &sqliteWatchListRepository{db: db}
}

func (r *sqliteWatchListRepository) Get(ctx context.Context, userID, animeName string) (*models.WatchEntry, error) {
	var entry models.WatchEntry
	query := `SELECT user_id, anime_name, progress FROM watch_list WHERE user_id = ? AND anime_name = ?`
	err := r.db.GetContext(ctx, &entry, query, userID, animeName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get watch-list entry: %w", err)
	}
	return &entry, nil
}

func (r *sqliteWatchListRepository) GetAll(ctx context.Context, userID string) ([]models.WatchEntry, error) {
	var entries []models.WatchEntry
	query := `SELECT user_id, anime_name, progress FROM watch_list WHERE user_id = ?`
	if err := r.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list watch-list entries: %w", err)
	}
	return entries, nil
}

func (r *sqliteWatchListRepository) Upsert(ctx context.Context, entry *models.WatchEntry) error {
	query := `
	INSERT INTO watch_list (user_id, anime_name, progress)
	VALUES (?, ?, ?)
	ON CONFLICT (user_id, anime_name)
	DO UPDATE SET progress = excluded.progress`
	_, err := r.db.ExecContext(ctx, query, entry.UserID, entry.AnimeName, entry.Progress)
	if err != nil {
		return fmt.Errorf("failed to upsert watch-list entry: %w", err)
	}
	return nil
}

func (r *sqliteWatchListRepository) Delete(ctx context.Context, userID, animeName string) error {
	query := `DELETE FROM watch_list WHERE user_id = ? AND anime_name = ?`
	_, err := r.db.ExecContext(ctx, query, userID, animeName)
	if err != nil {
		return fmt.Errorf("failed to delete watch-list entry: %w", err)
	}
	return nil
}
