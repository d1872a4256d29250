package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"anitrack/internal/api/models"

	"github.com/jmoiron/sqlx"
)

// AnimeRepository defines the interface for anime catalog operations.
type AnimeRepository interface {
	Create(ctx context.Context, anime *models.Anime) error
	GetByID(ctx context.Context, id string) (*models.Anime, error)
	GetByName(ctx context.Context, name string) (*models.Anime, error)
	ListAll(ctx context.Context) ([]models.Anime, error)
	Update(ctx context.Context, anime *models.Anime) error
	DeleteCascade(ctx context.Context, anime *models.Anime) error
}

type sqliteAnimeRepository struct {
	db *sqlx.DB
}

// NewAnimeRepository creates a new SQLite-based AnimeRepository.
func NewAnimeRepository(db *sqlx.DB) AnimeRepository {
	return &sqliteAnimeRepository{db: db}
}

// Create inserts a new anime row. Returns ErrDuplicate when the name is
// already taken.
func (r *sqliteAnimeRepository) Create(ctx context.Context, anime *models.Anime) error {
	query := `INSERT INTO anime (id, name, air_date, num_of_episodes, owner) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, anime.ID, anime.Name, anime.AirDate, anime.NumOfEpisodes, anime.Owner)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create anime: %w", err)
	}
	return nil
}

func (r *sqliteAnimeRepository) GetByID(ctx context.Context, id string) (*models.Anime, error) {
	var anime models.Anime
	query := `SELECT id, name, air_date, num_of_episodes, owner FROM anime WHERE id = ?`
	err := r.db.GetContext(ctx, &anime, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get anime by id: %w", err)
	}
	return &anime, nil
}

func (r *sqliteAnimeRepository) GetByName(ctx context.Context, name string) (*models.Anime, error) {
	var anime models.Anime
	query := `SELECT id, name, air_date, num_of_episodes, owner FROM anime WHERE name = ?`
	err := r.db.GetContext(ctx, &anime, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get anime by name: %w", err)
	}
	return &anime, nil
}

// ListAll returns the whole catalog, used for watch-list enrichment joins.
func (r *sqliteAnimeRepository) ListAll(ctx context.Context) ([]models.Anime, error) {
	var list []models.Anime
	query := `SELECT id, name, air_date, num_of_episodes, owner FROM anime`
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("failed to list anime: %w", err)
	}
	return list, nil
}

func (r *sqliteAnimeRepository) Update(ctx context.Context, anime *models.Anime) error {
	query := `UPDATE anime SET air_date = ?, num_of_episodes = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, anime.AirDate, anime.NumOfEpisodes, anime.ID)
	if err != nil {
		return fmt.Errorf("failed to update anime: %w", err)
	}
	return nil
}

// DeleteCascade removes the anime row and the owner's watch-list entry for
// its name in a single transaction, so the catalog and the owner's list
// never diverge.
func (r *sqliteAnimeRepository) DeleteCascade(ctx context.Context, anime *models.Anime) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM anime WHERE id = ?`, anime.ID); err != nil {
		return fmt.Errorf("failed to delete anime: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM watch_list WHERE user_id = ? AND anime_name = ?`,
		anime.Owner, anime.Name); err != nil {
		return fmt.Errorf("failed to delete watch-list entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete transaction: %w", err)
	}
	return nil
}
