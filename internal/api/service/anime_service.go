package service

import (
	"context"
	"errors"

	"anitrack/internal/api/models"
	"anitrack/internal/api/repository"
	"anitrack/internal/validator"

	"github.com/google/uuid"
)

// CreateResult reports what an anime-create request actually did: a
// brand-new catalog row, or a subscription to one that already existed.
type CreateResult struct {
	Anime   *models.Anime
	Created bool
}

// AnimeService defines the interface for catalog business logic.
type AnimeService interface {
	Create(ctx context.Context, userID string, req *models.CreateAnimeRequest) (*CreateResult, error)
	Update(ctx context.Context, userID, animeID string, req *models.UpdateAnimeRequest) (*models.Anime, error)
	Delete(ctx context.Context, userID, animeID string) error
}

type animeService struct {
	animeRepo repository.AnimeRepository
	listRepo  repository.WatchListRepository
}

// NewAnimeService creates a new AnimeService.
func NewAnimeService(animeRepo repository.AnimeRepository, listRepo repository.WatchListRepository) AnimeService {
	return &animeService{
		animeRepo: animeRepo,
		listRepo:  listRepo,
	}
}

// Create attempts a catalog insert owned by the caller. When the name is
// already taken the request is treated as a subscription instead: the
// caller's watch-list gains the entry unless it was already there.
func (s *animeService) Create(ctx context.Context, userID string, req *models.CreateAnimeRequest) (*CreateResult, error) {
	airDate, err := validator.ParseAirDate(req.AirDate)
	if err != nil {
		return nil, err
	}

	anime := &models.Anime{
		ID:            uuid.New().String(),
		Name:          req.Name,
		AirDate:       airDate,
		NumOfEpisodes: req.NumOfEpisodes,
		Owner:         userID,
	}

	err = s.animeRepo.Create(ctx, anime)
	if err == nil {
		entry := &models.WatchEntry{UserID: userID, AnimeName: anime.Name, Progress: 0}
		if err := s.listRepo.Upsert(ctx, entry); err != nil {
			return nil, err
		}
		return &CreateResult{Anime: anime, Created: true}, nil
	}
	if !errors.Is(err, repository.ErrDuplicate) {
		return nil, err
	}

	existing, err := s.listRepo.Get(ctx, userID, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyInList
	}

	joined, err := s.animeRepo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	entry := &models.WatchEntry{UserID: userID, AnimeName: req.Name, Progress: 0}
	if err := s.listRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	return &CreateResult{Anime: joined, Created: false}, nil
}

// Update applies air-date and episode-count changes, owner only.
func (s *animeService) Update(ctx context.Context, userID, animeID string, req *models.UpdateAnimeRequest) (*models.Anime, error) {
	anime, err := s.requireOwned(ctx, userID, animeID)
	if err != nil {
		return nil, err
	}

	if req.AirDate != nil {
		airDate, err := validator.ParseAirDate(*req.AirDate)
		if err != nil {
			return nil, err
		}
		anime.AirDate = airDate
	}
	if req.NumOfEpisodes != nil {
		anime.NumOfEpisodes = *req.NumOfEpisodes
	}

	if err := s.animeRepo.Update(ctx, anime); err != nil {
		return nil, err
	}
	return anime, nil
}

// Delete removes an owned anime and cascades the owner's watch-list entry.
func (s *animeService) Delete(ctx context.Context, userID, animeID string) error {
	anime, err := s.requireOwned(ctx, userID, animeID)
	if err != nil {
		return err
	}
	return s.animeRepo.DeleteCascade(ctx, anime)
}

func (s *animeService) requireOwned(ctx context.Context, userID, animeID string) (*models.Anime, error) {
	anime, err := s.animeRepo.GetByID(ctx, animeID)
	if err != nil {
		return nil, err
	}
	if anime == nil {
		return nil, ErrAnimeNotFound
	}
	if anime.Owner == "" || anime.Owner != userID {
		return nil, ErrNotOwner
	}
	return anime, nil
}
