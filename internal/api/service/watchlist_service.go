package service

import (
	"context"
	"time"

	"anitrack/internal/api/models"
	"anitrack/internal/api/repository"
	"anitrack/internal/notify"
	"anitrack/internal/schedule"
)

// Publisher receives progress events for connected clients. Satisfied by
// *notify.Hub; kept narrow so tests can observe published events.
type Publisher interface {
	Publish(evt notify.Event)
}

// WatchListService defines the interface for watch-list business logic.
type WatchListService interface {
	List(ctx context.Context, userID string) (models.WatchList, error)
	Get(ctx context.Context, userID, animeName string) (*models.EnrichedEntry, error)
	UpdateProgress(ctx context.Context, userID, username, animeName string, progress int) (*models.EnrichedEntry, error)
	Remove(ctx context.Context, userID, animeName string) error
}

type watchListService struct {
	userRepo  repository.UserRepository
	animeRepo repository.AnimeRepository
	listRepo  repository.WatchListRepository
	publisher Publisher
}

// NewWatchListService creates a new WatchListService.
func NewWatchListService(userRepo repository.UserRepository, animeRepo repository.AnimeRepository, listRepo repository.WatchListRepository, publisher Publisher) WatchListService {
	return &watchListService{
		userRepo:  userRepo,
		animeRepo: animeRepo,
		listRepo:  listRepo,
		publisher: publisher,
	}
}

// List returns the caller's whole watch-list enriched with catalog and
// schedule fields, joined by anime name.
func (s *watchListService) List(ctx context.Context, userID string) (models.WatchList, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	entries, err := s.listRepo.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalogByName(ctx)
	if err != nil {
		return nil, err
	}

	list := make(models.WatchList, len(entries))
	for _, entry := range entries {
		list[entry.AnimeName] = enrich(&entry, catalog[entry.AnimeName], time.Now())
	}
	return list, nil
}

// Get returns one enriched entry, or nil when the name is not tracked.
func (s *watchListService) Get(ctx context.Context, userID, animeName string) (*models.EnrichedEntry, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	entry, err := s.listRepo.Get(ctx, userID, animeName)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	anime, err := s.animeRepo.GetByName(ctx, animeName)
	if err != nil {
		return nil, err
	}
	enriched := enrich(entry, anime, time.Now())
	return &enriched, nil
}

// UpdateProgress replaces the tracked progress of an existing entry and
// notifies the user's connected clients.
func (s *watchListService) UpdateProgress(ctx context.Context, userID, username, animeName string, progress int) (*models.EnrichedEntry, error) {
	entry, err := s.listRepo.Get(ctx, userID, animeName)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}

	entry.Progress = progress
	if err := s.listRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	s.publisher.Publish(notify.Event{
		UserID:    userID,
		Username:  username,
		Anime:     animeName,
		Progress:  progress,
		Timestamp: time.Now().Unix(),
	})

	anime, err := s.animeRepo.GetByName(ctx, animeName)
	if err != nil {
		return nil, err
	}
	enriched := enrich(entry, anime, time.Now())
	return &enriched, nil
}

// Remove deletes an existing entry.
func (s *watchListService) Remove(ctx context.Context, userID, animeName string) error {
	entry, err := s.listRepo.Get(ctx, userID, animeName)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrEntryNotFound
	}
	return s.listRepo.Delete(ctx, userID, animeName)
}

func (s *watchListService) requireUser(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}

func (s *watchListService) catalogByName(ctx context.Context) (map[string]*models.Anime, error) {
	all, err := s.animeRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*models.Anime, len(all))
	for i := range all {
		byName[all[i].Name] = &all[i]
	}
	return byName, nil
}

// enrich joins a watch-list entry with its catalog row. Entries whose
// anime is gone from the catalog keep their progress only.
func enrich(entry *models.WatchEntry, anime *models.Anime, now time.Time) models.EnrichedEntry {
	out := models.EnrichedEntry{Progress: entry.Progress}
	if anime == nil {
		return out
	}

	airDate := anime.AirDate.Format(models.AirDateFormat)
	episodes := anime.NumOfEpisodes
	next := schedule.NextEpisode(anime.AirDate, now)
	last := schedule.LastEpisode(anime.AirDate, now)
	behind := schedule.EpisodesBehind(anime.AirDate, entry.Progress, now)

	out.AirDate = &airDate
	out.NumOfEpisodes = &episodes
	out.NextEpisode = &next
	out.LastEpisode = &last
	out.EpisodesBehind = &behind
	return out
}
