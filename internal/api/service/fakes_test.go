package service

import (
	"context"
	"time"

	"anitrack/internal/api/models"
	"anitrack/internal/api/repository"
	"anitrack/internal/notify"

	"golang.org/x/crypto/bcrypt"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users map[string]*models.User // by username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User, password string) error {
	if _, ok := f.users[user.Username]; ok {
		return repository.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	return f.users[username], nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	byToken map[string]string // token -> user id
	byUser  map[string]string // user id -> token
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byToken: make(map[string]string), byUser: make(map[string]string)}
}

func (f *fakeSessionRepo) Store(_ context.Context, token, userID string, _ time.Duration) error {
	if previous, ok := f.byUser[userID]; ok {
		delete(f.byToken, previous)
	}
	f.byToken[token] = userID
	f.byUser[userID] = token
	return nil
}

func (f *fakeSessionRepo) Resolve(_ context.Context, token string) (string, error) {
	return f.byToken[token], nil
}

type fakeAnimeRepo struct {
	byName map[string]*models.Anime
	lists  *fakeListRepo // cascade target, mirroring the sqlite transaction
}

func newFakeAnimeRepo(lists *fakeListRepo) *fakeAnimeRepo {
	return &fakeAnimeRepo{byName: make(map[string]*models.Anime), lists: lists}
}

func (f *fakeAnimeRepo) Create(_ context.Context, anime *models.Anime) error {
	if _, ok := f.byName[anime.Name]; ok {
		return repository.ErrDuplicate
	}
	f.byName[anime.Name] = anime
	return nil
}

func (f *fakeAnimeRepo) GetByID(_ context.Context, id string) (*models.Anime, error) {
	for _, a := range f.byName {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAnimeRepo) GetByName(_ context.Context, name string) (*models.Anime, error) {
	return f.byName[name], nil
}

func (f *fakeAnimeRepo) ListAll(_ context.Context) ([]models.Anime, error) {
	var all []models.Anime
	for _, a := range f.byName {
		all = append(all, *a)
	}
	return all, nil
}

func (f *fakeAnimeRepo) Update(_ context.Context, anime *models.Anime) error {
	f.byName[anime.Name] = anime
	return nil
}

func (f *fakeAnimeRepo) DeleteCascade(_ context.Context, anime *models.Anime) error {
	delete(f.byName, anime.Name)
	delete(f.lists.entries[anime.Owner], anime.Name)
	return nil
}

type fakeListRepo struct {
	entries map[string]map[string]int // user id -> anime name -> progress
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{entries: make(map[string]map[string]int)}
}

func (f *fakeListRepo) Get(_ context.Context, userID, animeName string) (*models.WatchEntry, error) {
	progress, ok := f.entries[userID][animeName]
	if !ok {
		return nil, nil
	}
	return &models.WatchEntry{UserID: userID, AnimeName: animeName, Progress: progress}, nil
}

func (f *fakeListRepo) GetAll(_ context.Context, userID string) ([]models.WatchEntry, error) {
	var out []models.WatchEntry
	for name, progress := range f.entries[userID] {
		out = append(out, models.WatchEntry{UserID: userID, AnimeName: name, Progress: progress})
	}
	return out, nil
}

func (f *fakeListRepo) Upsert(_ context.Context, entry *models.WatchEntry) error {
	if f.entries[entry.UserID] == nil {
		f.entries[entry.UserID] = make(map[string]int)
	}
	f.entries[entry.UserID][entry.AnimeName] = entry.Progress
	return nil
}

func (f *fakeListRepo) Delete(_ context.Context, userID, animeName string) error {
	delete(f.entries[userID], animeName)
	return nil
}

type capturePublisher struct {
	events []notify.Event
}

func (p *capturePublisher) Publish(evt notify.Event) {
	p.events = append(p.events, evt)
}
