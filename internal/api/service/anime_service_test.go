package service

import (
	"context"
	"testing"
	"time"

	"anitrack/internal/api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAnime(repo *fakeAnimeRepo, name, owner string) *models.Anime {
	anime := &models.Anime{
		ID:            uuid.New().String(),
		Name:          name,
		AirDate:       time.Date(2021, time.March, 10, 0, 0, 0, 0, time.UTC),
		NumOfEpisodes: 12,
		Owner:         owner,
	}
	repo.byName[name] = anime
	return anime
}

func TestAnimeCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("new anime is created and added to the caller's list", func(t *testing.T) {
		lists := newFakeListRepo()
		animes := newFakeAnimeRepo(lists)
		svc := NewAnimeService(animes, lists)

		result, err := svc.Create(ctx, "user-1", &models.CreateAnimeRequest{
			Name: "Test", AirDate: "2021-03-10", NumOfEpisodes: 12,
		})
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, "user-1", result.Anime.Owner)
		assert.Len(t, animes.byName, 1)
		assert.Equal(t, 0, lists.entries["user-1"]["Test"])
	})

	t.Run("existing anime is joined without a new catalog row", func(t *testing.T) {
		lists := newFakeListRepo()
		animes := newFakeAnimeRepo(lists)
		seedAnime(animes, "AlreadyExists", "someone-else")
		svc := NewAnimeService(animes, lists)

		result, err := svc.Create(ctx, "user-1", &models.CreateAnimeRequest{
			Name: "AlreadyExists", AirDate: "2021-03-10",
		})
		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, "someone-else", result.Anime.Owner)
		assert.Len(t, animes.byName, 1)
		assert.Equal(t, 0, lists.entries["user-1"]["AlreadyExists"])
	})

	t.Run("anime already in the caller's list conflicts", func(t *testing.T) {
		lists := newFakeListRepo()
		animes := newFakeAnimeRepo(lists)
		seedAnime(animes, "AlreadyExists", "someone-else")
		lists.entries["user-1"] = map[string]int{"AlreadyExists": 4}
		svc := NewAnimeService(animes, lists)

		_, err := svc.Create(ctx, "user-1", &models.CreateAnimeRequest{
			Name: "AlreadyExists", AirDate: "2021-03-10",
		})
		assert.ErrorIs(t, err, ErrAlreadyInList)
		assert.Len(t, animes.byName, 1)
		// existing progress untouched
		assert.Equal(t, 4, lists.entries["user-1"]["AlreadyExists"])
	})
}

func TestAnimeUpdate(t *testing.T) {
	ctx := context.Background()
	episodes := 24
	airDate := "24.03.2021"

	t.Run("owner can update fields", func(t *testing.T) {
		lists := newFakeListRepo()
		animes := newFakeAnimeRepo(lists)
		anime := seedAnime(animes, "Mine", "user-1")
		svc := NewAnimeService(animes, lists)

		updated, err := svc.Update(ctx, "user-1", anime.ID, &models.UpdateAnimeRequest{
			AirDate: &airDate, NumOfEpisodes: &episodes,
		})
		require.NoError(t, err)
		assert.Equal(t, 24, updated.NumOfEpisodes)
		assert.Equal(t, "24.03.2021", updated.AirDate.Format(models.AirDateFormat))
	})

	t.Run("non-owner is rejected and fields stay put", func(t *testing.T) {
		lists := newFakeListRepo()
		animes := newFakeAnimeRepo(lists)
		anime := seedAnime(animes, "Theirs", "someone-else")
		svc := NewAnimeService(animes, lists)

		_, err := svc.Update(ctx, "user-1", anime.ID, &models.UpdateAnimeRequest{NumOfEpisodes: &episodes})
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Equal(t, 12, animes.byName["Theirs"].NumOfEpisodes)
	})

	t.Run("unowned anime is not mutable by anyone", func(t *testing.T) {
		lists := newFakeListRepo()
		animes := newFakeAnimeRepo(lists)
		anime := seedAnime(animes, "Shared", "")
		svc := NewAnimeService(animes, lists)

		_, err := svc.Update(ctx, "user-1", anime.ID, &models.UpdateAnimeRequest{NumOfEpisodes: &episodes})
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		lists := newFakeListRepo()
		animes := newFakeAnimeRepo(lists)
		svc := NewAnimeService(animes, lists)

		_, err := svc.Update(ctx, "user-1", uuid.New().String(), &models.UpdateAnimeRequest{NumOfEpisodes: &episodes})
		assert.ErrorIs(t, err, ErrAnimeNotFound)
	})
}

func TestAnimeDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner delete cascades to the watch-list", func(t *testing.T) {
		lists := newFakeListRepo()
		animes := newFakeAnimeRepo(lists)
		anime := seedAnime(animes, "Mine", "user-1")
		lists.entries["user-1"] = map[string]int{"Mine": 3, "Other": 1}
		svc := NewAnimeService(animes, lists)

		require.NoError(t, svc.Delete(ctx, "user-1", anime.ID))
		assert.Empty(t, animes.byName)
		assert.NotContains(t, lists.entries["user-1"], "Mine")
		assert.Contains(t, lists.entries["user-1"], "Other")
	})

	t.Run("non-owner delete is rejected", func(t *testing.T) {
		lists := newFakeListRepo()
		animes := newFakeAnimeRepo(lists)
		anime := seedAnime(animes, "Theirs", "someone-else")
		svc := NewAnimeService(animes, lists)

		err := svc.Delete(ctx, "user-1", anime.ID)
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Len(t, animes.byName, 1)
	})
}
