package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"anitrack/internal/api/models"
	"anitrack/internal/api/response"
	"anitrack/internal/api/service"
	"anitrack/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnimeController handles anime catalog HTTP requests.
type AnimeController struct {
	animeService service.AnimeService
}

// NewAnimeController creates a new AnimeController.
func NewAnimeController(animeService service.AnimeService) *AnimeController {
	return &AnimeController{
		animeService: animeService,
	}
}

// Create handles anime creation, which doubles as subscribing to an
// already-catalogued anime of the same name.
func (ac *AnimeController) Create(c *gin.Context) {
	var req models.CreateAnimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	userID := c.GetString(auth.CtxUserIDKey)

	result, err := ac.animeService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyInList) {
			response.ErrorResponse(c, http.StatusBadRequest, "Anime already exists in your list.")
			return
		}
		slog.Error("anime creation failed", "error", err, "anime", req.Name)
		response.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	if result.Created {
		response.Created(c, result.Anime)
		return
	}
	response.Success(c, gin.H{
		"message": fmt.Sprintf("%s already exists. Added to your list.", req.Name),
		"anime":   result.Anime,
	})
}

// Update handles owner-only anime mutation.
func (ac *AnimeController) Update(c *gin.Context) {
	animeID := c.Param("id")
	if _, err := uuid.Parse(animeID); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "malformed id")
		return
	}

	var req models.UpdateAnimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.AirDate == nil && req.NumOfEpisodes == nil {
		response.BadRequest(c)
		return
	}
	userID := c.GetString(auth.CtxUserIDKey)

	anime, err := ac.animeService.Update(c.Request.Context(), userID, animeID, &req)
	if err != nil {
		ac.writeMutationError(c, err)
		return
	}
	response.Success(c, anime)
}

// Delete handles owner-only anime removal with its watch-list cascade.
func (ac *AnimeController) Delete(c *gin.Context) {
	animeID := c.Param("id")
	if _, err := uuid.Parse(animeID); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "malformed id")
		return
	}
	userID := c.GetString(auth.CtxUserIDKey)

	if err := ac.animeService.Delete(c.Request.Context(), userID, animeID); err != nil {
		ac.writeMutationError(c, err)
		return
	}
	response.Message(c, "Deleted successfully.")
}

func (ac *AnimeController) writeMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAnimeNotFound):
		response.NotFound(c)
	case errors.Is(err, service.ErrNotOwner):
		response.Forbidden(c)
	default:
		slog.Error("anime mutation failed", "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
