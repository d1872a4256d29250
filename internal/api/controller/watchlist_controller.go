package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"anitrack/internal/api/models"
	"anitrack/internal/api/response"
	"anitrack/internal/api/service"
	"anitrack/internal/auth"

	"github.com/gin-gonic/gin"
)

// WatchListController handles the per-user watch-list surface. The :id
// path parameter is the anime name key, matching the map the list
// renders as.
type WatchListController struct {
	listService service.WatchListService
}

// NewWatchListController creates a new WatchListController.
func NewWatchListController(listService service.WatchListService) *WatchListController {
	return &WatchListController{
		listService: listService,
	}
}

// List returns the caller's enriched watch-list.
func (wc *WatchListController) List(c *gin.Context) {
	userID := c.GetString(auth.CtxUserIDKey)

	list, err := wc.listService.List(c.Request.Context(), userID)
	if err != nil {
		wc.writeListError(c, err)
		return
	}
	response.Success(c, list)
}

// Get returns a single enriched entry.
func (wc *WatchListController) Get(c *gin.Context) {
	userID := c.GetString(auth.CtxUserIDKey)
	animeName := c.Param("id")

	entry, err := wc.listService.Get(c.Request.Context(), userID, animeName)
	if err != nil {
		wc.writeListError(c, err)
		return
	}
	if entry == nil {
		response.NotFound(c)
		return
	}
	response.Success(c, entry)
}

// Update replaces an existing entry's progress.
func (wc *WatchListController) Update(c *gin.Context) {
	userID := c.GetString(auth.CtxUserIDKey)
	username := c.GetString(auth.CtxUsernameKey)
	animeName := c.Param("id")

	var req models.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}

	entry, err := wc.listService.UpdateProgress(c.Request.Context(), userID, username, animeName, *req.Progress)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			response.BadRequest(c)
			return
		}
		wc.writeListError(c, err)
		return
	}
	response.Success(c, entry)
}

// Delete removes an existing entry.
func (wc *WatchListController) Delete(c *gin.Context) {
	userID := c.GetString(auth.CtxUserIDKey)
	animeName := c.Param("id")

	if err := wc.listService.Remove(c.Request.Context(), userID, animeName); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			response.BadRequest(c)
			return
		}
		wc.writeListError(c, err)
		return
	}
	response.Message(c, "Deleted successfully.")
}

func (wc *WatchListController) writeListError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrUserNotFound) {
		response.NotFound(c)
		return
	}
	slog.Error("watch-list operation failed", "error", err)
	response.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
}
