package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"anitrack/internal/api/models"
	"anitrack/internal/api/response"
	"anitrack/internal/api/service"

	"github.com/gin-gonic/gin"
)

// UserController handles registration and login.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Register handles the user registration endpoint.
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := uc.userService.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordRequired):
			response.ErrorResponse(c, http.StatusBadRequest, "Password is required")
		case errors.Is(err, service.ErrPasswordTooShort):
			response.ErrorResponse(c, http.StatusBadRequest, "Password must be at least 8 characters long")
		case errors.Is(err, service.ErrUsernameTaken):
			response.ErrorResponse(c, http.StatusBadRequest, "username must be unique")
		default:
			slog.Error("registration failed", "error", err)
			response.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response.Created(c, user)
}

// Login handles the user login endpoint.
func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "invalid json")
		return
	}

	resp, err := uc.userService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.ErrorResponse(c, http.StatusUnauthorized, "invalid username or password")
			return
		}
		slog.Error("login failed", "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.Success(c, resp)
}
