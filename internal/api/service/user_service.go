package service

import (
	"context"
	"errors"
	"time"

	"anitrack/internal/api/models"
	"anitrack/internal/api/repository"
	"anitrack/internal/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// UserService defines the interface for user-related business logic.
type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	sessions repository.SessionRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, sessions repository.SessionRepository, secret []byte, tokenTTL time.Duration) UserService {
	return &userService{
		userRepo: userRepo,
		sessions: sessions,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Register handles user registration. The password rules run before any
// persistence so a rejected request creates no record.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Username: req.Username,
		Name:     req.Name,
	}

	if err := s.userRepo.CreateUser(ctx, user, req.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials, mints a token and stores the session,
// replacing any previous one for the user. Unknown user and wrong
// password are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.Sign(s.secret, user.ID, user.Username, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Store(ctx, token, user.ID, s.tokenTTL); err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}
