package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/auth"
	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/mapper"
	"github.com/profilkantor/profile-api/internal/repository"
	"go.uber.org/zap"
)

const (
	msgEmailExists        = "Email already exists"
	msgInvalidCredentials = "Invalid email or password"
)

// AuthService handles registration, login and the caller's profile
type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *auth.TokenManager
	logger   *zap.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repository.UserRepository, tokens *auth.TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates an active account and returns a token for it
func (s *AuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponseDTO, error) {
	email := strings.TrimSpace(req.Email)

	exists, err := s.userRepo.EmailExists(ctx, email, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, Conflict(msgEmailExists)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hash,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, writeError(err, "create", "User", msgEmailExists)
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return s.respond(user)
}

// Login checks the credentials of an active user and issues a token.
// Unknown email, inactive account and wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponseDTO, error) {
	user, err := s.userRepo.GetActiveByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, Unauthorized(msgInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	ok, err := auth.CheckPassword(user.Password, req.Password)
	if err != nil {
		s.logger.Warn("stored password hash is unusable",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
		return nil, Unauthorized(msgInvalidCredentials)
	}
	if !ok {
		return nil, Unauthorized(msgInvalidCredentials)
	}

	return s.respond(user)
}

// Profile returns the caller's account; inactive accounts are not found
func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*domain.UserDTO, error) {
	user, err := s.userRepo.GetActiveByID(ctx, userID)
	if err != nil {
		return nil, lookupError(err, "User")
	}
	dto := mapper.ToUserDTO(user)
	return &dto, nil
}

func (s *AuthService) respond(user *domain.User) (*domain.AuthResponseDTO, error) {
	token, err := s.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResponseDTO{
		Token: token,
		User:  mapper.ToUserDTO(user),
	}, nil
}
