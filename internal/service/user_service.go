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

// UserService handles business logic for user accounts
type UserService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// List returns every user, newest first
func (s *UserService) List(ctx context.Context) ([]domain.UserDTO, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return mapper.ToUserDTOs(users), nil
}

// GetByID returns one user regardless of its active flag
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserDTO, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "User")
	}
	dto := mapper.ToUserDTO(user)
	return &dto, nil
}

// Create adds a user; accounts are active unless is_active is false
func (s *UserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.UserDTO, error) {
	email := strings.TrimSpace(req.Email)
	if err := s.ensureEmailFree(ctx, email, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hash,
		IsActive: boolOr(req.IsActive, true),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, writeError(err, "create", "User", msgEmailExists)
	}

	s.logger.Info("user created", zap.String("user_id", user.ID.String()))

	dto := mapper.ToUserDTO(user)
	return &dto, nil
}

// Update patches the supplied fields. A new password is re-hashed.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateUserRequest) (*domain.UserDTO, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "User")
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != user.Email {
			if err := s.ensureEmailFree(ctx, email, user.ID); err != nil {
				return nil, err
			}
		}
		user.Email = email
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, writeError(err, "update", "User", msgEmailExists)
	}

	dto := mapper.ToUserDTO(user)
	return &dto, nil
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string, excludeID uuid.UUID) error {
	exists, err := s.userRepo.EmailExists(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return Conflict(msgEmailExists)
	}
	return nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
