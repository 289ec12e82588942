package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/profilkantor/profile-api/internal/domain"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetActiveByID retrieves a user only if the account is active
func (r *UserRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetActiveByEmail is used by login; inactive accounts never match
func (r *UserRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "email = ? AND is_active = ?", email, true).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailExists reports whether another user already has email.
// excludeID is ignored when it is uuid.Nil.
func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	return updateAll(r.db.WithContext(ctx), user)
}

// IsNotFound reports whether err means the row does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
