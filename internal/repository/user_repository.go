package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/booking-platform/internal/model"
	"github.com/google/uuid"
)

type UserRepository interface {
	// Создать пользователя.
	Create(ctx context.Context, user *model.User) error
	// Найти пользователя по ID.
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// Найти пользователя по логину.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// Найти пользователя по email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Обновить отображаемое имя и/или email.
	UpdateProfile(ctx context.Context, id uuid.UUID, displayName, email string) (*model.User, error)
}

// Реализация на GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	displayName, email string,
) (*model.User, error) {
	updates := map[string]any{}
	if displayName != "" {
		updates["display_name"] = displayName
	}
	if email != "" {
		updates["email"] = email
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&model.User{}).
			Where("id = ?", id).
			Updates(updates).
			Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}
