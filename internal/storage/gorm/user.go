package gorm

import (
	"context"

	"gorm.io/gorm"

	"bopLand/internal/domain"
	"bopLand/internal/storage"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository создаёт новый репозиторий пользователей
func NewUserRepository(db *gorm.DB) storage.UserRepository {
	return &userRepository{db: db}
}

// Create создаёт пользователя; email уникален
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	dbUser := &User{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
	}

	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return translateError(err)
	}

	user.ID = dbUser.ID
	return nil
}

// GetByID получает пользователя по ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var dbUser User
	if err := r.db.WithContext(ctx).First(&dbUser, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return toDomainUser(&dbUser), nil
}

// GetByEmail получает пользователя по email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser User
	if err := r.db.WithContext(ctx).First(&dbUser, "email = ?", email).Error; err != nil {
		return nil, translateError(err)
	}
	return toDomainUser(&dbUser), nil
}
