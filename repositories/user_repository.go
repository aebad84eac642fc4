// File: /repositories/user_repository.go
package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportsbuddy-api/models"
)

const mysqlDuplicateEntry = 1062

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user. A duplicate email is reported as ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.Email = strings.ToLower(user.Email)

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			return fmt.Errorf("%w: %s", models.ErrEmailTaken, user.Email)
		}
		return fmt.Errorf("%w: create user: %w", models.ErrPersistence, err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, userError(id, err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		return nil, userError(email, err)
	}
	return &user, nil
}

func userError(key string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", models.ErrUserNotFound, key)
	}
	return fmt.Errorf("%w: read user: %w", models.ErrPersistence, err)
}
