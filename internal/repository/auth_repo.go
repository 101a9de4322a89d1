package repository

import (
	"context"
	"errors"
	"fmt"

	"blog_api/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Authorization interface at compile time.
var _ Authorization = (*UserRepository)(nil)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(ctx context.Context, u *models.User) (uint, error) {
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Create(u).Error
	})
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return u.ID, nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := withConn(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Where("username = ?", username).Take(&u).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := withConn(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Take(&u).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %d: %w", id, err)
	}
	return &u, nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	return r.updateColumn(ctx, id, "hashed_password", hash)
}

func (r *UserRepository) UpdatePhoneNumber(ctx context.Context, id uint, phone string) error {
	return r.updateColumn(ctx, id, "phone_number", phone)
}

func (r *UserRepository) updateColumn(ctx context.Context, id uint, column string, value any) error {
	var affected int64
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).Where("id = ?", id).Update(column, value)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return fmt.Errorf("update user %d %s: %w", id, column, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
