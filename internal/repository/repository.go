package repository

import (
	"context"
	"errors"

	"blog_api/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches the lookup (including its owner filter).
var ErrNotFound = errors.New("record not found")

type Authorization interface {
	Create(ctx context.Context, u *models.User) (uint, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id uint, hash string) error
	UpdatePhoneNumber(ctx context.Context, id uint, phone string) error
}

// PostRepo takes the owner as an explicit argument wherever visibility is scoped.
type PostRepo interface {
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Post, error)
	GetByID(ctx context.Context, id uint) (models.Post, error)
	Create(ctx context.Context, p *models.Post) error
	UpdateOwned(ctx context.Context, id, ownerID uint, apply func(*models.Post)) error
	DeleteOwned(ctx context.Context, id, ownerID uint) error
}

type Repository struct {
	Auth  Authorization
	Posts PostRepo
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Auth:  NewUserRepository(db),
		Posts: NewPostRepository(db),
	}
}

// withConn checks one connection out of the pool for fn and hands it back when
// fn returns, whether it failed or not.
func withConn(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return fn(conn.Session(&gorm.Session{NewDB: true}))
	})
}

// inTx runs fn in a transaction that is committed before inTx returns, or
// rolled back if fn errors or panics.
func inTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}
