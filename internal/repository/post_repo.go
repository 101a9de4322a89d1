package repository

import (
	"context"
	"errors"
	"fmt"

	"blog_api/internal/models"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

var _ PostRepo = (*PostRepository)(nil)

// ListByOwner returns every post owned by ownerID; never nil.
func (r *PostRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Post, error) {
	posts := make([]models.Post, 0)
	err := withConn(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Where("owner_id = ?", ownerID).Find(&posts).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list posts of owner %d: %w", ownerID, err)
	}
	return posts, nil
}

// GetByID looks a post up by id alone, without an owner filter.
func (r *PostRepository) GetByID(ctx context.Context, id uint) (models.Post, error) {
	var p models.Post
	err := withConn(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Take(&p).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, fmt.Errorf("select post %d: %w", id, err)
	}
	return p, nil
}

// Create inserts p and fills in its ID.
func (r *PostRepository) Create(ctx context.Context, p *models.Post) error {
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Create(p).Error
	})
	if err != nil {
		return fmt.Errorf("insert post for owner %d: %w", p.OwnerID, err)
	}
	return nil
}

// UpdateOwned loads the post matching id and ownerID, lets apply modify it and
// saves it in the same transaction.
func (r *PostRepository) UpdateOwned(ctx context.Context, id, ownerID uint, apply func(*models.Post)) error {
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		var p models.Post
		if err := tx.Where("id = ? AND owner_id = ?", id, ownerID).Take(&p).Error; err != nil {
			return err
		}
		apply(&p)
		return tx.Save(&p).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update post %d of owner %d: %w", id, ownerID, err)
	}
	return nil
}

// DeleteOwned removes the post matching id and ownerID.
func (r *PostRepository) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	var affected int64
	err := inTx(ctx, r.db, func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Post{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return fmt.Errorf("delete post %d of owner %d: %w", id, ownerID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
