package service

import (
	"context"
	"errors"

	"blog_api/internal/models"
	"blog_api/internal/repository"
)

var ErrPostNotFound = errors.New("blog not found")

type BlogService struct {
	posts repository.PostRepo
}

func NewBlogService(posts repository.PostRepo) *BlogService {
	return &BlogService{posts: posts}
}

// List returns the caller's own posts.
func (s *BlogService) List(ctx context.Context, caller models.Principal) ([]models.Post, error) {
	return s.posts.ListByOwner(ctx, caller.ID)
}

// Get returns any post by id; reads are not owner-scoped.
func (s *BlogService) Get(ctx context.Context, id uint) (models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Post{}, ErrPostNotFound
	}
	return p, err
}

func (s *BlogService) Create(ctx context.Context, caller models.Principal, p PostParams) (models.Post, error) {
	post := models.Post{
		Title:   p.Title,
		Content: p.Content,
		OwnerID: caller.ID,
	}
	if err := s.posts.Create(ctx, &post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// Update overwrites the title of a post the caller owns. The stored content is
// kept as is even when p.Content differs.
func (s *BlogService) Update(ctx context.Context, caller models.Principal, id uint, p PostParams) error {
	err := s.posts.UpdateOwned(ctx, id, caller.ID, func(post *models.Post) {
		post.Title = p.Title
	})
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPostNotFound
	}
	return err
}

func (s *BlogService) Delete(ctx context.Context, caller models.Principal, id uint) error {
	err := s.posts.DeleteOwned(ctx, id, caller.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPostNotFound
	}
	return err
}
