package service

import (
	"context"

	"blog_api/internal/config"
	"blog_api/internal/models"
	"blog_api/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, p SignUpParams) (uint, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (models.Principal, error)
}

// Blog exposes post CRUD. Callers pass the authenticated principal explicitly.
type Blog interface {
	List(ctx context.Context, caller models.Principal) ([]models.Post, error)
	Get(ctx context.Context, id uint) (models.Post, error)
	Create(ctx context.Context, caller models.Principal, p PostParams) (models.Post, error)
	Update(ctx context.Context, caller models.Principal, id uint, p PostParams) error
	Delete(ctx context.Context, caller models.Principal, id uint) error
}

// Users exposes self-service account operations.
type Users interface {
	Me(ctx context.Context, caller models.Principal) (models.User, error)
	ChangePassword(ctx context.Context, caller models.Principal, current, next string) error
	ChangePhoneNumber(ctx context.Context, caller models.Principal, phone string) error
}

// Service aggregates all sub-services for the HTTP layer.
type Service struct {
	Authorization
	Blog
	Users
}

func NewService(repos *repository.Repository, authCfg config.AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, authCfg),
		Blog:          NewBlogService(repos.Posts),
		Users:         NewUserService(repos.Auth),
	}
}
