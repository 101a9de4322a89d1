package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blog_api/internal/models"
	"blog_api/internal/repository"
)

type UserService struct {
	users repository.Authorization
}

func NewUserService(users repository.Authorization) *UserService {
	return &UserService{users: users}
}

// Me loads the account behind the principal.
func (s *UserService) Me(ctx context.Context, caller models.Principal) (models.User, error) {
	u, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrUserNotFound
	}
	return *u, nil
}

// ChangePassword replaces the password after checking the current one.
func (s *UserService) ChangePassword(ctx context.Context, caller models.Principal, current, next string) error {
	u, err := s.Me(ctx, caller)
	if err != nil {
		return err
	}
	if err := verifyPassword(u.PasswordHash, current); err != nil {
		return ErrInvalidPassword
	}
	hash, err := hashPassword(next)
	if err != nil {
		return fmt.Errorf("invalid new password: %w", err)
	}
	return s.mapNotFound(s.users.UpdatePasswordHash(ctx, u.ID, hash))
}

func (s *UserService) ChangePhoneNumber(ctx context.Context, caller models.Principal, phone string) error {
	phone = strings.TrimSpace(phone)
	return s.mapNotFound(s.users.UpdatePhoneNumber(ctx, caller.ID, phone))
}

func (s *UserService) mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
