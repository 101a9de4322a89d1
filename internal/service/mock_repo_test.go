package service

import (
	"context"

	"blog_api/internal/models"
	"blog_api/internal/repository"
)

// mockAuthRepo is a lightweight in-test mock for repository.Authorization.
type mockAuthRepo struct {
	CreateFn        func(u *models.User) (uint, error)
	GetByUsernameFn func(username string) (*models.User, error)
	GetByIDFn       func(id uint) (*models.User, error)
	UpdateFn        func(id uint, column, value string) error

	createCalls []models.User
	getCalls    []string
	updates     map[string]string
}

var _ repository.Authorization = (*mockAuthRepo)(nil)

func (m *mockAuthRepo) Create(_ context.Context, u *models.User) (uint, error) {
	m.createCalls = append(m.createCalls, *u)
	return m.CreateFn(u)
}

func (m *mockAuthRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

func (m *mockAuthRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	return m.GetByIDFn(id)
}

func (m *mockAuthRepo) UpdatePasswordHash(_ context.Context, id uint, hash string) error {
	return m.update(id, "hashed_password", hash)
}

func (m *mockAuthRepo) UpdatePhoneNumber(_ context.Context, id uint, phone string) error {
	return m.update(id, "phone_number", phone)
}

func (m *mockAuthRepo) update(id uint, column, value string) error {
	if m.updates == nil {
		m.updates = map[string]string{}
	}
	m.updates[column] = value
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(id, column, value)
}

// mockPostRepo keeps posts in a map and enforces the owner filter the way the
// SQL does.
type mockPostRepo struct {
	posts  map[uint]models.Post
	nextID uint
	err    error
}

var _ repository.PostRepo = (*mockPostRepo)(nil)

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: map[uint]models.Post{}, nextID: 1}
}

func (m *mockPostRepo) ListByOwner(_ context.Context, ownerID uint) ([]models.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Post, 0)
	for id := uint(1); id < m.nextID; id++ {
		if p, ok := m.posts[id]; ok && p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPostRepo) GetByID(_ context.Context, id uint) (models.Post, error) {
	if m.err != nil {
		return models.Post{}, m.err
	}
	p, ok := m.posts[id]
	if !ok {
		return models.Post{}, repository.ErrNotFound
	}
	return p, nil
}

func (m *mockPostRepo) Create(_ context.Context, p *models.Post) error {
	if m.err != nil {
		return m.err
	}
	p.ID = m.nextID
	m.nextID++
	m.posts[p.ID] = *p
	return nil
}

func (m *mockPostRepo) UpdateOwned(_ context.Context, id, ownerID uint, apply func(*models.Post)) error {
	if m.err != nil {
		return m.err
	}
	p, ok := m.posts[id]
	if !ok || p.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	apply(&p)
	m.posts[id] = p
	return nil
}

func (m *mockPostRepo) DeleteOwned(_ context.Context, id, ownerID uint) error {
	if m.err != nil {
		return m.err
	}
	p, ok := m.posts[id]
	if !ok || p.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}
