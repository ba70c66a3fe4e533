package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"selli/internal/model"
	"selli/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, id string, updates map[string]any) (*model.User, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) DeleteCascade(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

// MockAdRepository is a mock implementation of repository.AdRepository.
type MockAdRepository struct {
	mock.Mock
}

func (m *MockAdRepository) Create(ctx context.Context, ad *model.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdRepository) FindByID(ctx context.Context, id string) (*model.Ad, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ad), args.Error(1)
}

func (m *MockAdRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdRepository) IncrementViews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdRepository) FindLast(ctx context.Context) ([]model.AdSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AdSummary), args.Error(1)
}

func (m *MockAdRepository) FindByCategory(ctx context.Context, category int) ([]model.AdSummary, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AdSummary), args.Error(1)
}

func (m *MockAdRepository) FindByOwner(ctx context.Context, ownerID string) ([]model.AdSummary, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AdSummary), args.Error(1)
}

func (m *MockAdRepository) Search(ctx context.Context, query repository.AdQuery) ([]model.AdSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AdSummary), args.Error(1)
}

var _ repository.AdRepository = (*MockAdRepository)(nil)

// MockFavouriteRepository is a mock implementation of repository.FavouriteRepository.
type MockFavouriteRepository struct {
	mock.Mock
}

func (m *MockFavouriteRepository) List(ctx context.Context, userID string) ([]model.AdSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AdSummary), args.Error(1)
}

func (m *MockFavouriteRepository) Exists(ctx context.Context, userID, adID string) (bool, error) {
	args := m.Called(ctx, userID, adID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavouriteRepository) Add(ctx context.Context, userID, adID string) error {
	args := m.Called(ctx, userID, adID)
	return args.Error(0)
}

func (m *MockFavouriteRepository) Remove(ctx context.Context, userID, adID string) error {
	args := m.Called(ctx, userID, adID)
	return args.Error(0)
}

var _ repository.FavouriteRepository = (*MockFavouriteRepository)(nil)
