package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "selli/internal/errors"
	"selli/internal/model"
)

const favUserID = "507f1f77bcf86cd799439011"

func TestFavouriteService_Add(t *testing.T) {
	t.Run("malformed ad id is a 400", func(t *testing.T) {
		svc := NewFavouriteService(new(MockFavouriteRepository), new(MockAdRepository))
		_, err := svc.Add(context.Background(), favUserID, "nope")
		var httpErr *apperrors.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Status)
	})

	t.Run("missing ad entity is a 404", func(t *testing.T) {
		ads := new(MockAdRepository)
		ads.On("FindByID", mock.Anything, missingID).Return(nil, gorm.ErrRecordNotFound)
		svc := NewFavouriteService(new(MockFavouriteRepository), ads)
		_, err := svc.Add(context.Background(), favUserID, missingID)
		assert.ErrorIs(t, err, apperrors.ErrAdNotFound)
	})

	t.Run("second add of the same ad is rejected", func(t *testing.T) {
		ads := new(MockAdRepository)
		ads.On("FindByID", mock.Anything, adID).Return(&model.Ad{ID: adID}, nil)
		favourites := new(MockFavouriteRepository)
		favourites.On("Exists", mock.Anything, favUserID, adID).Return(true, nil)
		svc := NewFavouriteService(favourites, ads)

		_, err := svc.Add(context.Background(), favUserID, adID)

		assert.ErrorIs(t, err, apperrors.ErrAlreadyFavourite)
		favourites.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("success inserts and returns the updated list", func(t *testing.T) {
		ads := new(MockAdRepository)
		ads.On("FindByID", mock.Anything, adID).Return(&model.Ad{ID: adID, Title: "Bike"}, nil)
		favourites := new(MockFavouriteRepository)
		favourites.On("Exists", mock.Anything, favUserID, adID).Return(false, nil)
		favourites.On("Add", mock.Anything, favUserID, adID).Return(nil)
		favourites.On("List", mock.Anything, favUserID).Return([]model.AdSummary{{ID: adID, Title: "Bike"}}, nil)
		svc := NewFavouriteService(favourites, ads)

		list, err := svc.Add(context.Background(), favUserID, adID)

		assert.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, adID, list[0].ID)
		favourites.AssertExpectations(t)
	})
}

func TestFavouriteService_Remove(t *testing.T) {
	t.Run("ad exists but is not favourited: 400", func(t *testing.T) {
		ads := new(MockAdRepository)
		ads.On("FindByID", mock.Anything, adID).Return(&model.Ad{ID: adID}, nil)
		favourites := new(MockFavouriteRepository)
		favourites.On("Exists", mock.Anything, favUserID, adID).Return(false, nil)
		svc := NewFavouriteService(favourites, ads)

		_, err := svc.Remove(context.Background(), favUserID, adID)

		assert.ErrorIs(t, err, apperrors.ErrNotFavourite)
	})

	t.Run("missing ad entity is a 404 even if a stale row lingers", func(t *testing.T) {
		ads := new(MockAdRepository)
		ads.On("FindByID", mock.Anything, missingID).Return(nil, gorm.ErrRecordNotFound)
		svc := NewFavouriteService(new(MockFavouriteRepository), ads)

		_, err := svc.Remove(context.Background(), favUserID, missingID)

		assert.ErrorIs(t, err, apperrors.ErrAdNotFound)
	})

	t.Run("success removes and returns the updated list", func(t *testing.T) {
		ads := new(MockAdRepository)
		ads.On("FindByID", mock.Anything, adID).Return(&model.Ad{ID: adID}, nil)
		favourites := new(MockFavouriteRepository)
		favourites.On("Exists", mock.Anything, favUserID, adID).Return(true, nil)
		favourites.On("Remove", mock.Anything, favUserID, adID).Return(nil)
		favourites.On("List", mock.Anything, favUserID).Return([]model.AdSummary{}, nil)
		svc := NewFavouriteService(favourites, ads)

		list, err := svc.Remove(context.Background(), favUserID, adID)

		assert.NoError(t, err)
		assert.Empty(t, list)
		favourites.AssertExpectations(t)
	})
}

func TestFavouriteService_EmptyListIsArray(t *testing.T) {
	favourites := new(MockFavouriteRepository)
	favourites.On("List", mock.Anything, favUserID).Return(nil, nil)
	svc := NewFavouriteService(favourites, new(MockAdRepository))

	list, err := svc.List(context.Background(), favUserID)

	assert.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
