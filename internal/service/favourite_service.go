package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "selli/internal/errors"
	"selli/internal/model"
	"selli/internal/repository"
)

// FavouriteService implements the favourites list operations. Add and
// Remove both require the referenced ad to exist as an entity; membership
// of the caller's list is a separate, later check.
type FavouriteService interface {
	List(ctx context.Context, userID string) ([]model.AdSummary, error)
	Add(ctx context.Context, userID, adID string) ([]model.AdSummary, error)
	Remove(ctx context.Context, userID, adID string) ([]model.AdSummary, error)
}

type favouriteService struct {
	favourites repository.FavouriteRepository
	ads        repository.AdRepository
}

// NewFavouriteService creates a new favourite service.
func NewFavouriteService(favourites repository.FavouriteRepository, ads repository.AdRepository) FavouriteService {
	return &favouriteService{favourites: favourites, ads: ads}
}

func (s *favouriteService) List(ctx context.Context, userID string) ([]model.AdSummary, error) {
	return summaries(s.favourites.List(ctx, userID))
}

// Add puts the ad at the front of the list and returns the updated
// projection. A duplicate add is rejected, not ignored.
func (s *favouriteService) Add(ctx context.Context, userID, adID string) ([]model.AdSummary, error) {
	if err := s.checkAd(ctx, adID); err != nil {
		return nil, err
	}

	exists, err := s.favourites.Exists(ctx, userID, adID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyFavourite
	}

	if err := s.favourites.Add(ctx, userID, adID); err != nil {
		return nil, err
	}
	return summaries(s.favourites.List(ctx, userID))
}

// Remove drops the ad from the list and returns the updated projection.
// Absence from the list is a 400; a missing ad entity is a 404.
func (s *favouriteService) Remove(ctx context.Context, userID, adID string) ([]model.AdSummary, error) {
	if err := s.checkAd(ctx, adID); err != nil {
		return nil, err
	}

	exists, err := s.favourites.Exists(ctx, userID, adID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrNotFavourite
	}

	if err := s.favourites.Remove(ctx, userID, adID); err != nil {
		return nil, err
	}
	return summaries(s.favourites.List(ctx, userID))
}

func (s *favouriteService) checkAd(ctx context.Context, adID string) error {
	if !model.ValidID(adID) {
		return apperrors.NewBadRequest("Invalid ad ID")
	}
	if _, err := s.ads.FindByID(ctx, adID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAdNotFound
		}
		return err
	}
	return nil
}
