package service

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	apperrors "selli/internal/errors"
	"selli/internal/model"
	"selli/internal/repository"
	"selli/internal/validation"
)

// AdInput is a validated ad creation payload.
type AdInput struct {
	Title       string
	Description string
	Category    int
	IsUsed      bool
	Price       float64
	Location    string
	Phone       *string
	Image       string
}

// SearchParams are the raw ad search query strings.
type SearchParams struct {
	Title    string
	Location string
	Category string
	MinPrice string
	MaxPrice string
}

// AdService implements the ad lifecycle and the list-style reads.
type AdService interface {
	Create(ctx context.Context, owner *model.User, input AdInput) (*model.Ad, error)
	Show(ctx context.Context, id string) (*model.AdWithOwner, error)
	Remove(ctx context.Context, caller *model.User, id string) (*model.Ad, error)
	Last(ctx context.Context) ([]model.AdSummary, error)
	ByCategory(ctx context.Context, categoryParam string) ([]model.AdSummary, error)
	ByOwner(ctx context.Context, ownerID string) ([]model.AdSummary, error)
	Search(ctx context.Context, params SearchParams) ([]model.AdSummary, error)
}

type adService struct {
	ads   repository.AdRepository
	users repository.UserRepository
}

// NewAdService creates a new ad service.
func NewAdService(ads repository.AdRepository, users repository.UserRepository) AdService {
	return &adService{ads: ads, users: users}
}

// Create persists an ad owned by the caller with zero views.
func (s *adService) Create(ctx context.Context, owner *model.User, input AdInput) (*model.Ad, error) {
	ad := &model.Ad{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		IsUsed:      input.IsUsed,
		Price:       input.Price,
		Location:    input.Location,
		Phone:       input.Phone,
		Image:       input.Image,
		OwnerID:     owner.ID,
	}
	if err := s.ads.Create(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// Show returns one ad with its owner populated, bumping the view counter
// by exactly one before responding.
func (s *adService) Show(ctx context.Context, id string) (*model.AdWithOwner, error) {
	if !model.ValidID(id) {
		return nil, apperrors.NewBadRequest("Invalid ad ID")
	}

	ad, err := s.ads.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdNotFound
		}
		return nil, err
	}

	if err := s.ads.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	ad.Views++

	owner, err := s.users.FindByID(ctx, ad.OwnerID)
	if err != nil {
		return nil, err
	}
	return &model.AdWithOwner{Ad: *ad, Owner: owner.Summary()}, nil
}

// Remove deletes an ad for its owner. The existence check runs before the
// ownership check: a missing ad is a 404 for every caller, a live ad owned
// by someone else a 401.
func (s *adService) Remove(ctx context.Context, caller *model.User, id string) (*model.Ad, error) {
	if !model.ValidID(id) {
		return nil, apperrors.NewBadRequest("Invalid ad ID")
	}

	ad, err := s.ads.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdNotFound
		}
		return nil, err
	}
	if ad.OwnerID != caller.ID {
		return nil, apperrors.ErrNotOwner
	}

	if err := s.ads.Delete(ctx, id); err != nil {
		return nil, err
	}
	return ad, nil
}

// summaries guarantees a non-nil slice, so an empty listing serializes as
// a JSON array rather than null.
func summaries(ads []model.AdSummary, err error) ([]model.AdSummary, error) {
	if err != nil {
		return nil, err
	}
	if ads == nil {
		ads = []model.AdSummary{}
	}
	return ads, nil
}

func (s *adService) Last(ctx context.Context) ([]model.AdSummary, error) {
	return summaries(s.ads.FindLast(ctx))
}

func (s *adService) ByCategory(ctx context.Context, categoryParam string) ([]model.AdSummary, error) {
	category, err := strconv.Atoi(categoryParam)
	if err != nil || !model.ValidCategory(category) {
		return nil, apperrors.NewBadRequest("Invalid category ID")
	}
	return summaries(s.ads.FindByCategory(ctx, category))
}

func (s *adService) ByOwner(ctx context.Context, ownerID string) ([]model.AdSummary, error) {
	if !model.ValidID(ownerID) {
		return nil, apperrors.NewBadRequest("Invalid user ID")
	}
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return summaries(s.ads.FindByOwner(ctx, ownerID))
}

// Search validates the query parameters, builds the conjunctive filter and
// runs it.
func (s *adService) Search(ctx context.Context, params SearchParams) ([]model.AdSummary, error) {
	if res := validation.ValidateAdSearch(params.Category, params.MinPrice, params.MaxPrice); !res.IsValid {
		return nil, apperrors.NewValidation("Invalid search data", res.Errors)
	}
	query := repository.BuildAdQuery(params.Title, params.Location, params.Category, params.MinPrice, params.MaxPrice)
	return summaries(s.ads.Search(ctx, query))
}
