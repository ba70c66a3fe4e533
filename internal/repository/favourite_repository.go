package repository

import (
	"context"

	"gorm.io/gorm"

	"selli/internal/model"
)

// FavouriteRepository defines persistence operations for a user's
// favourites list.
type FavouriteRepository interface {
	List(ctx context.Context, userID string) ([]model.AdSummary, error)
	Exists(ctx context.Context, userID, adID string) (bool, error)
	Add(ctx context.Context, userID, adID string) error
	Remove(ctx context.Context, userID, adID string) error
}

type favouriteRepository struct {
	db *gorm.DB
}

// NewFavouriteRepository builds a GORM-backed repository.
func NewFavouriteRepository(db *gorm.DB) FavouriteRepository {
	return &favouriteRepository{db: db}
}

// List returns the caller's favourites newest-added first, projected to the
// list shape. The inner join drops rows whose ad has since been deleted.
func (r *favouriteRepository) List(ctx context.Context, userID string) ([]model.AdSummary, error) {
	ads := []model.AdSummary{}
	err := r.db.WithContext(ctx).Model(&model.Favourite{}).
		Select("ads.id, ads.title, ads.price, ads.image").
		Joins("JOIN ads ON ads.id = favourites.ad_id").
		Where("favourites.user_id = ?", userID).
		Order("favourites.id DESC").
		Find(&ads).Error
	return ads, err
}

func (r *favouriteRepository) Exists(ctx context.Context, userID, adID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Favourite{}).
		Where("user_id = ? AND ad_id = ?", userID, adID).
		Count(&count).Error
	return count > 0, err
}

func (r *favouriteRepository) Add(ctx context.Context, userID, adID string) error {
	return r.db.WithContext(ctx).Create(&model.Favourite{UserID: userID, AdID: adID}).Error
}

func (r *favouriteRepository) Remove(ctx context.Context, userID, adID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND ad_id = ?", userID, adID).
		Delete(&model.Favourite{}).Error
}
