package repository

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"selli/internal/model"
)

// lastAdsLimit caps the "latest ads" listing.
const lastAdsLimit = 25

// summaryColumns is the reduced projection used by every list-style read.
const summaryColumns = "id, title, price, image"

// AdQuery is the filter built from search query parameters. All constraints
// are conjunctive; absent parameters impose nothing beyond price >= 0.
type AdQuery struct {
	Title    string
	Location string
	Category *int
	MinPrice float64
	MaxPrice *float64
}

// BuildAdQuery constructs an AdQuery from raw, already-validated query
// strings. It is a pure function so the construction is testable on its own.
func BuildAdQuery(title, location, category, minPrice, maxPrice string) AdQuery {
	q := AdQuery{Title: strings.TrimSpace(title), Location: strings.TrimSpace(location)}
	if s := strings.TrimSpace(category); s != "" {
		if c, err := strconv.Atoi(s); err == nil {
			q.Category = &c
		}
	}
	if s := strings.TrimSpace(minPrice); s != "" {
		if p, err := strconv.ParseFloat(s, 64); err == nil {
			q.MinPrice = p
		}
	}
	if s := strings.TrimSpace(maxPrice); s != "" {
		if p, err := strconv.ParseFloat(s, 64); err == nil {
			q.MaxPrice = &p
		}
	}
	return q
}

func (q AdQuery) apply(db *gorm.DB) *gorm.DB {
	db = db.Where("price >= ?", q.MinPrice)
	if q.MaxPrice != nil {
		db = db.Where("price <= ?", *q.MaxPrice)
	}
	if q.Title != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(q.Title)+"%")
	}
	if q.Location != "" {
		db = db.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(q.Location)+"%")
	}
	if q.Category != nil {
		db = db.Where("category = ?", *q.Category)
	}
	return db
}

// AdRepository defines persistence operations for ads.
type AdRepository interface {
	Create(ctx context.Context, ad *model.Ad) error
	FindByID(ctx context.Context, id string) (*model.Ad, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	FindLast(ctx context.Context) ([]model.AdSummary, error)
	FindByCategory(ctx context.Context, category int) ([]model.AdSummary, error)
	FindByOwner(ctx context.Context, ownerID string) ([]model.AdSummary, error)
	Search(ctx context.Context, query AdQuery) ([]model.AdSummary, error)
}

type adRepository struct {
	db *gorm.DB
}

// NewAdRepository builds a GORM-backed repository.
func NewAdRepository(db *gorm.DB) AdRepository {
	return &adRepository{db: db}
}

func (r *adRepository) Create(ctx context.Context, ad *model.Ad) error {
	return r.db.WithContext(ctx).Create(ad).Error
}

func (r *adRepository) FindByID(ctx context.Context, id string) (*model.Ad, error) {
	var ad model.Ad
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ad).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}

func (r *adRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Ad{}).Error
}

// IncrementViews bumps the counter in a single UPDATE so concurrent reads
// never lose an increment.
func (r *adRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.Ad{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *adRepository) FindLast(ctx context.Context) ([]model.AdSummary, error) {
	ads := []model.AdSummary{}
	err := r.db.WithContext(ctx).Model(&model.Ad{}).
		Select(summaryColumns).
		Order("creation_date DESC").
		Limit(lastAdsLimit).
		Find(&ads).Error
	return ads, err
}

func (r *adRepository) FindByCategory(ctx context.Context, category int) ([]model.AdSummary, error) {
	ads := []model.AdSummary{}
	err := r.db.WithContext(ctx).Model(&model.Ad{}).
		Select(summaryColumns).
		Where("category = ?", category).
		Find(&ads).Error
	return ads, err
}

func (r *adRepository) FindByOwner(ctx context.Context, ownerID string) ([]model.AdSummary, error) {
	ads := []model.AdSummary{}
	err := r.db.WithContext(ctx).Model(&model.Ad{}).
		Select(summaryColumns).
		Where("owner_id = ?", ownerID).
		Order("creation_date DESC").
		Find(&ads).Error
	return ads, err
}

func (r *adRepository) Search(ctx context.Context, query AdQuery) ([]model.AdSummary, error) {
	ads := []model.AdSummary{}
	err := query.apply(r.db.WithContext(ctx).Model(&model.Ad{})).
		Select(summaryColumns).
		Find(&ads).Error
	return ads, err
}
