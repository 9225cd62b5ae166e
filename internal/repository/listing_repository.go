package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketplace-backend/internal/model"
)

// ErrDBNotReady is returned while the database connection has not been
// injected yet. Callers treat it like any other store failure.
var ErrDBNotReady = errors.New("database not initialized")

type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) error
	FindByID(ctx context.Context, id string) (*model.Listing, error)
	List(ctx context.Context) ([]model.Listing, error)
	ListByCategory(ctx context.Context, category string) ([]model.Listing, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]model.Listing, error)
	Delete(ctx context.Context, id string) error
	SetDB(db *gorm.DB)
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *model.Listing) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) FindByID(ctx context.Context, id string) (*model.Listing, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var listing model.Listing
	if err := r.db.WithContext(ctx).First(&listing, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) List(ctx context.Context) ([]model.Listing, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var listings []model.Listing
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) ListByCategory(ctx context.Context, category string) ([]model.Listing, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var listings []model.Listing
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at desc").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]model.Listing, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var listings []model.Listing
	if err := r.db.WithContext(ctx).
		Where("seller_email = ?", sellerEmail).
		Order("created_at desc").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) Delete(ctx context.Context, id string) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	res := r.db.WithContext(ctx).Delete(&model.Listing{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *listingRepository) SetDB(db *gorm.DB) {
	r.db = db
}
