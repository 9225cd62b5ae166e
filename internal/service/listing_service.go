package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace-backend/internal/cache"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/repository"
	"marketplace-backend/internal/sample"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
)

const listCacheTTL = 30 * time.Second

// listCacheKey is where the unscoped browse result is cached.
var listCacheKey = cache.Key("listings", "all")

// ListCache is the optional read cache in front of unscoped store reads.
// Satisfied by *cache.Cache; injected so tests can observe cache traffic.
// Cache failures are never surfaced: reads degrade to the store, writes are
// logged and dropped.
type ListCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// FallbackProvider serves the fixed listing set used when the store is
// unreachable. Injected so tests can substitute their own fixture.
type FallbackProvider interface {
	Listings() []model.Listing
	ByCategory(category string) []model.Listing
	BySeller(email string) []model.Listing
	ByID(id string) *model.Listing
}

// CreateListingInput carries the caller-supplied fields of a new listing.
type CreateListingInput struct {
	Title       string
	Description *string
	Price       float64
	Category    string
	Location    string
	SellerEmail string
	SellerName  string
	ImageURL    *string
}

type ListingService interface {
	// Read operations never fail: a store error is logged and the fallback
	// set is returned instead, flagged so callers can tell the two apart.
	// An empty store result is authoritative and is never replaced.
	Browse(ctx context.Context) (listings []model.Listing, fallback bool)
	ByCategory(ctx context.Context, category string) (listings []model.Listing, fallback bool)
	BySeller(ctx context.Context, email string) (listings []model.Listing, fallback bool)

	Get(ctx context.Context, id string) (*model.Listing, error)
	Create(ctx context.Context, in CreateListingInput) (*model.Listing, error)
	Delete(ctx context.Context, id, requesterEmail string) error
}

type listingService struct {
	repo     repository.ListingRepository
	fallback FallbackProvider
	cache    ListCache
}

func NewListingService(repo repository.ListingRepository, fb FallbackProvider, c ListCache) ListingService {
	if fb == nil {
		fb = sample.NewProvider()
	}
	return &listingService{repo: repo, fallback: fb, cache: c}
}

func (s *listingService) Browse(ctx context.Context) ([]model.Listing, bool) {
	var cached []model.Listing
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, listCacheKey, &cached); err == nil && hit {
			return cached, false
		}
	}

	listings, err := s.repo.List(ctx)
	if err != nil {
		// Fallback results are never cached: they would mask store
		// recovery for a full TTL.
		log.Printf("listing store unavailable, serving fallback: %v", err)
		return s.fallback.Listings(), true
	}
	if listings == nil {
		listings = []model.Listing{}
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, listCacheKey, listings, listCacheTTL); err != nil {
			log.Printf("cache set failed: %v", err)
		}
	}
	return listings, false
}

func (s *listingService) ByCategory(ctx context.Context, category string) ([]model.Listing, bool) {
	listings, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		log.Printf("listing store unavailable, serving fallback: %v", err)
		return s.fallback.ByCategory(category), true
	}
	if listings == nil {
		listings = []model.Listing{}
	}
	return listings, false
}

func (s *listingService) BySeller(ctx context.Context, email string) ([]model.Listing, bool) {
	listings, err := s.repo.ListBySeller(ctx, email)
	if err != nil {
		log.Printf("listing store unavailable, serving fallback: %v", err)
		return s.fallback.BySeller(email), true
	}
	if listings == nil {
		listings = []model.Listing{}
	}
	return listings, false
}

func (s *listingService) Get(ctx context.Context, id string) (*model.Listing, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err == nil {
		return listing, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	// Store failure: the fallback set may still know the listing so detail
	// views of fallback data keep working.
	log.Printf("listing store unavailable on detail read: %v", err)
	if l := s.fallback.ByID(id); l != nil {
		return l, nil
	}
	return nil, ErrNotFound
}

func (s *listingService) Create(ctx context.Context, in CreateListingInput) (*model.Listing, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	in.SellerEmail = strings.TrimSpace(in.SellerEmail)
	in.SellerName = strings.TrimSpace(in.SellerName)

	if in.Title == "" || len(in.Title) > 120 {
		return nil, fmt.Errorf("%w: invalid title", ErrValidation)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	if !model.ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: unknown category", ErrValidation)
	}
	if in.SellerEmail == "" || !strings.Contains(in.SellerEmail, "@") {
		return nil, fmt.Errorf("%w: seller email is required", ErrValidation)
	}
	if in.SellerName == "" {
		return nil, fmt.Errorf("%w: seller name is required", ErrValidation)
	}

	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = sample.DefaultLocation()
	}
	imageURL := in.ImageURL
	if imageURL == nil || strings.TrimSpace(*imageURL) == "" {
		placeholder := sample.PlaceholderImageURL()
		imageURL = &placeholder
	}

	listing := &model.Listing{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Location:    location,
		SellerEmail: in.SellerEmail,
		SellerName:  &in.SellerName,
		ImageURL:    imageURL,
	}
	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, err
	}
	s.invalidateList(ctx)
	return listing, nil
}

func (s *listingService) Delete(ctx context.Context, id, requesterEmail string) error {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !strings.EqualFold(listing.SellerEmail, requesterEmail) {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateList(ctx)
	return nil
}

func (s *listingService) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		log.Printf("cache invalidate failed: %v", err)
	}
}
