package repository

import (
	"context"

	"gorm.io/gorm"

	"marketplace-backend/internal/model"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	ListByListing(ctx context.Context, listingID string) ([]model.Message, error)
	SetDB(db *gorm.DB)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *model.Message) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) ListByListing(ctx context.Context, listingID string) ([]model.Message, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var msgs []model.Message
	if err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at asc").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *messageRepository) SetDB(db *gorm.DB) {
	r.db = db
}
