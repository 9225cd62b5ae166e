package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"marketplace-backend/internal/model"
	"marketplace-backend/internal/notify"
	"marketplace-backend/internal/repository"
)

// Notifier dispatches a seller notification for a stored message.
type Notifier interface {
	Notify(ctx context.Context, p notify.Payload) error
}

// SendResult is the tagged outcome of a message submission. Stored is always
// true on a nil error; NotificationSent distinguishes full success from
// stored-but-unnotified, so callers can see partial failure instead of it
// being swallowed.
type SendResult struct {
	Message          *model.Message
	NotificationSent bool
}

type MessageService interface {
	Send(ctx context.Context, listingID, buyerEmail, buyerName, body string) (*SendResult, error)
	ListByListing(ctx context.Context, listingID string) ([]model.Message, error)
}

type messageService struct {
	msgRepo  repository.MessageRepository
	listings ListingService
	notifier Notifier
}

func NewMessageService(msgRepo repository.MessageRepository, listings ListingService, notifier Notifier) MessageService {
	return &messageService{msgRepo: msgRepo, listings: listings, notifier: notifier}
}

// Send stores the message, then best-effort notifies the seller. A
// notification failure never rolls back the stored message; message
// persistence and notification delivery are not transactional.
func (s *messageService) Send(ctx context.Context, listingID, buyerEmail, buyerName, body string) (*SendResult, error) {
	buyerEmail = strings.TrimSpace(buyerEmail)
	buyerName = strings.TrimSpace(buyerName)
	body = strings.TrimSpace(body)

	if buyerEmail == "" || !strings.Contains(buyerEmail, "@") {
		return nil, fmt.Errorf("%w: buyer email is required", ErrValidation)
	}
	if body == "" {
		return nil, fmt.Errorf("%w: message body is required", ErrValidation)
	}

	listing, err := s.listings.Get(ctx, listingID)
	if err != nil {
		return nil, err
	}

	msg := &model.Message{
		ID:         uuid.NewString(),
		ListingID:  listing.ID,
		BuyerEmail: buyerEmail,
		Body:       body,
	}
	if buyerName != "" {
		msg.BuyerName = &buyerName
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	res := &SendResult{Message: msg}
	if s.notifier == nil {
		return res, nil
	}
	notifyErr := s.notifier.Notify(ctx, notify.Payload{
		SellerEmail: listing.SellerEmail,
		BuyerEmail:  buyerEmail,
		BuyerName:   buyerName,
		Message:     body,
		ListingID:   listing.ID,
	})
	if notifyErr != nil {
		log.Printf("notification dispatch failed for listing %s: %v", listing.ID, notifyErr)
	} else {
		res.NotificationSent = true
	}
	return res, nil
}

func (s *messageService) ListByListing(ctx context.Context, listingID string) ([]model.Message, error) {
	return s.msgRepo.ListByListing(ctx, listingID)
}
