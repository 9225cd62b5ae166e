package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"marketplace-backend/internal/middleware"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/service"
)

type MessageHandler struct {
	svc      service.MessageService
	listings service.ListingService
}

func NewMessageHandler(svc service.MessageService, listings service.ListingService) *MessageHandler {
	return &MessageHandler{svc: svc, listings: listings}
}

type SendMessageRequest struct {
	BuyerEmail string `json:"buyerEmail"`
	BuyerName  string `json:"buyerName"`
	Message    string `json:"message"`
}

type SendMessageResponse struct {
	ID               string `json:"id"`
	NotificationSent bool   `json:"notificationSent"`
	CreatedAt        string `json:"createdAt"`
}

// Send stores a buyer inquiry for a listing and reports whether the seller
// notification went out. A failed notification still returns 201.
func (h *MessageHandler) Send(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	res, err := h.svc.Send(c.Request().Context(), c.Param("id"), req.BuyerEmail, req.BuyerName, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "listing not found"))
		}
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to send message, try again"))
	}
	return c.JSON(http.StatusCreated, SendMessageResponse{
		ID:               res.Message.ID,
		NotificationSent: res.NotificationSent,
		CreatedAt:        res.Message.CreatedAt.Format(time.RFC3339),
	})
}

// ListByListing returns the inquiries for one of the caller's own listings.
func (h *MessageHandler) ListByListing(c echo.Context) error {
	listingID := c.Param("id")
	listing, err := h.listings.Get(c.Request().Context(), listingID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "listing not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch listing"))
	}
	if !strings.EqualFold(listing.SellerEmail, middleware.UserEmail(c)) {
		return c.JSON(http.StatusForbidden, NewErrorResponse("forbidden", "not the listing owner"))
	}
	msgs, err := h.svc.ListByListing(c.Request().Context(), listingID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch messages"))
	}
	if msgs == nil {
		msgs = []model.Message{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"messages": msgs})
}
