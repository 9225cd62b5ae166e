package handler

import (
	"time"

	"marketplace-backend/internal/model"
)

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

type ListingResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	SellerEmail string  `json:"sellerEmail"`
	SellerName  *string `json:"sellerName,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ListingListResponse carries a derived view. Fallback tells the client the
// items came from the sample set rather than the live store; an empty Items
// with Fallback false means a genuine zero-row result.
type ListingListResponse struct {
	Items    []ListingResponse `json:"items"`
	Total    int               `json:"total"`
	Fallback bool              `json:"fallback"`
}

func toListingResponse(l *model.Listing) ListingResponse {
	return ListingResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Category:    l.Category,
		Location:    l.Location,
		SellerEmail: l.SellerEmail,
		SellerName:  l.SellerName,
		ImageURL:    l.ImageURL,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   l.UpdatedAt.Format(time.RFC3339),
	}
}

func toListingListResponse(listings []model.Listing, fallback bool) ListingListResponse {
	resp := ListingListResponse{
		Items:    make([]ListingResponse, 0, len(listings)),
		Total:    len(listings),
		Fallback: fallback,
	}
	for i := range listings {
		resp.Items = append(resp.Items, toListingResponse(&listings[i]))
	}
	return resp
}
