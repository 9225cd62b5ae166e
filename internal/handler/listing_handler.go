package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"marketplace-backend/internal/middleware"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/query"
	"marketplace-backend/internal/service"
)

type ListingHandler struct {
	svc service.ListingService
}

func NewListingHandler(svc service.ListingService) *ListingHandler {
	return &ListingHandler{svc: svc}
}

type CreateListingRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	SellerName  string  `json:"sellerName"`
	ImageURL    *string `json:"imageUrl"`
}

// List fetches listings through the fallback-wrapped source, then applies the
// filter/sort/search pipeline. When a concrete category is given the store
// query is scoped to it and the text query only searches title/description,
// matching the category browse pages; otherwise the query also matches
// category names, as on the site-wide search.
func (h *ListingHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	category := c.QueryParam("category")

	var (
		listings []model.Listing
		fallback bool
	)
	params := query.Params{
		Query:       c.QueryParam("q"),
		SubCategory: c.QueryParam("sub_category"),
		PriceMin:    parsePrice(c.QueryParam("price_min")),
		PriceMax:    parsePrice(c.QueryParam("price_max")),
		Sort:        c.QueryParam("sort"),
	}
	if category != "" && category != model.AllCategories {
		listings, fallback = h.svc.ByCategory(ctx, category)
		params.Category = category
		params.Scope = query.ScopeTitleDescription
	} else {
		listings, fallback = h.svc.Browse(ctx)
		params.Scope = query.ScopeFull
	}

	result := query.Apply(listings, params)
	return c.JSON(http.StatusOK, toListingListResponse(result, fallback))
}

func (h *ListingHandler) Get(c echo.Context) error {
	listing, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "listing not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch listing"))
	}
	return c.JSON(http.StatusOK, toListingResponse(listing))
}

func (h *ListingHandler) Create(c echo.Context) error {
	var req CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	listing, err := h.svc.Create(c.Request().Context(), service.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Location:    req.Location,
		SellerEmail: middleware.UserEmail(c),
		SellerName:  req.SellerName,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to create listing, try again"))
	}
	return c.JSON(http.StatusCreated, toListingResponse(listing))
}

func (h *ListingHandler) Delete(c echo.Context) error {
	err := h.svc.Delete(c.Request().Context(), c.Param("id"), middleware.UserEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "listing not found"))
		case errors.Is(err, service.ErrForbidden):
			return c.JSON(http.StatusForbidden, NewErrorResponse("forbidden", "not the listing owner"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to delete listing, try again"))
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ListingHandler) ListMine(c echo.Context) error {
	listings, fallback := h.svc.BySeller(c.Request().Context(), middleware.UserEmail(c))
	return c.JSON(http.StatusOK, toListingListResponse(listings, fallback))
}

// Categories exposes the closed category set and the sub-category tags the
// engine recognizes, for building browse UIs.
func (h *ListingHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"categories":    model.Categories,
		"subCategories": query.SubCategories(),
	})
}

// parsePrice treats unparseable or negative bounds as absent, never as an
// error.
func parsePrice(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
