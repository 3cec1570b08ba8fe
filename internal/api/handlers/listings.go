package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/listing-aggregator/internal/aggregator"
	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

// ListingsService produces aggregated listing pages.
type ListingsService interface {
	GetListings(ctx context.Context, req domain.PageRequest) (*domain.Page, error)
}

// ListingsHandler handles the aggregated listings endpoint.
type ListingsHandler struct {
	svc ListingsService
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(svc ListingsService) *ListingsHandler {
	return &ListingsHandler{svc: svc}
}

// --- Input/Output types ---

// GetListingsInput holds the raw query parameters. They are kept as strings
// so malformed values are reported by ParseRequest with the field name.
type GetListingsInput struct {
	CategoryID string `query:"category_id" doc:"Category to list (default 1)"                    example:"7"`
	Page       string `query:"page"        doc:"1-based page number (default 1)"                 example:"1"`
	SortBy     string `query:"sort_by"     doc:"Secondary sort field: rank_score, price or id"   example:"rank_score"`
	SortOrder  string `query:"sort_order"  doc:"Secondary sort direction: asc or desc"           example:"desc"`
	PriceMin   string `query:"price_min"   doc:"Inclusive lower price bound"                     example:"10.00"`
	PriceMax   string `query:"price_max"   doc:"Inclusive upper price bound"                     example:"250.00"`
}

// ListingsBody is the success envelope.
type ListingsBody struct {
	Status   string           `json:"status"    example:"success"`
	Data     []domain.Listing `json:"data"      doc:"Listings interleaved fairly across sellers"`
	Page     int              `json:"page"      example:"1"`
	PageSize int              `json:"page_size" example:"20"`
}

// GetListingsOutput is the response for the listings endpoint.
type GetListingsOutput struct {
	Body ListingsBody
}

// --- Handlers ---

// GetListings returns one page of listings for a category, interleaved
// round-robin across sellers.
func (h *ListingsHandler) GetListings(
	ctx context.Context,
	input *GetListingsInput,
) (*GetListingsOutput, error) {
	req, err := aggregator.ParseRequest(aggregator.RawRequest{
		CategoryID: input.CategoryID,
		Page:       input.Page,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
		PriceMin:   input.PriceMin,
		PriceMax:   input.PriceMax,
	})
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	page, err := h.svc.GetListings(ctx, req)
	if err != nil {
		return nil, toHTTPError(err)
	}

	out := &GetListingsOutput{}
	out.Body.Status = "success"
	out.Body.Data = page.Listings
	out.Body.Page = page.Page
	out.Body.PageSize = page.PageSize
	return out, nil
}

// toHTTPError maps service errors to responses. Downstream details stay in
// the server log; clients only learn which stage failed.
func toHTTPError(err error) error {
	var ie *aggregator.InputError
	if errors.As(err, &ie) {
		return huma.Error400BadRequest(ie.Error())
	}

	var de *aggregator.DownstreamError
	if errors.As(err, &de) {
		return huma.Error502BadGateway(de.Stage + " unavailable")
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return huma.Error504GatewayTimeout("request timed out")
	}

	return huma.Error500InternalServerError("internal server error")
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "Get aggregated listings",
		Description: "Returns one page of active listings for a category, interleaved round-robin " +
			"across sellers so no single seller dominates the page.",
		Tags:   []string{"listings"},
		Errors: []int{http.StatusBadRequest, http.StatusBadGateway},
	}, h.GetListings)
}
