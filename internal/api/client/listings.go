package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

// ListingsResponse is the listings endpoint envelope.
type ListingsResponse struct {
	Status   string           `json:"status"`
	Data     []domain.Listing `json:"data"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// GetListingsParams defines query parameters for a listings page. Zero
// values are omitted so the server applies its defaults.
type GetListingsParams struct {
	CategoryID int64
	Page       int
	SortBy     string
	SortOrder  string
	PriceMin   string
	PriceMax   string
}

// GetListings returns one aggregated page of listings.
func (c *Client) GetListings(
	ctx context.Context,
	params *GetListingsParams,
) (*ListingsResponse, error) {
	q := url.Values{}
	if params.CategoryID != 0 {
		q.Set("category_id", strconv.FormatInt(params.CategoryID, 10))
	}
	if params.Page != 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.SortBy != "" {
		q.Set("sort_by", params.SortBy)
	}
	if params.SortOrder != "" {
		q.Set("sort_order", params.SortOrder)
	}
	if params.PriceMin != "" {
		q.Set("price_min", params.PriceMin)
	}
	if params.PriceMax != "" {
		q.Set("price_max", params.PriceMax)
	}

	path := "/api/v1/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListingsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReadinessResponse mirrors the /readyz body.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Ready queries the readiness probe. A 503 is returned as an *APIError.
func (c *Client) Ready(ctx context.Context) (*ReadinessResponse, error) {
	var resp ReadinessResponse
	if err := c.get(ctx, "/readyz", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
