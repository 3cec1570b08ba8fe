package aggregator

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

// Request defaults applied to absent parameters.
const (
	DefaultCategoryID = 1
	DefaultPage       = 1
)

// RawRequest carries the query parameters as the client sent them. Empty
// fields take their defaults.
type RawRequest struct {
	CategoryID string
	Page       string
	SortBy     string
	SortOrder  string
	PriceMin   string
	PriceMax   string
}

// ParseRequest converts and validates raw parameters. Every failure is an
// *InputError.
func ParseRequest(raw RawRequest) (domain.PageRequest, error) {
	req := domain.PageRequest{
		CategoryID: DefaultCategoryID,
		Page:       DefaultPage,
		Sort:       domain.DefaultSort(),
	}

	if v := strings.TrimSpace(raw.CategoryID); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, &InputError{Field: "category_id", Value: raw.CategoryID, Reason: "must be an integer"}
		}
		req.CategoryID = id
	}

	if v := strings.TrimSpace(raw.Page); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return req, &InputError{Field: "page", Value: raw.Page, Reason: "must be an integer"}
		}
		req.Page = page
	}

	if v := strings.TrimSpace(raw.SortBy); v != "" {
		req.Sort.Field = v
	}
	if v := strings.TrimSpace(raw.SortOrder); v != "" {
		req.Sort.Order = domain.SortOrder(strings.ToLower(v))
	}

	var err error
	if req.Filters.PriceMin, err = parsePrice("price_min", raw.PriceMin); err != nil {
		return req, err
	}
	if req.Filters.PriceMax, err = parsePrice("price_max", raw.PriceMax); err != nil {
		return req, err
	}

	if err := Validate(req); err != nil {
		return req, err
	}
	return req, nil
}

func parsePrice(field, raw string) (*decimal.Decimal, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, &InputError{Field: field, Value: raw, Reason: "must be a decimal number"}
	}
	return &d, nil
}

// Validate checks a request built without ParseRequest.
func Validate(req domain.PageRequest) error {
	if req.CategoryID < 1 {
		return &InputError{
			Field:  "category_id",
			Value:  strconv.FormatInt(req.CategoryID, 10),
			Reason: "must be positive",
		}
	}
	if req.Page < 1 {
		return &InputError{Field: "page", Value: strconv.Itoa(req.Page), Reason: "must be at least 1"}
	}
	if req.Page > domain.MaxPage {
		return &InputError{
			Field:  "page",
			Value:  strconv.Itoa(req.Page),
			Reason: "too large, must be at most " + strconv.Itoa(domain.MaxPage),
		}
	}
	if !domain.IsSortField(req.Sort.Field) {
		return &InputError{
			Field:  "sort_by",
			Value:  req.Sort.Field,
			Reason: "must be one of rank_score, price, id",
		}
	}
	if req.Sort.Order != domain.SortAsc && req.Sort.Order != domain.SortDesc {
		return &InputError{Field: "sort_order", Value: string(req.Sort.Order), Reason: "must be asc or desc"}
	}

	lo, hi := req.Filters.PriceMin, req.Filters.PriceMax
	if lo != nil && lo.IsNegative() {
		return &InputError{Field: "price_min", Value: lo.String(), Reason: "must not be negative"}
	}
	if hi != nil && hi.IsNegative() {
		return &InputError{Field: "price_max", Value: hi.String(), Reason: "must not be negative"}
	}
	if lo != nil && hi != nil && lo.GreaterThan(*hi) {
		return &InputError{Field: "price_min", Value: lo.String(), Reason: "must not exceed price_max"}
	}
	return nil
}
