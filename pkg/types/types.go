// Package domain defines the core types shared by the listing aggregator.
package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PageSize is the number of listings in one page. The cache key, the search
// index window, and merge truncation all use it.
const PageSize = 20

// MaxResultWindow is the deepest offset plus size the search index serves.
const MaxResultWindow = 10000

// MaxPage is the last page whose hits fit inside MaxResultWindow.
const MaxPage = (MaxResultWindow-PageSize)/PageSize + 1

// StatusActive is the listing status that both the seller lookup and the
// index query filter on.
const StatusActive = "active"

// Listing is a single seller offer as stored in the search index.
type Listing struct {
	ID        int64           `json:"id"`
	SellerID  int64           `json:"seller_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	RankScore decimal.Decimal `json:"rank_score"`
}

// FilterSet holds the optional inclusive price bounds of a request.
// A nil bound leaves that side unconstrained.
type FilterSet struct {
	PriceMin *decimal.Decimal `json:"price_min,omitempty"`
	PriceMax *decimal.Decimal `json:"price_max,omitempty"`
}

// Op is a comparison operator in a Predicate.
type Op string

// Comparison operators.
const (
	OpGTE Op = "gte"
	OpLTE Op = "lte"
)

// Predicate is one inclusive bound on a listing field.
type Predicate struct {
	Field string
	Op    Op
	Value decimal.Decimal
}

// Predicates returns the range predicates the filter set implies, lower
// bound first. The seller lookup and the index query are both built from
// this list.
func (f FilterSet) Predicates() []Predicate {
	var preds []Predicate
	if f.PriceMin != nil {
		preds = append(preds, Predicate{Field: "price", Op: OpGTE, Value: *f.PriceMin})
	}
	if f.PriceMax != nil {
		preds = append(preds, Predicate{Field: "price", Op: OpLTE, Value: *f.PriceMax})
	}
	return preds
}

// IsEmpty reports whether no bound is set.
func (f FilterSet) IsEmpty() bool {
	return f.PriceMin == nil && f.PriceMax == nil
}

// Canonical returns an encoding of the filter set that depends only on the
// bound values: keys are sorted and decimals are normalized, so 10.50 and
// 10.5 encode identically.
func (f FilterSet) Canonical() string {
	m := make(map[string]string, 2)
	if f.PriceMin != nil {
		m["price_min"] = f.PriceMin.String()
	}
	if f.PriceMax != nil {
		m["price_max"] = f.PriceMax.String()
	}
	// encoding/json sorts map keys.
	b, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// SortOrder is the direction of the secondary sort key.
type SortOrder string

// Sort orders.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sortable index fields.
const (
	SortFieldRankScore = "rank_score"
	SortFieldPrice     = "price"
	SortFieldID        = "id"
)

// SortSpec is the requested ordering within each seller's listings.
type SortSpec struct {
	Field string    `json:"field"`
	Order SortOrder `json:"order"`
}

// DefaultSort orders each seller's listings by rank score, best first.
func DefaultSort() SortSpec {
	return SortSpec{Field: SortFieldRankScore, Order: SortDesc}
}

// IsSortField reports whether field may be used as a sort key.
func IsSortField(field string) bool {
	switch field {
	case SortFieldRankScore, SortFieldPrice, SortFieldID:
		return true
	default:
		return false
	}
}

// PageRequest is a validated request for one page of listings.
type PageRequest struct {
	CategoryID int64
	Page       int
	Filters    FilterSet
	Sort       SortSpec
}

// Offset returns the index offset of the first hit for the page.
func (r PageRequest) Offset() int {
	if r.Page < 1 {
		return 0
	}
	return (r.Page - 1) * PageSize
}

// Page is one page of fairly interleaved listings.
type Page struct {
	Listings []Listing `json:"data"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}
