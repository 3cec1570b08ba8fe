package search

import (
	"encoding/json"

	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

// Index document field names.
const (
	fieldCategoryID = "category_id"
	fieldSellerID   = "seller_id"
	fieldStatus     = "status"
)

// Query is a conjunctive index query with a two-level sort. It marshals to an
// Elasticsearch request body.
type Query struct {
	Must []map[string]any
	Sort []map[string]any
}

// MarshalJSON encodes the query as {"query":{"bool":{"must":[...]}},"sort":[...]}.
func (q *Query) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": q.Must,
			},
		},
		"sort": q.Sort,
	})
}

// BuildQuery translates a request into an index query.
//
// The must clauses restrict hits to the category, the given sellers, and
// active status, plus one range clause per filter predicate. Hits are sorted
// by seller_id ascending first and by the requested field second, so each
// seller's hits come back contiguous and already ranked.
func BuildQuery(
	categoryID int64,
	sellerIDs []int64,
	filters domain.FilterSet,
	sort domain.SortSpec,
) *Query {
	must := []map[string]any{
		{"term": map[string]any{fieldCategoryID: categoryID}},
		{"terms": map[string]any{fieldSellerID: sellerIDs}},
		{"term": map[string]any{fieldStatus: domain.StatusActive}},
	}

	for _, p := range filters.Predicates() {
		must = append(must, map[string]any{
			"range": map[string]any{
				p.Field: map[string]any{
					string(p.Op): json.Number(p.Value.String()),
				},
			},
		})
	}

	if !domain.IsSortField(sort.Field) {
		sort.Field = domain.SortFieldRankScore
	}
	if sort.Order != domain.SortAsc && sort.Order != domain.SortDesc {
		sort.Order = domain.SortDesc
	}

	return &Query{
		Must: must,
		Sort: []map[string]any{
			{fieldSellerID: "asc"},
			{sort.Field: map[string]any{"order": string(sort.Order)}},
		},
	}
}
