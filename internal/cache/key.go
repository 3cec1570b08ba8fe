package cache

import (
	"fmt"

	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

const keyPrefix = "listings"

// Key derives the cache key for a page request. It covers every input that
// changes the page: category, page number, page size, sort field, sort
// order, and the canonical filter encoding. Equal filter sets always produce
// equal keys regardless of how they were built.
func Key(req domain.PageRequest) string {
	return fmt.Sprintf("%s:%d:%d:%d:%s:%s:%s",
		keyPrefix,
		req.CategoryID,
		req.Page,
		domain.PageSize,
		req.Sort.Field,
		req.Sort.Order,
		req.Filters.Canonical(),
	)
}
