// Package search provides the search index client the aggregator queries for
// listings, abstracted behind an interface for testability.
package search

import (
	"context"

	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

// DefaultIndexName is the index holding listing documents.
const DefaultIndexName = "listings"

// Index executes structured queries against the external search index.
type Index interface {
	// Search returns up to size hits starting at offset from, in the order
	// the index sorted them.
	Search(ctx context.Context, index string, q *Query, size, from int) ([]domain.Listing, error)

	// Ping checks that the index cluster is reachable.
	Ping(ctx context.Context) error
}
