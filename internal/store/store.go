// Package store defines the relational datastore abstraction for
// listing-aggregator. The aggregator depends on the Store interface, never on
// a concrete implementation, so it can be tested against mocks.
package store

import (
	"context"

	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

// SellerDirectory resolves which sellers currently have active,
// filter-matching inventory in a category.
type SellerDirectory interface {
	// ActiveSellers returns the distinct seller IDs, ascending, with at least
	// one active listing in the category that satisfies the filters. No
	// qualifying seller yields an empty slice and a nil error.
	ActiveSellers(ctx context.Context, categoryID int64, filters domain.FilterSet) ([]int64, error)
}

// Store is the read-only relational store used by the aggregator.
type Store interface {
	SellerDirectory

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
