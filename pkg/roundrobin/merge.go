// Package roundrobin interleaves search hits across sellers so that no seller
// appears twice before every other seller with remaining hits has appeared
// once.
//
// Hits arrive sorted by seller and then by the requested ranking, so each
// seller's group is already in rank order and Merge only interleaves. Seller
// iteration order is numeric ascending seller ID, which makes the output a
// pure function of the hit set.
package roundrobin

import (
	"slices"

	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

// Groups maps a seller ID to that seller's hits in arrival order, plus the
// seller IDs in ascending order.
type Groups struct {
	BySeller map[int64][]domain.Listing
	Sellers  []int64
}

// Group splits hits by seller, preserving each seller's hit order.
func Group(hits []domain.Listing) Groups {
	g := Groups{BySeller: make(map[int64][]domain.Listing)}
	for _, h := range hits {
		if _, seen := g.BySeller[h.SellerID]; !seen {
			g.Sellers = append(g.Sellers, h.SellerID)
		}
		g.BySeller[h.SellerID] = append(g.BySeller[h.SellerID], h)
	}
	slices.Sort(g.Sellers)
	return g
}

// MaxDepth returns the size of the largest seller group.
func (g Groups) MaxDepth() int {
	depth := 0
	for _, listings := range g.BySeller {
		depth = max(depth, len(listings))
	}
	return depth
}

// Merge returns at most pageSize listings taken one per seller per round.
// Truncation may happen mid-round; sellers not reached in that round are
// dropped, not carried over.
func Merge(hits []domain.Listing, pageSize int) []domain.Listing {
	if len(hits) == 0 || pageSize <= 0 {
		return []domain.Listing{}
	}

	g := Group(hits)
	out := make([]domain.Listing, 0, min(pageSize, len(hits)))

	for round := range g.MaxDepth() {
		for _, seller := range g.Sellers {
			listings := g.BySeller[seller]
			if round >= len(listings) {
				continue
			}
			out = append(out, listings[round])
			if len(out) >= pageSize {
				return out
			}
		}
	}

	return out
}
