package roundrobin_test

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/listing-aggregator/pkg/roundrobin"
	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

func listing(id, seller int64) domain.Listing {
	return domain.Listing{
		ID:        id,
		SellerID:  seller,
		Title:     "listing",
		Price:     decimal.NewFromInt(id),
		RankScore: decimal.NewFromInt(100 - id),
	}
}

func ids(listings []domain.Listing) []int64 {
	out := make([]int64, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hits     []domain.Listing
		pageSize int
		want     []int64
	}{
		{
			name: "interleaves and truncates mid-round",
			hits: []domain.Listing{
				listing(1, 1), listing(2, 1),
				listing(3, 2),
				listing(4, 3), listing(5, 3), listing(6, 3),
			},
			pageSize: 5,
			want:     []int64{1, 3, 4, 2, 5},
		},
		{
			name:     "single seller yields every hit in index order",
			hits:     []domain.Listing{listing(9, 4), listing(3, 4), listing(7, 4)},
			pageSize: 20,
			want:     []int64{9, 3, 7},
		},
		{
			name:     "no hits",
			hits:     nil,
			pageSize: 20,
			want:     []int64{},
		},
		{
			name:     "zero page size",
			hits:     []domain.Listing{listing(1, 1)},
			pageSize: 0,
			want:     []int64{},
		},
		{
			name: "sellers iterate ascending regardless of arrival order",
			hits: []domain.Listing{
				listing(10, 30), listing(11, 30),
				listing(20, 5),
				listing(30, 12), listing(31, 12),
			},
			pageSize: 20,
			want:     []int64{20, 30, 10, 31, 11},
		},
		{
			name: "page size cuts later sellers of the round",
			hits: []domain.Listing{
				listing(1, 1), listing(2, 2), listing(3, 3),
			},
			pageSize: 2,
			want:     []int64{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := roundrobin.Merge(tt.hits, tt.pageSize)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestGroup(t *testing.T) {
	t.Parallel()

	g := roundrobin.Group([]domain.Listing{
		listing(1, 8), listing(2, 3), listing(3, 8), listing(4, 1),
	})

	assert.Equal(t, []int64{1, 3, 8}, g.Sellers)
	assert.Equal(t, []int64{1, 3}, ids(g.BySeller[8]))
	assert.Equal(t, 2, g.MaxDepth())
	assert.Equal(t, 0, roundrobin.Group(nil).MaxDepth())
}

// randomHits builds hits clustered by seller, the way the index returns them.
func randomHits(r *rand.Rand) []domain.Listing {
	var hits []domain.Listing
	var id int64
	sellers := 1 + r.IntN(8)
	for s := range sellers {
		for range r.IntN(6) {
			id++
			hits = append(hits, listing(id, int64(s*10+r.IntN(3))))
		}
	}
	return hits
}

func TestMerge_Properties(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))

	for i := range 500 {
		hits := randomHits(r)
		pageSize := 1 + r.IntN(25)

		got := roundrobin.Merge(hits, pageSize)

		// Truncation.
		require.Len(t, got, min(pageSize, len(hits)), "case %d", i)

		// Determinism, independent of the order groups arrive in.
		shuffled := shuffleGroups(r, hits)
		assert.Equal(t, ids(got), ids(roundrobin.Merge(shuffled, pageSize)), "case %d", i)

		// Each seller's listings keep their relative order.
		g := roundrobin.Group(hits)
		pos := make(map[int64]int)
		for _, l := range got {
			want := g.BySeller[l.SellerID][pos[l.SellerID]]
			assert.Equal(t, want.ID, l.ID, "case %d", i)
			pos[l.SellerID]++
		}

		// First appearances follow ascending seller ID.
		var firsts []int64
		seen := make(map[int64]bool)
		for _, l := range got {
			if !seen[l.SellerID] {
				seen[l.SellerID] = true
				firsts = append(firsts, l.SellerID)
			}
		}
		for j := 1; j < len(firsts); j++ {
			assert.Less(t, firsts[j-1], firsts[j], "case %d", i)
		}

		// Fairness: between two appearances of a seller, every seller that
		// still had a hit for that round appears once.
		assertFair(t, g, got)
	}
}

func assertFair(t *testing.T, g roundrobin.Groups, got []domain.Listing) {
	t.Helper()

	round := make(map[int64]int)
	for i, l := range got {
		r := round[l.SellerID]
		round[l.SellerID]++
		for _, other := range g.Sellers {
			switch {
			case other < l.SellerID && len(g.BySeller[other]) > r:
				// A lower seller with a hit in round r is already past it.
				assert.Greater(t, countBefore(got[:i], other), r)
			case other > l.SellerID && r > 0 && len(g.BySeller[other]) >= r:
				// A higher seller finished round r-1 before this one started round r.
				assert.GreaterOrEqual(t, countBefore(got[:i], other), r)
			}
		}
	}
}

func countBefore(prefix []domain.Listing, seller int64) int {
	n := 0
	for _, l := range prefix {
		if l.SellerID == seller {
			n++
		}
	}
	return n
}

// shuffleGroups reorders whole seller groups while keeping each group's
// internal order.
func shuffleGroups(r *rand.Rand, hits []domain.Listing) []domain.Listing {
	g := roundrobin.Group(hits)
	sellers := append([]int64(nil), g.Sellers...)
	r.Shuffle(len(sellers), func(i, j int) { sellers[i], sellers[j] = sellers[j], sellers[i] })

	out := make([]domain.Listing, 0, len(hits))
	for _, s := range sellers {
		out = append(out, g.BySeller[s]...)
	}
	return out
}
