package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFilterSet_Predicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filters FilterSet
		want    []Predicate
	}{
		{
			name:    "no bounds",
			filters: FilterSet{},
			want:    nil,
		},
		{
			name:    "min only",
			filters: FilterSet{PriceMin: dec("10")},
			want: []Predicate{
				{Field: "price", Op: OpGTE, Value: decimal.RequireFromString("10")},
			},
		},
		{
			name:    "max only",
			filters: FilterSet{PriceMax: dec("99.99")},
			want: []Predicate{
				{Field: "price", Op: OpLTE, Value: decimal.RequireFromString("99.99")},
			},
		},
		{
			name:    "both bounds lower first",
			filters: FilterSet{PriceMax: dec("50"), PriceMin: dec("5")},
			want: []Predicate{
				{Field: "price", Op: OpGTE, Value: decimal.RequireFromString("5")},
				{Field: "price", Op: OpLTE, Value: decimal.RequireFromString("50")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.filters.Predicates()
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].Field, got[i].Field)
				assert.Equal(t, tt.want[i].Op, got[i].Op)
				assert.True(t, tt.want[i].Value.Equal(got[i].Value))
			}
		})
	}
}

func TestFilterSet_Canonical(t *testing.T) {
	t.Parallel()

	a := FilterSet{}
	a.PriceMax = dec("100.00")
	a.PriceMin = dec("10.50")

	b := FilterSet{PriceMin: dec("10.5"), PriceMax: dec("100")}

	assert.Equal(t, a.Canonical(), b.Canonical())
	assert.JSONEq(t, `{"price_min":"10.5","price_max":"100"}`, a.Canonical())
	assert.Equal(t, "{}", FilterSet{}.Canonical())
	assert.NotEqual(t,
		FilterSet{PriceMin: dec("10")}.Canonical(),
		FilterSet{PriceMax: dec("10")}.Canonical(),
	)
}

func TestPageRequest_Offset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, PageRequest{Page: 1}.Offset())
	assert.Equal(t, PageSize, PageRequest{Page: 2}.Offset())
	assert.Equal(t, 4*PageSize, PageRequest{Page: 5}.Offset())
	assert.Equal(t, 0, PageRequest{Page: 0}.Offset())
	assert.Equal(t, MaxResultWindow-PageSize, PageRequest{Page: MaxPage}.Offset())
}

func TestIsSortField(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSortField("rank_score"))
	assert.True(t, IsSortField("price"))
	assert.True(t, IsSortField("id"))
	assert.False(t, IsSortField("seller_id"))
	assert.False(t, IsSortField(""))
}

func TestListing_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	in := []Listing{{
		ID:        42,
		SellerID:  7,
		Title:     "Gold 1000",
		Price:     decimal.RequireFromString("12.340"),
		RankScore: decimal.RequireFromString("0.875"),
	}}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out []Listing
	require.NoError(t, json.Unmarshal(data, &out))

	again, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
	assert.True(t, in[0].Price.Equal(out[0].Price))
}

func TestListing_DecodesNumericSource(t *testing.T) {
	t.Parallel()

	var l Listing
	err := json.Unmarshal(
		[]byte(`{"id":1,"seller_id":2,"title":"x","price":19.99,"rank_score":3.5}`),
		&l,
	)
	require.NoError(t, err)
	assert.Equal(t, "19.99", l.Price.String())
	assert.Equal(t, "3.5", l.RankScore.String())
}
