package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestActiveSellersQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         ActiveSellersQuery
		wantSQL       string
		wantArgs      []any
		wantSQLNotHas []string
	}{
		{
			name:  "category only",
			query: ActiveSellersQuery{CategoryID: 7},
			wantSQL: "SELECT DISTINCT seller_id FROM listings" +
				" WHERE category_id = $1 AND status = $2 ORDER BY seller_id",
			wantArgs:      []any{int64(7), "active"},
			wantSQLNotHas: []string{"price"},
		},
		{
			name: "min price",
			query: ActiveSellersQuery{
				CategoryID: 3,
				Filters:    domain.FilterSet{PriceMin: dec("10.00")},
			},
			wantSQL: "SELECT DISTINCT seller_id FROM listings" +
				" WHERE category_id = $1 AND status = $2 AND price >= $3::numeric ORDER BY seller_id",
			wantArgs: []any{int64(3), "active", "10"},
		},
		{
			name: "max price",
			query: ActiveSellersQuery{
				CategoryID: 3,
				Filters:    domain.FilterSet{PriceMax: dec("99.95")},
			},
			wantSQL: "SELECT DISTINCT seller_id FROM listings" +
				" WHERE category_id = $1 AND status = $2 AND price <= $3::numeric ORDER BY seller_id",
			wantArgs: []any{int64(3), "active", "99.95"},
		},
		{
			name: "both bounds numbered in order",
			query: ActiveSellersQuery{
				CategoryID: 1,
				Filters:    domain.FilterSet{PriceMax: dec("50"), PriceMin: dec("5.5")},
			},
			wantSQL: "SELECT DISTINCT seller_id FROM listings" +
				" WHERE category_id = $1 AND status = $2" +
				" AND price >= $3::numeric AND price <= $4::numeric ORDER BY seller_id",
			wantArgs: []any{int64(1), "active", "5.5", "50"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sql, args, err := tt.query.ToSQL()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
			for _, s := range tt.wantSQLNotHas {
				assert.NotContains(t, sql, s)
			}
		})
	}
}

func TestMigrationVersions(t *testing.T) {
	t.Parallel()

	versions, err := migrationVersions()
	require.NoError(t, err)
	require.NotEmpty(t, versions)
	assert.Equal(t, "001_create_listings.sql", versions[0])
	assert.IsIncreasing(t, versions)
}
