package store

import (
	"fmt"
	"strings"

	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

// sqlOps maps predicate operators to their SQL comparison.
var sqlOps = map[domain.Op]string{
	domain.OpGTE: ">=",
	domain.OpLTE: "<=",
}

// sqlColumns maps predicate fields to listing columns.
var sqlColumns = map[string]string{
	"price": "price",
}

// ActiveSellersQuery selects the sellers with active listings in a category.
type ActiveSellersQuery struct {
	CategoryID int64
	Filters    domain.FilterSet
}

// ToSQL builds the seller lookup statement and its positional parameters.
// Price bounds come from FilterSet.Predicates, the same list the index query
// is built from.
func (q *ActiveSellersQuery) ToSQL() (string, []any, error) {
	conditions := []string{"category_id = $1", "status = $2"}
	args := []any{q.CategoryID, domain.StatusActive}
	paramIdx := 3

	for _, p := range q.Filters.Predicates() {
		col, ok := sqlColumns[p.Field]
		if !ok {
			return "", nil, fmt.Errorf("unsupported filter field %q", p.Field)
		}
		op, ok := sqlOps[p.Op]
		if !ok {
			return "", nil, fmt.Errorf("unsupported filter operator %q", p.Op)
		}
		conditions = append(conditions, fmt.Sprintf("%s %s $%d::numeric", col, op, paramIdx))
		args = append(args, p.Value.String())
		paramIdx++
	}

	sql := fmt.Sprintf(
		"%s WHERE %s ORDER BY seller_id",
		baseActiveSellersSelect, strings.Join(conditions, " AND "),
	)

	return sql, args, nil
}
