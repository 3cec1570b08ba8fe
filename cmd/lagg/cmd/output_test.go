package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/donaldgifford/listing-aggregator/internal/api/client"
	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

func TestPrintListingsTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := printListingsTable(&buf, []domain.Listing{
		{
			ID:        11,
			SellerID:  3,
			Title:     "Refurbished 32GB DDR4 ECC registered server memory module",
			Price:     decimal.RequireFromString("45.5"),
			RankScore: decimal.RequireFromString("0.87"),
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "SELLER")
	assert.Contains(t, lines[1], "45.50")
	assert.Contains(t, lines[1], "0.87")
	assert.Contains(t, lines[1], "...")
}

func TestPrintReadiness(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := printReadiness(&buf, &apiclient.ReadinessResponse{
		Status: "ready",
		Checks: map[string]string{"search_index": "ok", "cache": "degraded", "database": "ok"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Less(t, strings.Index(out, "cache:"), strings.Index(out, "database:"))
	assert.Less(t, strings.Index(out, "database:"), strings.Index(out, "search_index:"))
	assert.Contains(t, out, "degraded")
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{name: "short string unchanged", in: "abc", maxLen: 10, want: "abc"},
		{name: "exact length unchanged", in: "abcdef", maxLen: 6, want: "abcdef"},
		{name: "long string truncated", in: "abcdefghij", maxLen: 6, want: "abc..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truncate(tt.in, tt.maxLen))
		})
	}
}
