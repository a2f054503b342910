package aggregation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRate(t *testing.T) {
	tests := []struct {
		name  string
		part  int
		total int
		want  string
	}{
		{name: "one third", part: 1, total: 3, want: "0.3333"},
		{name: "two thirds rounds up", part: 2, total: 3, want: "0.6667"},
		{name: "all", part: 4, total: 4, want: "1"},
		{name: "none", part: 0, total: 7, want: "0"},
		{name: "zero total", part: 3, total: 0, want: "0"},
		{name: "negative total", part: 3, total: -1, want: "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Rate(tc.part, tc.total).String())
		})
	}
}

func TestTotalQty(t *testing.T) {
	require.Equal(t, 0, TotalQty(nil))
	require.Equal(t, 6, TotalQty([]DataPoint{{Qty: 1}, {Qty: 0}, {Qty: 5}}))
}
