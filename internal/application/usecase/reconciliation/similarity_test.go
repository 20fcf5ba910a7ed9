package reconciliation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{"identical", "Payment INV-1001", "Payment INV-1001", 1},
		{"both empty", "", "", 1},
		{"case insensitive", "ACME Corp", "acme corp", 1},
		{"disjoint equal length", "abcd", "wxyz", 0},
		{"one empty", "abc", "", 0},
		{"single deletion", "Invoice payment", "Invoice paymnt", 14.0 / 15.0},
		{"kitten sitting", "kitten", "sitting", 4.0 / 7.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"Stripe payout", "Stripe payouts"},
		{"Wire 4471", "wire 4417"},
		{"ç", "c"},
	}

	for _, p := range pairs {
		assert.InDelta(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), 1e-9, "%q vs %q", p[0], p[1])
	}
}

func TestSimilarity_SelfIsOne(t *testing.T) {
	for _, s := range []string{"", "a", "Payment INV-1001", "日本語の説明"} {
		assert.Equal(t, 1.0, Similarity(s, s))
	}
}
