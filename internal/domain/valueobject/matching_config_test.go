package valueobject

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMatchCriteria_AmountScore(t *testing.T) {
	criteria := DefaultMatchCriteria()

	tests := []struct {
		name     string
		txn      string
		invoice  string
		expected float64
	}{
		{name: "exact amount", txn: "500.00", invoice: "500.00", expected: AmountExactWeight},
		{name: "within tolerance", txn: "500.01", invoice: "500.00", expected: AmountExactWeight},
		{name: "within double tolerance", txn: "499.98", invoice: "500.00", expected: AmountCloseWeight},
		{name: "outside double tolerance", txn: "499.97", invoice: "500.00", expected: 0},
		{name: "far apart", txn: "12.00", invoice: "500.00", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := criteria.AmountScore(decimal.RequireFromString(tt.txn), decimal.RequireFromString(tt.invoice))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMatchCriteria_DateWindow(t *testing.T) {
	criteria := DefaultMatchCriteria()
	txnDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	window := criteria.DateWindow(txnDate)

	assert.Equal(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), window.End)
	assert.True(t, window.Contains(window.Start))
	assert.True(t, window.Contains(window.End))
	assert.False(t, window.Contains(window.End.Add(time.Second)))
}

func TestMatchCriteria_WithDefaults(t *testing.T) {
	got := MatchCriteria{DateWindowDays: 5}.WithDefaults()

	assert.Equal(t, 5, got.DateWindowDays)
	assert.Equal(t, 0.5, got.AcceptanceThreshold)
	assert.True(t, got.AmountTolerance.Equal(decimal.NewFromFloat(0.01)))
}

func TestAgingBuckets(t *testing.T) {
	buckets := NewAgingBuckets()

	assert.Len(t, buckets, 4)
	assert.True(t, buckets[0].Contains(0))
	assert.True(t, buckets[0].Contains(30))
	assert.False(t, buckets[0].Contains(31))
	assert.True(t, buckets[1].Contains(31))
	assert.True(t, buckets[1].Contains(60))
	assert.True(t, buckets[2].Contains(61))
	assert.True(t, buckets[2].Contains(90))
	assert.False(t, buckets[2].Contains(91))
	assert.True(t, buckets[3].Contains(91))
	assert.True(t, buckets[3].Contains(10000))

	buckets[1].Add(10000)
	assert.Equal(t, 1, buckets[1].InvoiceCount)
	assert.Equal(t, int64(10000), buckets[1].TotalAmount)
}

func TestDunningConfig_WithDefaults(t *testing.T) {
	got := DunningConfig{EscalationThresholdDays: 30}.WithDefaults()

	assert.Equal(t, 30, got.EscalationThresholdDays)
	assert.Equal(t, []int{1, 3, 7}, got.RetryIntervalDays)
	assert.Equal(t, 3, got.MaxRetries)
	assert.Equal(t, 0, got.RetryToleranceDays)
}
