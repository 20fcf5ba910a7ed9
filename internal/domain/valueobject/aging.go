// Package valueobject contains domain value objects for the receivables system.
package valueobject

// AgingBucket groups unpaid invoices by age for reporting.
type AgingBucket struct {
	Name         string
	MinDays      int
	MaxDays      int // Ignored when OpenEnded is true
	OpenEnded    bool
	InvoiceCount int
	TotalAmount  int64 // Minor units
}

// NewAgingBuckets returns the fixed, empty reporting buckets.
func NewAgingBuckets() []AgingBucket {
	return []AgingBucket{
		{Name: "Current", MinDays: 0, MaxDays: 30},
		{Name: "31-60 Days", MinDays: 31, MaxDays: 60},
		{Name: "61-90 Days", MinDays: 61, MaxDays: 90},
		{Name: "90+ Days", MinDays: 91, OpenEnded: true},
	}
}

// Contains reports whether an age in days falls inside the bucket bounds.
func (b AgingBucket) Contains(days int) bool {
	if days < b.MinDays {
		return false
	}
	return b.OpenEnded || days <= b.MaxDays
}

// Add accumulates one invoice into the bucket.
func (b *AgingBucket) Add(amountMinorUnits int64) {
	b.InvoiceCount++
	b.TotalAmount += amountMinorUnits
}
