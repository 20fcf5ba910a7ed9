// Package reconciliation contains bank transaction to invoice matching use cases.
package reconciliation

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Similarity returns a case-insensitive score in [0, 1] computed as
// (len(longer) - editDistance) / len(longer). Two empty strings score 1.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1
	}

	longer := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longer {
		longer = n
	}
	if longer == 0 {
		return 1
	}

	distance := levenshtein.ComputeDistance(a, b)
	return float64(longer-distance) / float64(longer)
}
