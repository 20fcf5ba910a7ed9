package reconciliation

import (
	"strings"

	"github.com/ledgerline/receivables/internal/domain/entity"
	"github.com/ledgerline/receivables/internal/domain/valueobject"
)

// MatchScorer scores (transaction, invoice) pairs by summing independent signals.
// Date eligibility is applied by the candidate query, not here.
type MatchScorer struct {
	criteria valueobject.MatchCriteria
}

// NewMatchScorer creates a MatchScorer for the given criteria.
func NewMatchScorer(criteria valueobject.MatchCriteria) *MatchScorer {
	return &MatchScorer{criteria: criteria.WithDefaults()}
}

// Score returns the additive match score for a pair.
func (s *MatchScorer) Score(txn *entity.BankTransaction, invoice *entity.Invoice) float64 {
	score := s.criteria.AmountScore(txn.Amount, invoice.Amount())

	if invoice.Number != "" && strings.Contains(txn.Description, invoice.Number) {
		score += valueobject.ReferenceWeight
	}

	return score
}

// Best returns the highest-scoring invoice. Exact ties keep the first seen.
// The returned bool is false when invoices is empty.
func (s *MatchScorer) Best(txn *entity.BankTransaction, invoices []*entity.Invoice) (*entity.Invoice, float64, bool) {
	var best *entity.Invoice
	bestScore := 0.0

	for _, invoice := range invoices {
		if score := s.Score(txn, invoice); best == nil || score > bestScore {
			best = invoice
			bestScore = score
		}
	}

	return best, bestScore, best != nil
}

// Accepts reports whether score strictly exceeds the acceptance threshold.
func (s *MatchScorer) Accepts(score float64) bool {
	return score > s.criteria.AcceptanceThreshold
}
