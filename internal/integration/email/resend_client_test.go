package email

import (
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/receivables/internal/application/adapter"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
)

func TestClassifyResendError(t *testing.T) {
	input := adapter.SendEmailInput{To: "ap@acme.test", Subject: "Payment failed for invoice INV-1"}

	tests := []struct {
		name     string
		err      error
		code     domainerror.EmailErrorCode
		sentinel error
	}{
		{name: "validation", err: errors.New("422 validation_error: invalid to"), code: domainerror.ErrCodePermanentEmailFailure, sentinel: domainerror.ErrPermanentEmailFailure},
		{name: "bad key", err: errors.New("401 unauthorized"), code: domainerror.ErrCodePermanentEmailFailure, sentinel: domainerror.ErrPermanentEmailFailure},
		{name: "rate limited", err: errors.New("429 too many requests"), code: domainerror.ErrCodeTemporaryEmailFailure, sentinel: domainerror.ErrTemporaryEmailFailure},
		{name: "outage", err: errors.New("502 bad gateway"), code: domainerror.ErrCodeTemporaryEmailFailure, sentinel: domainerror.ErrTemporaryEmailFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyResendError(input, tt.err)

			assert.Equal(t, tt.code, got.Code)
			assert.ErrorIs(t, got, tt.sentinel)
			assert.ErrorIs(t, got, tt.err)
			assert.Contains(t, got.Error(), "ap@acme.test")
		})
	}
}

func TestToResendTags_SortedByName(t *testing.T) {
	tags := toResendTags(map[string]string{"template": "dunning_reminder", "reason": "payment_failed", "invoice": "INV-1"})

	assert.Equal(t, []resend.Tag{
		{Name: "invoice", Value: "INV-1"},
		{Name: "reason", Value: "payment_failed"},
		{Name: "template", Value: "dunning_reminder"},
	}, tags)
	assert.Nil(t, toResendTags(nil))
}
