package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	tests := []struct {
		name     string
		template string
		reason   string
		want     string
	}{
		{name: "declined retry", template: DunningReminder, reason: "payment_failed", want: "Payment failed for invoice INV-9"},
		{name: "no payment method", template: DunningReminder, reason: "no_payment_method", want: "Payment due for invoice INV-9"},
		{name: "escalation", template: InvoiceEscalated, reason: "escalated", want: "Invoice INV-9 is 15 days overdue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := DunningData{InvoiceNumber: "INV-9", DaysOverdue: "15", Reason: tt.reason}
			assert.Equal(t, tt.want, Subject(tt.template, data))
		})
	}
}

func TestDunningData_MapRoundTrip(t *testing.T) {
	data := DunningData{
		ClientName:    "Acme",
		InvoiceNumber: "INV-9",
		Amount:        "12.00 USD",
		DaysOverdue:   "3",
		Reason:        "payment_failed",
		InvoiceURL:    "https://billing.test/invoices/9",
	}

	assert.Equal(t, data, DunningDataFromMap(data.Map()))
	assert.Equal(t, DunningData{InvoiceNumber: "INV-9"}, DunningDataFromMap(map[string]interface{}{
		"invoice_number": "INV-9",
		"days_overdue":   3,
	}))
}
