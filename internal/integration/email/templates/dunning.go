package templates

import "fmt"

// Template names shared with the email queue.
const (
	DunningReminder  = "dunning_reminder"
	InvoiceEscalated = "invoice_escalated"
)

// Notification reasons carried in DunningData.Reason.
const (
	reasonPaymentFailed = "payment_failed"
	reasonEscalated     = "escalated"
)

// DunningData contains data for the dunning reminder and escalation templates.
type DunningData struct {
	ClientName    string
	InvoiceNumber string
	Amount        string
	DaysOverdue   string
	Reason        string
	InvoiceURL    string
}

// PaymentFailed reports whether the reminder follows a declined retry.
func (d DunningData) PaymentFailed() bool {
	return d.Reason == reasonPaymentFailed
}

// Map flattens the data into the queue's template_data column.
func (d DunningData) Map() map[string]interface{} {
	return map[string]interface{}{
		"client_name":    d.ClientName,
		"invoice_number": d.InvoiceNumber,
		"amount":         d.Amount,
		"days_overdue":   d.DaysOverdue,
		"reason":         d.Reason,
		"invoice_url":    d.InvoiceURL,
	}
}

// DunningDataFromMap reads queued template data. Missing or non-string
// values are left empty.
func DunningDataFromMap(data map[string]interface{}) DunningData {
	return DunningData{
		ClientName:    stringValue(data, "client_name"),
		InvoiceNumber: stringValue(data, "invoice_number"),
		Amount:        stringValue(data, "amount"),
		DaysOverdue:   stringValue(data, "days_overdue"),
		Reason:        stringValue(data, "reason"),
		InvoiceURL:    stringValue(data, "invoice_url"),
	}
}

// Subject returns the subject line for a dunning template and reason.
func Subject(templateName string, d DunningData) string {
	switch {
	case templateName == InvoiceEscalated || d.Reason == reasonEscalated:
		return fmt.Sprintf("Invoice %s is %s days overdue", d.InvoiceNumber, d.DaysOverdue)
	case d.PaymentFailed():
		return fmt.Sprintf("Payment failed for invoice %s", d.InvoiceNumber)
	default:
		return fmt.Sprintf("Payment due for invoice %s", d.InvoiceNumber)
	}
}

// IsDunningTemplate reports whether templateName is rendered from DunningData.
func IsDunningTemplate(templateName string) bool {
	return templateName == DunningReminder || templateName == InvoiceEscalated
}

func stringValue(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}
