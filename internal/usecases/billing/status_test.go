package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mua-studio-api/internal/domain"
)

var today = time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestDerivePaymentStatus(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		paid     int64
		due      time.Time
		expected domain.PaymentStatus
	}{
		{name: "Nada pago, sem vencimento", total: 1000, paid: 0, expected: domain.PaymentStatusPending},
		{name: "Nada pago, vencimento futuro", total: 1000, paid: 0, due: day("2024-07-01"), expected: domain.PaymentStatusPending},
		{name: "Nada pago, vencimento hoje ainda não é atraso", total: 1000, paid: 0, due: day("2024-06-15"), expected: domain.PaymentStatusPending},
		{name: "Nada pago, vencimento passado", total: 1000, paid: 0, due: day("2024-06-14"), expected: domain.PaymentStatusOverdue},
		{name: "Pago parcialmente, vencimento futuro", total: 1000, paid: 400, due: day("2024-07-01"), expected: domain.PaymentStatusPartial},
		{name: "Pago parcialmente, vencimento passado", total: 1000, paid: 400, due: day("2024-06-01"), expected: domain.PaymentStatusOverdue},
		{name: "Pago integralmente", total: 1000, paid: 1000, due: day("2024-06-01"), expected: domain.PaymentStatusPaid},
		{name: "Pagamento acima do total", total: 1000, paid: 1100, expected: domain.PaymentStatusPaid},
		{name: "Total zero", total: 0, paid: 0, due: day("2024-01-01"), expected: domain.PaymentStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DerivePaymentStatus(decimal.NewFromInt(tt.total), decimal.NewFromInt(tt.paid), tt.due, today)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDerivePaymentStatus_Monotonic(t *testing.T) {
	total := decimal.NewFromInt(2500000)
	step := decimal.NewFromInt(125000)

	for _, due := range []time.Time{{}, day("2024-07-01"), day("2024-06-01")} {
		previous := -1
		for paid := decimal.Zero; paid.LessThanOrEqual(total); paid = paid.Add(step) {
			status := DerivePaymentStatus(total, paid, due, today)
			assert.GreaterOrEqual(t, status.Rank(), previous, "status regrediu com pago=%s vencimento=%s", paid, due)
			previous = status.Rank()
		}
		assert.Equal(t, domain.PaymentStatusPaid.Rank(), previous)
	}
}

func TestRefreshClient(t *testing.T) {
	client := &domain.Client{
		Name:        "Siti",
		TotalAmount: decimal.NewFromInt(1),
		Events: []domain.Event{
			{Type: "Reception", Date: "2024-07-10", Amount: decimal.NewFromInt(1000000)},
			{Type: "Akad", Date: "2024-06-01", Amount: decimal.NewFromInt(1500000)},
		},
		Payments: []domain.Payment{
			{Date: "2024-05-01", Amount: decimal.NewFromInt(1500000)},
			{Date: "2024-06-10", Amount: decimal.NewFromInt(200000)},
		},
	}

	RefreshClient(client, today)

	assert.True(t, decimal.NewFromInt(2500000).Equal(client.TotalAmount), "total é a soma dos eventos")
	// pagamentos cobrem primeiro o evento mais antigo
	assert.Equal(t, domain.PaymentStatusPaid, client.Events[1].PaymentStatus)
	assert.Equal(t, domain.PaymentStatusPartial, client.Events[0].PaymentStatus)
	assert.Equal(t, domain.PaymentStatusPartial, client.PaymentStatus)
	assert.Equal(t, "Reception", client.Events[0].Type, "a ordem dos eventos é preservada")
}

func TestRefreshClient_WithoutEvents(t *testing.T) {
	client := &domain.Client{Name: "Siti", TotalAmount: decimal.NewFromInt(2500000)}

	RefreshClient(client, today)
	assert.Equal(t, domain.PaymentStatusPending, client.PaymentStatus)
	assert.True(t, decimal.NewFromInt(2500000).Equal(client.TotalAmount))

	client.Payments = append(client.Payments, domain.Payment{Date: "2024-06-01", Amount: decimal.NewFromInt(1500000)})
	RefreshClient(client, today)
	assert.Equal(t, domain.PaymentStatusPartial, client.PaymentStatus)
}

func TestRefreshInvoice(t *testing.T) {
	tests := []struct {
		name           string
		invoice        domain.Invoice
		expectedTotal  string
		expectedTax    string
		expectedStatus domain.InvoiceStatus
		expectedPay    domain.PaymentStatus
	}{
		{
			name: "Rascunho vencido continua rascunho",
			invoice: domain.Invoice{
				Items:   []domain.LineItem{{Description: "Bridal makeup", Quantity: 1, UnitAmount: decimal.NewFromInt(1000)}},
				TaxRate: decimal.NewFromInt(10),
				DueDate: "2024-06-01",
				Status:  domain.InvoiceStatusDraft,
			},
			expectedTotal:  "1100",
			expectedTax:    "100",
			expectedStatus: domain.InvoiceStatusDraft,
			expectedPay:    domain.PaymentStatusOverdue,
		},
		{
			name: "Enviada e vencida vira overdue",
			invoice: domain.Invoice{
				Items:    []domain.LineItem{{Description: "Trial", Quantity: 2, UnitAmount: decimal.NewFromInt(250)}},
				Discount: decimal.NewFromInt(100),
				DueDate:  "2024-06-01",
				Status:   domain.InvoiceStatusSent,
			},
			expectedTotal:  "400",
			expectedTax:    "0",
			expectedStatus: domain.InvoiceStatusOverdue,
			expectedPay:    domain.PaymentStatusOverdue,
		},
		{
			name: "Quitada vira paid",
			invoice: domain.Invoice{
				Items:      []domain.LineItem{{Description: "Trial", Quantity: 1, UnitAmount: decimal.NewFromInt(500)}},
				AmountPaid: decimal.NewFromInt(500),
				DueDate:    "2024-06-01",
				Status:     domain.InvoiceStatusSent,
			},
			expectedTotal:  "500",
			expectedTax:    "0",
			expectedStatus: domain.InvoiceStatusPaid,
			expectedPay:    domain.PaymentStatusPaid,
		},
		{
			name: "Desconto maior que o subtotal zera o total",
			invoice: domain.Invoice{
				Items:    []domain.LineItem{{Description: "Trial", Quantity: 1, UnitAmount: decimal.NewFromInt(100)}},
				Discount: decimal.NewFromInt(150),
				TaxRate:  decimal.NewFromInt(11),
				Status:   domain.InvoiceStatusSent,
			},
			expectedTotal:  "0",
			expectedTax:    "0",
			expectedStatus: domain.InvoiceStatusPaid,
			expectedPay:    domain.PaymentStatusPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoice := tt.invoice
			RefreshInvoice(&invoice, today)

			require.True(t, decimal.RequireFromString(tt.expectedTotal).Equal(invoice.GrandTotal), "total %s", invoice.GrandTotal)
			assert.True(t, decimal.RequireFromString(tt.expectedTax).Equal(invoice.Tax), "imposto %s", invoice.Tax)
			assert.Equal(t, tt.expectedStatus, invoice.Status)
			assert.Equal(t, tt.expectedPay, invoice.PaymentStatus)
		})
	}
}

func TestRefreshProjectAndBooking(t *testing.T) {
	project := &domain.Project{Budget: decimal.NewFromInt(3000), Paid: decimal.NewFromInt(1000), Date: "2024-08-01"}
	RefreshProject(project, today)
	assert.Equal(t, domain.PaymentStatusPartial, project.PaymentStatus)

	booking := &domain.Booking{Amount: decimal.NewFromInt(800), Date: "2024-06-01"}
	RefreshBooking(booking, today)
	assert.Equal(t, domain.PaymentStatusOverdue, booking.PaymentStatus)
}
