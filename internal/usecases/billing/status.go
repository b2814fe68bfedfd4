package billing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/pkg/utils"
)

var hundred = decimal.NewFromInt(100)

// DerivePaymentStatus é a única regra de status de pagamento do sistema:
//
//	paid    se pago >= total (inclusive total zero)
//	overdue se pago < total e o vencimento já passou
//	partial se 0 < pago < total
//	pending caso contrário
//
// Um vencimento zero significa "sem vencimento" e nunca gera overdue.
func DerivePaymentStatus(total, paid decimal.Decimal, due, now time.Time) domain.PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return domain.PaymentStatusPaid
	case utils.DatePassed(due, now):
		return domain.PaymentStatusOverdue
	case paid.IsPositive():
		return domain.PaymentStatusPartial
	default:
		return domain.PaymentStatusPending
	}
}

// parseDue converte uma data YYYY-MM-DD; datas vazias ou inválidas não vencem
func parseDue(value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	due, err := utils.ParseDate(value)
	if err != nil {
		return time.Time{}
	}
	return *due
}

// RefreshClient recalcula o total (soma dos eventos, quando existem), o status de cada
// evento e o status geral. Os pagamentos são alocados aos eventos por ordem de data.
func RefreshClient(client *domain.Client, now time.Time) {
	if len(client.Events) > 0 {
		total := decimal.Zero
		for _, event := range client.Events {
			total = total.Add(event.Amount)
		}
		client.TotalAmount = total
	}

	paid := client.PaidAmount()

	order := make([]int, len(client.Events))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return client.Events[order[a]].Date < client.Events[order[b]].Date
	})

	remaining := paid
	latest := ""
	for _, idx := range order {
		event := &client.Events[idx]

		allocated := decimal.Min(remaining, event.Amount)
		if allocated.IsNegative() {
			allocated = decimal.Zero
		}
		remaining = remaining.Sub(allocated)

		event.PaymentStatus = DerivePaymentStatus(event.Amount, allocated, parseDue(event.Date), now)

		if event.Date > latest {
			latest = event.Date
		}
	}

	client.PaymentStatus = DerivePaymentStatus(client.TotalAmount, paid, parseDue(latest), now)
}

func RefreshProject(project *domain.Project, now time.Time) {
	project.PaymentStatus = DerivePaymentStatus(project.Budget, project.Paid, parseDue(project.Date), now)
}

func RefreshBooking(booking *domain.Booking, now time.Time) {
	booking.PaymentStatus = DerivePaymentStatus(booking.Amount, booking.DownPayment, parseDue(booking.Date), now)
}

// RefreshInvoice recalcula os totais e o status da fatura.
// O desconto é um valor absoluto; o imposto incide sobre o subtotal já descontado.
func RefreshInvoice(invoice *domain.Invoice, now time.Time) {
	subtotal := decimal.Zero
	for _, item := range invoice.Items {
		subtotal = subtotal.Add(item.Total())
	}

	taxable := subtotal.Sub(invoice.Discount)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	tax := taxable.Mul(invoice.TaxRate).Div(hundred).Round(2)

	invoice.Subtotal = subtotal.Round(2)
	invoice.Tax = tax
	invoice.GrandTotal = taxable.Add(tax).Round(2)
	invoice.PaymentStatus = DerivePaymentStatus(invoice.GrandTotal, invoice.AmountPaid, parseDue(invoice.DueDate), now)

	switch {
	case invoice.PaymentStatus == domain.PaymentStatusPaid:
		invoice.Status = domain.InvoiceStatusPaid
	case invoice.PaymentStatus == domain.PaymentStatusOverdue && invoice.Status != domain.InvoiceStatusDraft:
		invoice.Status = domain.InvoiceStatusOverdue
	case invoice.Status == domain.InvoiceStatusPaid || invoice.Status == domain.InvoiceStatusOverdue:
		invoice.Status = domain.InvoiceStatusSent
	}
}
