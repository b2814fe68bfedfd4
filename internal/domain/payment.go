package domain

import (
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// Rank ordena os status pela quantidade paga: pending/overdue < partial < paid
func (s PaymentStatus) Rank() int {
	switch s {
	case PaymentStatusPaid:
		return 2
	case PaymentStatusPartial:
		return 1
	default:
		return 0
	}
}

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodEWallet  PaymentMethod = "e-wallet"
	PaymentMethodCard     PaymentMethod = "card"
)

// Payment é um pagamento registrado para um cliente
type Payment struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Method      PaymentMethod   `json:"method,omitempty"`
	ProofImage  string          `json:"proofImage,omitempty"`
}

// SumPayments soma os valores de uma lista de pagamentos
func SumPayments(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}
