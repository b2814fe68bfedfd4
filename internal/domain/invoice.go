package domain

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

type LineItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitAmount  decimal.Decimal `json:"unitAmount"`
}

func (l LineItem) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Description, validation.Required),
		validation.Field(&l.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&l.UnitAmount, nonNegative),
	)
}

// Total devolve quantidade * valor unitário
func (l LineItem) Total() decimal.Decimal {
	return l.UnitAmount.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type BankDetails struct {
	BankName      string `json:"bankName,omitempty"`
	AccountName   string `json:"accountName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
}

type Invoice struct {
	Meta
	Number        string          `json:"number"`
	ClientID      string          `json:"clientId,omitempty"`
	ClientName    string          `json:"clientName"`
	Items         []LineItem      `json:"items"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	Discount      decimal.Decimal `json:"discount"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	IssueDate     string          `json:"issueDate,omitempty"`
	DueDate       string          `json:"dueDate,omitempty"`
	Status        InvoiceStatus   `json:"status"`
	PaymentStatus PaymentStatus   `json:"paymentStatus,omitempty"`
	Bank          BankDetails     `json:"bank"`
	Notes         string          `json:"notes,omitempty"`
}

func (i *Invoice) Kind() Kind { return KindInvoices }

func (i *Invoice) Normalize() {
	if i.Status == "" {
		i.Status = InvoiceStatusDraft
	}
	i.Items = orEmpty(i.Items)
}

func (i *Invoice) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Number, validation.Required),
		validation.Field(&i.ClientName, validation.Required),
		validation.Field(&i.Items, validation.Required),
		validation.Field(&i.TaxRate, nonNegative),
		validation.Field(&i.Discount, nonNegative),
		validation.Field(&i.AmountPaid, nonNegative),
		validation.Field(&i.IssueDate, dateOnly),
		validation.Field(&i.DueDate, dateOnly),
		validation.Field(&i.Status, validation.In(InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue)),
	)
}

func (i *Invoice) UniqueKey() string { return i.Number }

func (i *Invoice) Header() []string {
	return []string{"id", "number", "clientName", "issueDate", "dueDate", "subtotal", "tax", "discount", "grandTotal", "amountPaid", "status"}
}

func (i *Invoice) Row() []string {
	return []string{
		i.ID,
		i.Number,
		i.ClientName,
		i.IssueDate,
		i.DueDate,
		i.Subtotal.String(),
		i.Tax.String(),
		i.Discount.String(),
		i.GrandTotal.String(),
		i.AmountPaid.String(),
		string(i.Status),
	}
}
