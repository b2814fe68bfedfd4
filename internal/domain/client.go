package domain

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// Event é um serviço agendado para um cliente (casamento, formatura, ensaio...)
type Event struct {
	Type          string          `json:"type"`
	Date          string          `json:"date"`
	Time          string          `json:"time,omitempty"`
	Venue         string          `json:"venue,omitempty"`
	Package       string          `json:"package,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus PaymentStatus   `json:"paymentStatus,omitempty"`
}

func (e Event) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Type, validation.Required),
		validation.Field(&e.Date, validation.Required, dateOnly),
		validation.Field(&e.Amount, nonNegative),
	)
}

func (p Payment) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Date, validation.Required, dateOnly),
		validation.Field(&p.Amount, positive),
		validation.Field(&p.Method, validation.In(PaymentMethodCash, PaymentMethodTransfer, PaymentMethodEWallet, PaymentMethodCard)),
	)
}

type Client struct {
	Meta
	Name          string          `json:"name"`
	Phone         string          `json:"phone,omitempty"`
	Email         string          `json:"email,omitempty"`
	Location      string          `json:"location,omitempty"`
	ProfileImage  string          `json:"profileImage,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Events        []Event         `json:"events"`
	Payments      []Payment       `json:"payments"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	PortalID      string          `json:"portalId"`
}

func (c *Client) Kind() Kind { return KindClients }

func (c *Client) Normalize() {
	c.Events = orEmpty(c.Events)
	c.Payments = orEmpty(c.Payments)
}

func (c *Client) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&c.Email, is.EmailFormat),
		validation.Field(&c.TotalAmount, nonNegative),
		validation.Field(&c.Events),
		validation.Field(&c.Payments),
	)
}

// PublicRef aponta para o portalId, usado no link do portal do cliente
func (c *Client) PublicRef() *string { return &c.PortalID }

// Shared é sempre verdadeiro: todo cliente tem portal
func (c *Client) Shared() bool { return true }

func (c *Client) ImageRefs() []*string {
	refs := []*string{&c.ProfileImage}
	for i := range c.Payments {
		refs = append(refs, &c.Payments[i].ProofImage)
	}
	return refs
}

// PaidAmount soma os pagamentos registrados
func (c *Client) PaidAmount() decimal.Decimal {
	return SumPayments(c.Payments)
}

func (c *Client) Header() []string {
	return []string{"id", "name", "phone", "email", "location", "events", "totalAmount", "paid", "paymentStatus", "createdAt"}
}

func (c *Client) Row() []string {
	return []string{
		c.ID,
		c.Name,
		c.Phone,
		c.Email,
		c.Location,
		itoa(len(c.Events)),
		c.TotalAmount.String(),
		c.PaidAmount().String(),
		string(c.PaymentStatus),
		c.CreatedAt.Format(DateLayout),
	}
}

// PortalView é a visão sem autenticação exposta pelo link do portal
type PortalView struct {
	Name          string          `json:"name"`
	Events        []Event         `json:"events"`
	Payments      []Payment       `json:"payments"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
}

func (c *Client) PortalView() PortalView {
	payments := make([]Payment, 0, len(c.Payments))
	for _, p := range c.Payments {
		p.ProofImage = ""
		payments = append(payments, p)
	}

	return PortalView{
		Name:          c.Name,
		Events:        c.Events,
		Payments:      payments,
		TotalAmount:   c.TotalAmount,
		PaidAmount:    c.PaidAmount(),
		PaymentStatus: c.PaymentStatus,
	}
}
