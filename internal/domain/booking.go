package domain

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// BookingSource indica por qual canal o agendamento chegou
type BookingSource string

const (
	BookingSourceOwner  BookingSource = "owner"
	BookingSourcePublic BookingSource = "public"
)

// Booking é um agendamento avulso, anterior à existência de um cliente
type Booking struct {
	Meta
	ClientName    string          `json:"clientName"`
	Phone         string          `json:"phone,omitempty"`
	Email         string          `json:"email,omitempty"`
	Type          string          `json:"type"`
	Date          string          `json:"date"`
	Time          string          `json:"time,omitempty"`
	Venue         string          `json:"venue,omitempty"`
	Package       string          `json:"package,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	DownPayment   decimal.Decimal `json:"downPayment"`
	PaymentStatus PaymentStatus   `json:"paymentStatus,omitempty"`
	Status        BookingStatus   `json:"status"`
	Source        BookingSource   `json:"source"`
	Notes         string          `json:"notes,omitempty"`
}

func (b *Booking) Kind() Kind { return KindBookings }

func (b *Booking) Normalize() {
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	if b.Source == "" {
		b.Source = BookingSourceOwner
	}
}

func (b *Booking) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.ClientName, validation.Required, validation.Length(1, 120)),
		validation.Field(&b.Email, is.EmailFormat),
		validation.Field(&b.Type, validation.Required),
		validation.Field(&b.Date, validation.Required, dateOnly),
		validation.Field(&b.Amount, nonNegative),
		validation.Field(&b.DownPayment, nonNegative),
		validation.Field(&b.Status, validation.In(BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled)),
		validation.Field(&b.Source, validation.In(BookingSourceOwner, BookingSourcePublic)),
	)
}

func (b *Booking) Header() []string {
	return []string{"id", "clientName", "phone", "type", "date", "time", "venue", "amount", "downPayment", "paymentStatus", "status", "source"}
}

func (b *Booking) Row() []string {
	return []string{
		b.ID,
		b.ClientName,
		b.Phone,
		b.Type,
		b.Date,
		b.Time,
		b.Venue,
		b.Amount.String(),
		b.DownPayment.String(),
		string(b.PaymentStatus),
		string(b.Status),
		string(b.Source),
	}
}
