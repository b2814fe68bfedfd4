package billing

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/internal/store"
	"github.com/vfg2006/mua-studio-api/pkg/apiErrors"
)

// errUnchanged interrompe um Mutate quando o recálculo não altera nada, evitando a gravação
var errUnchanged = errors.New("derived state unchanged")

type BillingService interface {
	RecordClientPayment(clientID string, payment domain.Payment) (domain.Client, error)
	RecordProjectPayment(projectID string, amount decimal.Decimal) (domain.Project, error)
	RecordBookingPayment(bookingID string, amount decimal.Decimal) (domain.Booking, error)
	RecordInvoicePayment(invoiceID string, amount decimal.Decimal) (domain.Invoice, error)
	Refresh(kind domain.Kind, id string) error
	RefreshAll() (*RefreshSummary, error)
}

// RefreshSummary resume uma varredura de status de pagamento
type RefreshSummary struct {
	Checked int                 `json:"checked"`
	Updated int                 `json:"updated"`
	ByKind  map[domain.Kind]int `json:"byKind"`
}

type Service struct {
	store *store.Store
	clock store.Clock
}

func NewService(s *store.Store, clock store.Clock) BillingService {
	if clock == nil {
		clock = time.Now
	}

	return &Service{
		store: s,
		clock: clock,
	}
}

// RecordClientPayment registra o pagamento e recalcula totais e status do cliente
func (s *Service) RecordClientPayment(clientID string, payment domain.Payment) (domain.Client, error) {
	if err := payment.Validate(); err != nil {
		return domain.Client{}, NewBillingError(ErrInvalidPayment, apiErrors.ErrMissingRequiredData, clientID, err.Error())
	}

	now := s.clock()
	return s.store.Clients().Mutate(clientID, func(client *domain.Client) error {
		client.Payments = append(client.Payments, payment)
		RefreshClient(client, now)
		return nil
	})
}

func (s *Service) RecordProjectPayment(projectID string, amount decimal.Decimal) (domain.Project, error) {
	if !amount.IsPositive() {
		return domain.Project{}, NewBillingError(ErrPaymentNotPositive, apiErrors.ErrInvalidRequest, projectID, amount.String())
	}

	now := s.clock()
	return s.store.Projects().Mutate(projectID, func(project *domain.Project) error {
		project.Paid = project.Paid.Add(amount)
		RefreshProject(project, now)
		return nil
	})
}

func (s *Service) RecordBookingPayment(bookingID string, amount decimal.Decimal) (domain.Booking, error) {
	if !amount.IsPositive() {
		return domain.Booking{}, NewBillingError(ErrPaymentNotPositive, apiErrors.ErrInvalidRequest, bookingID, amount.String())
	}

	now := s.clock()
	return s.store.Bookings().Mutate(bookingID, func(booking *domain.Booking) error {
		booking.DownPayment = booking.DownPayment.Add(amount)
		RefreshBooking(booking, now)
		return nil
	})
}

func (s *Service) RecordInvoicePayment(invoiceID string, amount decimal.Decimal) (domain.Invoice, error) {
	if !amount.IsPositive() {
		return domain.Invoice{}, NewBillingError(ErrPaymentNotPositive, apiErrors.ErrInvalidRequest, invoiceID, amount.String())
	}

	now := s.clock()
	return s.store.Invoices().Mutate(invoiceID, func(invoice *domain.Invoice) error {
		invoice.AmountPaid = invoice.AmountPaid.Add(amount)
		RefreshInvoice(invoice, now)
		return nil
	})
}

// Refresh recalcula o estado derivado de uma entidade após uma mudança de valores.
// Coleções sem estado de pagamento são ignoradas.
func (s *Service) Refresh(kind domain.Kind, id string) error {
	_, err := s.refresh(kind, id, s.clock())
	return err
}

// refresh devolve true quando houve gravação
func (s *Service) refresh(kind domain.Kind, id string, now time.Time) (bool, error) {
	var err error

	switch kind {
	case domain.KindClients:
		_, err = s.store.Clients().Mutate(id, func(client *domain.Client) error {
			before := clientSignature(client)
			RefreshClient(client, now)
			return unchangedIf(before == clientSignature(client))
		})
	case domain.KindProjects:
		_, err = s.store.Projects().Mutate(id, func(project *domain.Project) error {
			before := project.PaymentStatus
			RefreshProject(project, now)
			return unchangedIf(before == project.PaymentStatus)
		})
	case domain.KindBookings:
		_, err = s.store.Bookings().Mutate(id, func(booking *domain.Booking) error {
			before := booking.PaymentStatus
			RefreshBooking(booking, now)
			return unchangedIf(before == booking.PaymentStatus)
		})
	case domain.KindInvoices:
		_, err = s.store.Invoices().Mutate(id, func(invoice *domain.Invoice) error {
			before := invoiceSignature(invoice)
			RefreshInvoice(invoice, now)
			return unchangedIf(before == invoiceSignature(invoice))
		})
	default:
		return false, nil
	}

	if errors.Is(err, errUnchanged) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RefreshAll percorre todas as entidades com estado de pagamento e regrava apenas
// as que mudaram, p.ex. pending → overdue quando o vencimento passa.
func (s *Service) RefreshAll() (*RefreshSummary, error) {
	now := s.clock()
	summary := &RefreshSummary{ByKind: make(map[domain.Kind]int)}

	for _, kind := range []domain.Kind{domain.KindClients, domain.KindProjects, domain.KindBookings, domain.KindInvoices} {
		ids, err := s.idsOf(kind)
		if err != nil {
			return summary, err
		}

		for _, id := range ids {
			summary.Checked++

			updated, err := s.refresh(kind, id, now)
			if store.IsNotFound(err) {
				continue
			}
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"kind":  kind,
					"id":    id,
					"error": err,
				}).Error("Falha ao recalcular status de pagamento")
				return summary, err
			}
			if updated {
				summary.Updated++
				summary.ByKind[kind]++
			}
		}
	}

	return summary, nil
}

func (s *Service) idsOf(kind domain.Kind) ([]string, error) {
	switch kind {
	case domain.KindClients:
		return collectIDs[domain.Client](s.store.Clients().List())
	case domain.KindProjects:
		return collectIDs[domain.Project](s.store.Projects().List())
	case domain.KindBookings:
		return collectIDs[domain.Booking](s.store.Bookings().List())
	case domain.KindInvoices:
		return collectIDs[domain.Invoice](s.store.Invoices().List())
	}
	return nil, NewBillingError(ErrUnsupportedKind, apiErrors.ErrInvalidRequest, "", kind.String())
}

func collectIDs[T any, PT store.Record[T]](items []T, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	for i := range items {
		ids = append(ids, PT(&items[i]).Identity().ID)
	}
	return ids, nil
}

func unchangedIf(same bool) error {
	if same {
		return errUnchanged
	}
	return nil
}

func clientSignature(client *domain.Client) string {
	var b strings.Builder
	b.WriteString(client.TotalAmount.String())
	b.WriteString("|")
	b.WriteString(string(client.PaymentStatus))
	for _, event := range client.Events {
		b.WriteString("|")
		b.WriteString(string(event.PaymentStatus))
	}
	return b.String()
}

func invoiceSignature(invoice *domain.Invoice) string {
	return strings.Join([]string{
		invoice.Subtotal.String(),
		invoice.Tax.String(),
		invoice.GrandTotal.String(),
		string(invoice.PaymentStatus),
		string(invoice.Status),
	}, "|")
}
