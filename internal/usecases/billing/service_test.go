package billing

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mua-studio-api/infrastructure/storage"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/internal/store"
)

func newBillingFixture(t *testing.T, now *time.Time) (*store.Store, BillingService) {
	t.Helper()

	clock := func() time.Time { return *now }
	s, err := store.New(storage.NewMemoryBackend(),
		store.WithClock(clock),
		store.WithIssuer(store.NewSequenceIssuer("b")),
	)
	require.NoError(t, err)

	return s, NewService(s, clock)
}

func TestService_RecordClientPayment(t *testing.T) {
	now := today
	s, service := newBillingFixture(t, &now)

	client, err := s.Clients().Add(domain.Client{Name: "Siti", TotalAmount: decimal.NewFromInt(2500000)})
	require.NoError(t, err)

	steps := []struct {
		name     string
		amount   int64
		expected domain.PaymentStatus
	}{
		{name: "Primeiro pagamento deixa parcial", amount: 1500000, expected: domain.PaymentStatusPartial},
		{name: "Segundo pagamento quita", amount: 1000000, expected: domain.PaymentStatusPaid},
		{name: "Pagamento excedente continua pago", amount: 100000, expected: domain.PaymentStatusPaid},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			updated, err := service.RecordClientPayment(client.ID, domain.Payment{
				Date:   "2024-06-15",
				Amount: decimal.NewFromInt(step.amount),
				Method: domain.PaymentMethodTransfer,
			})
			require.NoError(t, err)
			assert.Equal(t, step.expected, updated.PaymentStatus)

			stored, err := s.Clients().Get(client.ID)
			require.NoError(t, err)
			assert.Equal(t, step.expected, stored.PaymentStatus)
			assert.Equal(t, client.PortalID, stored.PortalID)
		})
	}
}

func TestService_RecordClientPaymentInvalid(t *testing.T) {
	now := today
	s, service := newBillingFixture(t, &now)

	client, err := s.Clients().Add(domain.Client{Name: "Siti"})
	require.NoError(t, err)

	_, err = service.RecordClientPayment(client.ID, domain.Payment{Date: "15/06/2024", Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, ErrInvalidPayment)

	_, err = service.RecordClientPayment(client.ID, domain.Payment{Date: "2024-06-15", Amount: decimal.NewFromInt(10), Method: "bitcoin"})
	assert.ErrorIs(t, err, ErrInvalidPayment)

	stored, err := s.Clients().Get(client.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Payments)

	_, err = service.RecordClientPayment("nao-existe", domain.Payment{Date: "2024-06-15", Amount: decimal.NewFromInt(10)})
	assert.True(t, store.IsNotFound(err))
}

func TestService_RecordInvoicePayment(t *testing.T) {
	now := today
	s, service := newBillingFixture(t, &now)

	invoice, err := s.Invoices().Add(domain.Invoice{
		Number:     "INV-001",
		ClientName: "Siti",
		Items:      []domain.LineItem{{Description: "Bridal", Quantity: 1, UnitAmount: decimal.NewFromInt(1000)}},
		DueDate:    "2024-07-01",
		Status:     domain.InvoiceStatusSent,
	})
	require.NoError(t, err)
	require.NoError(t, service.Refresh(domain.KindInvoices, invoice.ID))

	_, err = service.RecordInvoicePayment(invoice.ID, decimal.Zero)
	assert.ErrorIs(t, err, ErrPaymentNotPositive)

	updated, err := service.RecordInvoicePayment(invoice.ID, decimal.NewFromInt(400))
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPartial, updated.PaymentStatus)
	assert.Equal(t, domain.InvoiceStatusSent, updated.Status)

	updated, err = service.RecordInvoicePayment(invoice.ID, decimal.NewFromInt(600))
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, updated.PaymentStatus)
	assert.Equal(t, domain.InvoiceStatusPaid, updated.Status)
}

func TestService_RefreshAll(t *testing.T) {
	now := today
	s, service := newBillingFixture(t, &now)

	project, err := s.Projects().Add(domain.Project{
		ClientName: "Ayu",
		Type:       "Wedding",
		Budget:     decimal.NewFromInt(3000),
		Date:       "2024-06-20",
	})
	require.NoError(t, err)

	_, err = s.Bookings().Add(domain.Booking{
		ClientName:  "Dewi",
		Type:        "Graduation",
		Date:        "2024-06-20",
		Amount:      decimal.NewFromInt(500),
		DownPayment: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	summary, err := service.RefreshAll()
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Checked)
	assert.Equal(t, 2, summary.Updated, "status vazio passa a ser calculado")

	summary, err = service.RefreshAll()
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Updated, "nada muda sem mudança de data")

	// o vencimento do projeto passa
	now = day("2024-06-21").Add(9 * time.Hour)
	summary, err = service.RefreshAll()
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1, summary.ByKind[domain.KindProjects])

	stored, err := s.Projects().Get(project.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusOverdue, stored.PaymentStatus)
	require.NotNil(t, stored.UpdatedAt)
	assert.Equal(t, now, *stored.UpdatedAt)
}

func TestService_RefreshIgnoresKindsWithoutPayments(t *testing.T) {
	now := today
	_, service := newBillingFixture(t, &now)

	assert.NoError(t, service.Refresh(domain.KindTeam, "qualquer"))

	err := service.Refresh(domain.KindProjects, "nao-existe")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}
