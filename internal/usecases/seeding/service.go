package seeding

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/internal/store"
	"github.com/vfg2006/mua-studio-api/internal/usecases/billing"
)

// Summary informa quantos registros de demonstração foram criados por coleção
type Summary struct {
	Seeded map[domain.Kind]int `json:"seeded"`
}

type Service struct {
	store   *store.Store
	billing billing.BillingService
}

func NewService(s *store.Store, billingService billing.BillingService) *Service {
	return &Service{
		store:   s,
		billing: billingService,
	}
}

// SeedIfEmpty grava dados de demonstração apenas em coleções que nunca foram gravadas.
// Uma coleção esvaziada pelo usuário continua vazia.
func (s *Service) SeedIfEmpty() (*Summary, error) {
	summary := &Summary{Seeded: make(map[domain.Kind]int)}

	steps := []struct {
		exists func() (bool, error)
		seed   func() (int, error)
		kind   domain.Kind
	}{
		{kind: domain.KindClients, exists: s.store.Clients().Exists, seed: s.seedClients},
		{kind: domain.KindProjects, exists: s.store.Projects().Exists, seed: s.seedProjects},
		{kind: domain.KindBookings, exists: s.store.Bookings().Exists, seed: s.seedBookings},
		{kind: domain.KindInvoices, exists: s.store.Invoices().Exists, seed: s.seedInvoices},
		{kind: domain.KindPricelists, exists: s.store.Pricelists().Exists, seed: s.seedPricelists},
		{kind: domain.KindPromotions, exists: s.store.Promotions().Exists, seed: s.seedPromotions},
		{kind: domain.KindTeam, exists: s.store.Team().Exists, seed: s.seedTeam},
	}

	for _, step := range steps {
		exists, err := step.exists()
		if err != nil {
			return summary, err
		}
		if exists {
			continue
		}

		count, err := step.seed()
		if err != nil {
			logrus.WithError(err).WithField("kind", step.kind).Error("Falha ao gravar dados de demonstração")
			return summary, err
		}
		summary.Seeded[step.kind] = count
	}

	if len(summary.Seeded) > 0 && s.billing != nil {
		if _, err := s.billing.RefreshAll(); err != nil {
			return summary, err
		}
	}

	logrus.WithField("seeded", summary.Seeded).Info("Dados de demonstração verificados")
	return summary, nil
}

func addAll[T any, PT store.Record[T]](repo *store.Repository[T, PT], records []T) (int, error) {
	for _, record := range records {
		if _, err := repo.Add(record); err != nil {
			return 0, err
		}
	}
	return len(records), nil
}

func money(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

func (s *Service) seedClients() (int, error) {
	return addAll(s.store.Clients(), []domain.Client{
		{
			Name:     "Siti Rahma",
			Phone:    "+62 812 0000 1111",
			Email:    "siti@example.com",
			Location: "Jakarta",
			Events: []domain.Event{
				{Type: "Akad", Date: "2025-02-14", Time: "08:00", Venue: "Masjid Agung", Package: "Bridal Premium", Amount: money(1500000)},
				{Type: "Resepsi", Date: "2025-02-15", Time: "18:00", Venue: "Grand Ballroom", Package: "Bridal Premium", Amount: money(1000000)},
			},
			Payments: []domain.Payment{
				{Date: "2025-01-05", Amount: money(1000000), Method: domain.PaymentMethodTransfer, Description: "DP"},
			},
		},
		{
			Name:     "Ayu Lestari",
			Phone:    "+62 813 2222 3333",
			Location: "Bandung",
			Events: []domain.Event{
				{Type: "Wisuda", Date: "2025-03-20", Time: "06:00", Package: "Graduation", Amount: money(450000)},
			},
		},
	})
}

func (s *Service) seedProjects() (int, error) {
	return addAll(s.store.Projects(), []domain.Project{
		{
			ClientName: "Siti Rahma",
			Type:       "Wedding",
			Status:     domain.ProjectStatusUpcoming,
			Date:       "2025-02-14",
			Budget:     money(2500000),
			Paid:       money(1000000),
			Team:       []string{"Rina", "Lala"},
			Services:   []string{"Makeup", "Hairdo", "Henna"},
		},
	})
}

func (s *Service) seedBookings() (int, error) {
	return addAll(s.store.Bookings(), []domain.Booking{
		{
			ClientName: "Dewi Anggraini",
			Phone:      "+62 811 4444 5555",
			Type:       "Engagement",
			Date:       "2025-04-02",
			Time:       "09:00",
			Package:    "Engagement Glam",
			Amount:     money(750000),
		},
	})
}

func (s *Service) seedInvoices() (int, error) {
	return addAll(s.store.Invoices(), []domain.Invoice{
		{
			Number:     "INV-0001",
			ClientName: "Siti Rahma",
			Items: []domain.LineItem{
				{Description: "Bridal makeup akad", Quantity: 1, UnitAmount: money(1500000)},
				{Description: "Bridal makeup resepsi", Quantity: 1, UnitAmount: money(1000000)},
			},
			TaxRate:   money(11),
			IssueDate: "2025-01-05",
			DueDate:   "2025-02-10",
			Status:    domain.InvoiceStatusSent,
			Bank:      domain.BankDetails{BankName: "BCA", AccountName: "MUA Studio", AccountNumber: "1234567890"},
		},
	})
}

func (s *Service) seedPricelists() (int, error) {
	return addAll(s.store.Pricelists(), []domain.Pricelist{
		{Title: "Bridal Premium", Category: "Wedding", Description: "Akad + resepsi, termasuk hairdo", Price: money(2500000)},
		{Title: "Graduation", Category: "Graduation", Description: "Makeup + hijab styling", Price: money(450000)},
	})
}

func (s *Service) seedPromotions() (int, error) {
	return addAll(s.store.Promotions(), []domain.Promotion{
		{
			Code:         "WELCOME10",
			Description:  "10% para novos clientes",
			DiscountType: domain.DiscountTypePercentage,
			Value:        money(10),
			StartDate:    "2025-01-01",
			EndDate:      "2025-12-31",
			MaxUsage:     50,
			Active:       true,
		},
	})
}

func (s *Service) seedTeam() (int, error) {
	return addAll(s.store.Team(), []domain.TeamMember{
		{Name: "Rina", Role: "Lead MUA", Specialties: []string{"Bridal", "Hijab"}, Active: true},
		{Name: "Lala", Role: "Hairdo", Specialties: []string{"Sanggul"}, Active: true},
	})
}
