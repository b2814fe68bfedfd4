package store_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mua-studio-api/infrastructure/storage"
	"github.com/vfg2006/mua-studio-api/infrastructure/storage/mocks"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/internal/store"
	"github.com/vfg2006/mua-studio-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T, backend storage.Backend, opts ...store.Option) *store.Store {
	t.Helper()

	opts = append([]store.Option{
		store.WithClock(func() time.Time { return fixedNow }),
		store.WithIssuer(store.NewSequenceIssuer("t")),
	}, opts...)

	s, err := store.New(backend, opts...)
	require.NoError(t, err)
	return s
}

// assertSameRecord compara registros pela forma serializada, como são persistidos
func assertSameRecord(t *testing.T, want, got any) {
	t.Helper()

	wantJSON, err := utils.JSON.Marshal(want)
	require.NoError(t, err)
	gotJSON, err := utils.JSON.Marshal(got)
	require.NoError(t, err)

	assert.JSONEq(t, string(wantJSON), string(gotJSON))
}

func TestRepository_AddClient(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryBackend())
	clients := s.Clients()

	created, err := clients.Add(domain.Client{
		Name:        "Siti",
		TotalAmount: decimal.NewFromInt(2500000),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.PortalID)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.Nil(t, created.UpdatedAt)

	all, err := clients.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assertSameRecord(t, created, all[0])
}

func TestRepository_RoundTrip(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryBackend())

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "Cliente com eventos e pagamentos",
			run: func(t *testing.T) {
				created, err := s.Clients().Add(domain.Client{
					Name:        "Ayu",
					Email:       "ayu@example.com",
					TotalAmount: decimal.NewFromInt(1800000),
					Events: []domain.Event{
						{Type: "Wedding", Date: "2024-05-01", Amount: decimal.NewFromInt(1800000)},
					},
					Payments: []domain.Payment{
						{Date: "2024-03-01", Amount: decimal.NewFromInt(500000), Method: domain.PaymentMethodTransfer},
					},
				})
				require.NoError(t, err)

				got, err := s.Clients().Get(created.ID)
				require.NoError(t, err)
				assertSameRecord(t, created, got)
			},
		},
		{
			name: "Projeto com status padrão",
			run: func(t *testing.T) {
				created, err := s.Projects().Add(domain.Project{
					ClientName: "Ayu",
					Type:       "Wedding",
					Team:       []string{"Rina", "Rina", " "},
				})
				require.NoError(t, err)
				assert.Equal(t, domain.ProjectStatusUpcoming, created.Status)
				assert.Equal(t, []string{"Rina"}, created.Team)
				assert.Empty(t, created.PublicID)

				got, err := s.Projects().Get(created.ID)
				require.NoError(t, err)
				assertSameRecord(t, created, got)
			},
		},
		{
			name: "Agendamento com status e origem padrão",
			run: func(t *testing.T) {
				created, err := s.Bookings().Add(domain.Booking{
					ClientName: "Dewi",
					Type:       "Graduation",
					Date:       "2024-06-12",
				})
				require.NoError(t, err)
				assert.Equal(t, domain.BookingStatusPending, created.Status)
				assert.Equal(t, domain.BookingSourceOwner, created.Source)

				got, err := s.Bookings().Get(created.ID)
				require.NoError(t, err)
				assertSameRecord(t, created, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func TestRepository_EmptyListsPersistAsArrays(t *testing.T) {
	backend := storage.NewMemoryBackend()
	s := newTestStore(t, backend)

	_, err := s.Clients().Add(domain.Client{Name: "Siti"})
	require.NoError(t, err)
	_, err = s.Projects().Add(domain.Project{ClientName: "Siti", Type: "Wedding"})
	require.NoError(t, err)
	_, err = s.Pricelists().Add(domain.Pricelist{Title: "Bridal"})
	require.NoError(t, err)

	tests := []struct {
		kind   domain.Kind
		fields []string
	}{
		{kind: domain.KindClients, fields: []string{"events", "payments"}},
		{kind: domain.KindProjects, fields: []string{"team", "services", "gallery"}},
		{kind: domain.KindPricelists, fields: []string{"images"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			payload, exists, err := backend.Get(tt.kind.String())
			require.NoError(t, err)
			require.True(t, exists)

			var records []map[string]any
			require.NoError(t, utils.JSON.Unmarshal(payload, &records))
			require.Len(t, records, 1)

			for _, field := range tt.fields {
				assert.Equal(t, []any{}, records[0][field], field)
			}
		})
	}
}

func TestRepository_AddAssignsServerFields(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryBackend())

	input := domain.Client{Name: "Siti", PortalID: "escolhido-pelo-cliente"}
	input.ID = "forjado"

	created, err := s.Clients().Add(input)
	require.NoError(t, err)

	assert.Equal(t, "t-1", created.ID)
	assert.Equal(t, "pub-t-1", created.PortalID)
}

func TestRepository_Validation(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryBackend())

	tests := []struct {
		name string
		add  func() error
	}{
		{
			name: "Cliente sem nome",
			add: func() error {
				_, err := s.Clients().Add(domain.Client{})
				return err
			},
		},
		{
			name: "Cliente com email inválido",
			add: func() error {
				_, err := s.Clients().Add(domain.Client{Name: "Siti", Email: "siti"})
				return err
			},
		},
		{
			name: "Pagamento com valor negativo",
			add: func() error {
				_, err := s.Clients().Add(domain.Client{
					Name:     "Siti",
					Payments: []domain.Payment{{Date: "2024-01-01", Amount: decimal.NewFromInt(-1)}},
				})
				return err
			},
		},
		{
			name: "Promoção percentual acima de 100",
			add: func() error {
				_, err := s.Promotions().Add(domain.Promotion{
					Code:         "MAX",
					DiscountType: domain.DiscountTypePercentage,
					Value:        decimal.NewFromInt(120),
					StartDate:    "2024-01-01",
					EndDate:      "2024-12-31",
				})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.add()
			require.Error(t, err)
			assert.True(t, store.IsValidation(err))
			assert.ErrorIs(t, err, store.ErrValidation)
		})
	}

	all, err := s.Clients().List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepository_DuplicatePromotionCode(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryBackend())
	promo := domain.Promotion{
		Code:         "summer10",
		DiscountType: domain.DiscountTypePercentage,
		Value:        decimal.NewFromInt(10),
		StartDate:    "2024-01-01",
		EndDate:      "2024-12-31",
		Active:       true,
	}

	created, err := s.Promotions().Add(promo)
	require.NoError(t, err)
	assert.Equal(t, "SUMMER10", created.Code)

	promo.Code = " SUMMER10 "
	_, err = s.Promotions().Add(promo)
	assert.ErrorIs(t, err, store.ErrDuplicate)

	// atualizar a própria promoção com o mesmo código não é conflito
	_, err = s.Promotions().Update(created.ID, store.Patch{"code": "summer10", "description": "Verão"})
	assert.NoError(t, err)
}

func TestRepository_RemoveIsIdempotent(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryBackend())
	projects := s.Projects()

	kept, err := projects.Add(domain.Project{ClientName: "Ayu", Type: "Wedding"})
	require.NoError(t, err)
	removed, err := projects.Add(domain.Project{ClientName: "Dewi", Type: "Engagement"})
	require.NoError(t, err)

	require.NoError(t, projects.Remove(removed.ID))
	afterFirst, err := projects.List()
	require.NoError(t, err)

	require.NoError(t, projects.Remove(removed.ID))
	afterSecond, err := projects.List()
	require.NoError(t, err)

	assert.Equal(t, afterFirst, afterSecond)
	require.Len(t, afterSecond, 1)
	assert.Equal(t, kept.ID, afterSecond[0].ID)
}

func TestRepository_RemoveMissingDoesNotWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().Get("projects").Return(nil, false, nil)
	// nenhuma chamada a Set é esperada

	s := newTestStore(t, backend)

	err := s.Projects().Remove("nonexistent-id")
	assert.NoError(t, err)
}

func TestRepository_PublicIDStability(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryBackend())
	projects := s.Projects()

	created, err := projects.Add(domain.Project{ClientName: "Ayu", Type: "Wedding"})
	require.NoError(t, err)
	assert.Empty(t, created.PublicID, "projeto privado não recebe identificador público")

	shared, err := projects.Update(created.ID, store.Patch{"isPublic": true})
	require.NoError(t, err)
	require.NotEmpty(t, shared.PublicID)
	publicID := shared.PublicID

	patches := []store.Patch{
		{"type": "Engagement"},
		{"publicId": "tentativa-de-troca"},
		{"portalId": "outro", "status": "in-progress"},
		{"isPublic": false},
		{"isPublic": true},
	}
	for _, patch := range patches {
		updated, err := projects.Update(created.ID, patch)
		require.NoError(t, err)
		assert.Equal(t, publicID, updated.PublicID)
	}

	found, err := projects.FindByPublicID(publicID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = projects.Update(created.ID, store.Patch{"isPublic": false})
	require.NoError(t, err)

	_, err = projects.FindByPublicID(publicID)
	assert.True(t, store.IsNotFound(err), "projeto que deixou de ser público não é encontrado")
}

func TestRepository_ClientPortalIDStability(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryBackend())
	clients := s.Clients()

	created, err := clients.Add(domain.Client{Name: "Siti"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		updated, err := clients.Update(created.ID, store.Patch{"notes": "nota", "portalId": "novo"})
		require.NoError(t, err)
		assert.Equal(t, created.PortalID, updated.PortalID)
	}

	found, err := clients.FindByPublicID(created.PortalID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestRepository_UpdateMergesShallow(t *testing.T) {
	later := fixedNow.Add(2 * time.Hour)
	now := fixedNow
	s := newTestStore(t, storage.NewMemoryBackend(), store.WithClock(func() time.Time { return now }))
	clients := s.Clients()

	created, err := clients.Add(domain.Client{
		Name:  "Siti",
		Phone: "0812",
		Events: []domain.Event{
			{Type: "Wedding", Date: "2024-05-01", Amount: decimal.NewFromInt(1000)},
			{Type: "Reception", Date: "2024-05-02", Amount: decimal.NewFromInt(500)},
		},
	})
	require.NoError(t, err)

	now = later
	updated, err := clients.Update(created.ID, store.Patch{
		"phone":     "0899",
		"id":        "outro-id",
		"createdAt": "2020-01-01T00:00:00Z",
		"events": []map[string]any{
			{"type": "Engagement", "date": "2024-04-01", "amount": 300},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, later, *updated.UpdatedAt)
	assert.Equal(t, "Siti", updated.Name)
	assert.Equal(t, "0899", updated.Phone)
	require.Len(t, updated.Events, 1, "listas são substituídas por inteiro")
	assert.Equal(t, "Engagement", updated.Events[0].Type)
	assert.True(t, decimal.NewFromInt(300).Equal(updated.Events[0].Amount))
}

func TestRepository_UpdateErrors(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryBackend())
	created, err := s.Clients().Add(domain.Client{Name: "Siti"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      string
		patch   store.Patch
		checkFn func(error) bool
	}{
		{
			name:    "ID inexistente",
			id:      "nao-existe",
			patch:   store.Patch{"name": "X"},
			checkFn: store.IsNotFound,
		},
		{
			name:    "Nome apagado",
			id:      created.ID,
			patch:   store.Patch{"name": ""},
			checkFn: store.IsValidation,
		},
		{
			name:    "Tipo incompatível no patch",
			id:      created.ID,
			patch:   store.Patch{"events": "não é lista"},
			checkFn: store.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Clients().Update(tt.id, tt.patch)
			require.Error(t, err)
			assert.True(t, tt.checkFn(err))
		})
	}

	got, err := s.Clients().Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Siti", got.Name)
}

func TestRepository_UpdateWith(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryBackend())
	created, err := s.Pricelists().Add(domain.Pricelist{Title: "Bridal"})
	require.NoError(t, err)

	updated, err := s.Pricelists().UpdateWith(created.ID, store.Patch{"category": "Wedding"}, func(record *domain.Pricelist) error {
		assert.Equal(t, "Wedding", record.Category, "fn recebe o patch já aplicado")
		record.Images = append(record.Images, domain.Image{Data: "https://cdn.example.com/look.jpg"})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Wedding", updated.Category)
	require.Len(t, updated.Images, 1)

	_, err = s.Pricelists().UpdateWith(created.ID, store.Patch{"category": "Party"}, func(record *domain.Pricelist) error {
		record.Title = ""
		return nil
	})
	assert.True(t, store.IsValidation(err), "fn roda antes da validação")

	failure := errors.New("compressão falhou")
	_, err = s.Pricelists().UpdateWith(created.ID, store.Patch{"category": "Party"}, func(record *domain.Pricelist) error {
		return failure
	})
	assert.ErrorIs(t, err, failure)

	stored, err := s.Pricelists().Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wedding", stored.Category, "falhas não gravam nada")
}

func TestRepository_ProjectCompletedAt(t *testing.T) {
	now := fixedNow
	s := newTestStore(t, storage.NewMemoryBackend(), store.WithClock(func() time.Time { return now }))
	projects := s.Projects()

	created, err := projects.Add(domain.Project{ClientName: "Ayu", Type: "Wedding"})
	require.NoError(t, err)
	assert.Nil(t, created.CompletedAt)

	now = fixedNow.Add(24 * time.Hour)
	completed, err := projects.Update(created.ID, store.Patch{"status": "completed"})
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, now, *completed.CompletedAt)

	now = fixedNow.Add(48 * time.Hour)
	again, err := projects.Update(created.ID, store.Patch{"services": []string{"Makeup"}})
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.Equal(t, fixedNow.Add(24*time.Hour), *again.CompletedAt, "completedAt não muda enquanto o projeto segue concluído")

	reopened, err := projects.Update(created.ID, store.Patch{"status": "in-progress"})
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedAt)
}

func TestRepository_ProjectCompletedAtOnAdd(t *testing.T) {
	stale := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		project  domain.Project
		expected *time.Time
	}{
		{
			name:     "Criado em andamento descarta completedAt enviado",
			project:  domain.Project{ClientName: "Ayu", Type: "Wedding", Status: domain.ProjectStatusUpcoming, CompletedAt: &stale},
			expected: nil,
		},
		{
			name:     "Criado já concluído recebe completedAt do relógio",
			project:  domain.Project{ClientName: "Ayu", Type: "Wedding", Status: domain.ProjectStatusCompleted},
			expected: &fixedNow,
		},
		{
			name:     "Criado concluído ignora completedAt enviado",
			project:  domain.Project{ClientName: "Ayu", Type: "Wedding", Status: domain.ProjectStatusCompleted, CompletedAt: &stale},
			expected: &fixedNow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, storage.NewMemoryBackend())

			created, err := s.Projects().Add(tt.project)
			require.NoError(t, err)

			stored, err := s.Projects().Get(created.ID)
			require.NoError(t, err)

			if tt.expected == nil {
				assert.Nil(t, stored.CompletedAt)
				return
			}
			require.NotNil(t, stored.CompletedAt)
			assert.True(t, tt.expected.Equal(*stored.CompletedAt))
		})
	}
}

func TestRepository_QuotaEnforcement(t *testing.T) {
	backend := storage.NewMemoryBackend()
	seed := newTestStore(t, backend)

	for _, name := range []string{"Ayu", "Dewi", "Rina"} {
		_, err := seed.Clients().Add(domain.Client{Name: name, Notes: strings.Repeat("n", 200)})
		require.NoError(t, err)
	}

	usage, err := seed.Usage()
	require.NoError(t, err)

	// uso atual = 95% do teto
	limit := usage.UsedBytes * 100 / 95
	s := newTestStore(t, backend, store.WithQuotaLimit(limit))

	before, err := s.Clients().List()
	require.NoError(t, err)
	payloadBefore, _, err := backend.Get("clients")
	require.NoError(t, err)

	oversized := domain.Client{Name: "Grande", Notes: strings.Repeat("x", int(limit/20)+1)}
	_, err = s.Clients().Add(oversized)
	require.Error(t, err)
	assert.True(t, store.IsQuotaExceeded(err))

	var quotaErr *store.QuotaError
	require.True(t, errors.As(err, &quotaErr))
	assert.Equal(t, domain.KindClients, quotaErr.Kind)
	assert.Equal(t, limit, quotaErr.LimitBytes)
	assert.Greater(t, quotaErr.RequiredBytes, quotaErr.AvailableBytes)
	assert.Contains(t, err.Error(), "remove entities or shrink images")

	after, err := s.Clients().List()
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
	assertSameRecord(t, before, after)

	payloadAfter, _, err := backend.Get("clients")
	require.NoError(t, err)
	assert.Equal(t, payloadBefore, payloadAfter, "nenhuma gravação parcial")

	// remover continua permitido para liberar espaço
	require.NoError(t, s.Clients().Remove(before[0].ID))
}

func TestRepository_CorruptSlot(t *testing.T) {
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Set("pricelists", []byte(`[{"id":"1","title":"Bridal"`)))

	var reported []domain.Kind
	s := newTestStore(t, backend, store.WithCorruptionHandler(func(kind domain.Kind, err error) {
		assert.ErrorIs(t, err, store.ErrCorruptPersistedState)
		reported = append(reported, kind)
	}))

	items, err := s.Pricelists().List()
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Equal(t, []domain.Kind{domain.KindPricelists}, reported)

	_, exists, err := backend.Get("pricelists")
	require.NoError(t, err)
	assert.False(t, exists, "slot corrompido é removido")

	exists, err = s.Pricelists().Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	created, err := s.Pricelists().Add(domain.Pricelist{Title: "Bridal Glam", Price: decimal.NewFromInt(1500000)})
	require.NoError(t, err)

	items, err = s.Pricelists().List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
}

func TestRepository_CorruptSlotDeleteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().Get("promotions").Return([]byte(`{not json`), true, nil)
	backend.EXPECT().Delete("promotions").Return(errors.New("read-only"))

	reported := 0
	s := newTestStore(t, backend, store.WithCorruptionHandler(func(kind domain.Kind, err error) {
		reported++
	}))

	items, err := s.Promotions().List()
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, reported)
}

func TestRepository_BackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	s := newTestStore(t, backend)

	t.Run("Falha de leitura", func(t *testing.T) {
		backend.EXPECT().Get("team").Return(nil, false, errors.New("disk unplugged"))

		_, err := s.Team().List()
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrBackend)

		var storeErr *store.StoreError
		require.True(t, errors.As(err, &storeErr))
		assert.Equal(t, domain.KindTeam, storeErr.Kind)
	})

	t.Run("Falha de gravação", func(t *testing.T) {
		backend.EXPECT().Get(gomock.Any()).Return(nil, false, nil).AnyTimes()
		backend.EXPECT().Set("team", gomock.Any()).Return(errors.New("read-only"))

		_, err := s.Team().Add(domain.TeamMember{Name: "Rina", Role: "MUA"})
		assert.ErrorIs(t, err, store.ErrBackend)
	})
}

func TestStore_Usage(t *testing.T) {
	backend := storage.NewMemoryBackend()
	s := newTestStore(t, backend, store.WithQuotaLimit(1<<20))

	usage, err := s.Usage()
	require.NoError(t, err)
	assert.Equal(t, int64(0), usage.UsedBytes)
	assert.Equal(t, domain.StorageLevelOK, usage.Level)

	_, err = s.Team().Add(domain.TeamMember{Name: "Rina", Role: "MUA"})
	require.NoError(t, err)

	payload, _, err := backend.Get("team")
	require.NoError(t, err)

	usage, err = s.Usage()
	require.NoError(t, err)
	assert.Equal(t, int64(len("team")+len(payload)), usage.UsedBytes)
	assert.Equal(t, usage.UsedBytes, usage.ByKind[domain.KindTeam])
	assert.Equal(t, int64(1<<20)-usage.UsedBytes, usage.AvailableBytes)
}

func TestRepository_Mutate(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryBackend())
	team := s.Team()

	member, err := team.Add(domain.TeamMember{Name: "Rina", Role: "MUA"})
	require.NoError(t, err)

	t.Run("Altera e preserva a identidade", func(t *testing.T) {
		updated, err := team.Mutate(member.ID, func(m *domain.TeamMember) error {
			m.CompletedJobs = 3
			m.ID = "outro"
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, member.ID, updated.ID)
		assert.Equal(t, 3, updated.CompletedJobs)
		require.NotNil(t, updated.UpdatedAt)
	})

	t.Run("Erro da função não grava nada", func(t *testing.T) {
		errAbort := errors.New("abort")
		_, err := team.Mutate(member.ID, func(m *domain.TeamMember) error {
			m.CompletedJobs = 99
			return errAbort
		})
		assert.Same(t, errAbort, err)

		stored, err := team.Get(member.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, stored.CompletedJobs)
	})

	t.Run("ID inexistente", func(t *testing.T) {
		_, err := team.Mutate("nao-existe", func(m *domain.TeamMember) error { return nil })
		assert.True(t, errors.Is(err, store.ErrNotFound))
	})
}
