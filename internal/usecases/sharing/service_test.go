package sharing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mua-studio-api/infrastructure/storage"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/internal/store"
)

func newSharingFixture(t *testing.T) (*store.Store, SharingService) {
	t.Helper()

	s, err := store.New(storage.NewMemoryBackend(), store.WithIssuer(store.NewSequenceIssuer("s")))
	require.NoError(t, err)

	return s, NewService(s, "https://studio.example.com/")
}

func TestService_ClientPortal(t *testing.T) {
	s, service := newSharingFixture(t)

	client, err := s.Clients().Add(domain.Client{
		Name: "Siti",
		Payments: []domain.Payment{
			{Date: "2024-06-01", Amount: decimal.NewFromInt(1000), ProofImage: "data:image/jpeg;base64,AAAA"},
		},
	})
	require.NoError(t, err)

	link, err := service.ClientPortalLink(client.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://studio.example.com/portal/"+client.PortalID, link.URL)

	view, err := service.ResolvePortal(client.PortalID)
	require.NoError(t, err)
	assert.Equal(t, "Siti", view.Name)
	require.Len(t, view.Payments, 1)
	assert.Empty(t, view.Payments[0].ProofImage, "comprovantes não aparecem no portal")
	assert.True(t, decimal.NewFromInt(1000).Equal(view.PaidAmount))

	_, err = service.ResolvePortal("desconhecido")
	assert.True(t, store.IsNotFound(err))
}

func TestService_Gallery(t *testing.T) {
	s, service := newSharingFixture(t)

	project, err := s.Projects().Add(domain.Project{
		ClientName: "Ayu",
		Type:       "Wedding",
		Gallery:    []domain.Image{{Data: "data:image/jpeg;base64,AAAA", Caption: "Akad"}},
	})
	require.NoError(t, err)

	_, err = service.ProjectGalleryLink(project.ID)
	assert.ErrorIs(t, err, ErrNotShared)

	project, err = s.Projects().Update(project.ID, store.Patch{"isPublic": true})
	require.NoError(t, err)

	link, err := service.ProjectGalleryLink(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://studio.example.com/gallery/"+project.PublicID, link.URL)

	view, err := service.ResolveGallery(FeatureGallery, project.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "Wedding", view.Title)
	assert.Len(t, view.Images, 1)

	// o mesmo identificador não resolve como pricelist
	_, err = service.ResolveGallery(FeaturePricelist, project.PublicID)
	assert.True(t, store.IsNotFound(err))
}

func TestService_SubmitBooking(t *testing.T) {
	_, service := newSharingFixture(t)

	created, err := service.SubmitBooking(domain.Booking{
		ClientName:  "Dewi",
		Type:        "Graduation",
		Date:        "2024-08-17",
		Status:      domain.BookingStatusConfirmed,
		Amount:      decimal.NewFromInt(1),
		DownPayment: decimal.NewFromInt(1000000),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BookingSourcePublic, created.Source)
	assert.Equal(t, domain.BookingStatusPending, created.Status)
	assert.True(t, created.DownPayment.IsZero())
	assert.NotEmpty(t, created.ID)

	_, err = service.SubmitBooking(domain.Booking{ClientName: "Sem data", Type: "Party"})
	assert.True(t, store.IsValidation(err))
}
