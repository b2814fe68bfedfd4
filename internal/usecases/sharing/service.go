package sharing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/internal/store"
)

// Feature é o primeiro segmento do link público
type Feature string

const (
	FeaturePortal    Feature = "portal"
	FeatureGallery   Feature = "gallery"
	FeaturePricelist Feature = "pricelist"
)

var ErrNotShared = errors.New("entity is not shared")

// Link é um link público pronto para ser enviado ao cliente
type Link struct {
	Feature  Feature `json:"feature"`
	PublicID string  `json:"publicId"`
	URL      string  `json:"url"`
}

type SharingService interface {
	URL(feature Feature, publicID string) string
	ClientPortalLink(clientID string) (*Link, error)
	ProjectGalleryLink(projectID string) (*Link, error)
	PricelistLink(pricelistID string) (*Link, error)
	ResolvePortal(portalID string) (*domain.PortalView, error)
	ResolveGallery(feature Feature, publicID string) (*domain.GalleryView, error)
	SubmitBooking(booking domain.Booking) (domain.Booking, error)
}

type Service struct {
	store  *store.Store
	origin string
}

func NewService(s *store.Store, origin string) SharingService {
	return &Service{
		store:  s,
		origin: strings.TrimRight(origin, "/"),
	}
}

// URL monta {origem}/{feature}/{publicId}
func (s *Service) URL(feature Feature, publicID string) string {
	return s.origin + "/" + string(feature) + "/" + publicID
}

func (s *Service) link(feature Feature, publicID string) *Link {
	return &Link{Feature: feature, PublicID: publicID, URL: s.URL(feature, publicID)}
}

func (s *Service) ClientPortalLink(clientID string) (*Link, error) {
	client, err := s.store.Clients().Get(clientID)
	if err != nil {
		return nil, err
	}
	return s.link(FeaturePortal, client.PortalID), nil
}

func (s *Service) ProjectGalleryLink(projectID string) (*Link, error) {
	project, err := s.store.Projects().Get(projectID)
	if err != nil {
		return nil, err
	}
	if !project.Shared() || project.PublicID == "" {
		return nil, ErrNotShared
	}
	return s.link(FeatureGallery, project.PublicID), nil
}

func (s *Service) PricelistLink(pricelistID string) (*Link, error) {
	pricelist, err := s.store.Pricelists().Get(pricelistID)
	if err != nil {
		return nil, err
	}
	if !pricelist.Shared() || pricelist.PublicID == "" {
		return nil, ErrNotShared
	}
	return s.link(FeaturePricelist, pricelist.PublicID), nil
}

// ResolvePortal devolve a visão do portal, sem comprovantes de pagamento
func (s *Service) ResolvePortal(portalID string) (*domain.PortalView, error) {
	client, err := s.store.Clients().FindByPublicID(portalID)
	if err != nil {
		return nil, err
	}

	view := client.PortalView()
	return &view, nil
}

func (s *Service) ResolveGallery(feature Feature, publicID string) (*domain.GalleryView, error) {
	var view domain.GalleryView

	switch feature {
	case FeatureGallery:
		project, err := s.store.Projects().FindByPublicID(publicID)
		if err != nil {
			return nil, err
		}
		view = project.GalleryView()
	case FeaturePricelist:
		pricelist, err := s.store.Pricelists().FindByPublicID(publicID)
		if err != nil {
			return nil, err
		}
		view = pricelist.GalleryView()
	default:
		return nil, store.ErrNotFound
	}

	return &view, nil
}

// SubmitBooking registra um agendamento vindo do formulário público. Origem, status
// e valores são sempre definidos pelo estúdio, nunca pelo visitante.
func (s *Service) SubmitBooking(booking domain.Booking) (domain.Booking, error) {
	booking.Source = domain.BookingSourcePublic
	booking.Status = domain.BookingStatusPending
	booking.PaymentStatus = domain.PaymentStatusPending
	booking.Amount = decimal.Zero
	booking.DownPayment = decimal.Zero

	created, err := s.store.Bookings().Add(booking)
	if err != nil {
		return domain.Booking{}, err
	}

	logrus.WithFields(logrus.Fields{
		"id":   created.ID,
		"date": created.Date,
	}).Info("Novo agendamento recebido pelo formulário público")

	return created, nil
}
