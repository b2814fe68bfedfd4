package handler

import (
	"net/http"

	"github.com/vfg2006/mua-studio-api/internal/api/handler/router"
	"github.com/vfg2006/mua-studio-api/internal/store"
	"github.com/vfg2006/mua-studio-api/internal/usecases/authenticating"
	"github.com/vfg2006/mua-studio-api/internal/usecases/billing"
	"github.com/vfg2006/mua-studio-api/internal/usecases/promoting"
	"github.com/vfg2006/mua-studio-api/internal/usecases/rostering"
	"github.com/vfg2006/mua-studio-api/internal/usecases/sharing"
	"github.com/vfg2006/mua-studio-api/pkg/imaging"
)

func Healthcheck(reporter UsageReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(reporter),
		},
	}
}

// Entities registra o CRUD das sete coleções. Exportações ficam em /v1/exports/{kind},
// já que o httprouter não aceita rota estática ao lado de /:id.
func Entities(s *store.Store, billingService billing.BillingService, images imaging.Options) []router.Route {
	routes := make([]router.Route, 0)
	routes = append(routes, entityRoutes("/v1/clients", s.Clients(), billingService, images, "Clientes")...)
	routes = append(routes, entityRoutes("/v1/projects", s.Projects(), billingService, images, "Projetos")...)
	routes = append(routes, entityRoutes("/v1/invoices", s.Invoices(), billingService, images, "Faturas")...)
	routes = append(routes, entityRoutes("/v1/bookings", s.Bookings(), billingService, images, "Agendamentos")...)
	routes = append(routes, entityRoutes("/v1/pricelists", s.Pricelists(), billingService, images, "Tabela de preços")...)
	routes = append(routes, entityRoutes("/v1/promotions", s.Promotions(), billingService, images, "Promoções")...)
	routes = append(routes, entityRoutes("/v1/team", s.Team(), billingService, images, "Equipe")...)
	return routes
}

func entityRoutes[T any, PT ExportableRecord[T]](
	path string,
	repo *store.Repository[T, PT],
	billingService billing.BillingService,
	images imaging.Options,
	title string,
) []router.Route {
	return []router.Route{
		{Path: path, Method: http.MethodGet, Handler: ListEntities(repo)},
		{Path: path, Method: http.MethodPost, Handler: CreateEntity(repo, billingService, images)},
		{Path: path + "/:id", Method: http.MethodGet, Handler: GetEntity(repo)},
		{Path: path + "/:id", Method: http.MethodPut, Handler: UpdateEntity(repo, billingService, images)},
		{Path: path + "/:id", Method: http.MethodPatch, Handler: UpdateEntity(repo, billingService, images)},
		{Path: path + "/:id", Method: http.MethodDelete, Handler: DeleteEntity(repo)},
		{Path: "/v1/exports/" + repo.Kind().String(), Method: http.MethodGet, Handler: ExportEntities(repo, title)},
	}
}

func Storage(reporter UsageReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/storage/usage",
			Method:  http.MethodGet,
			Handler: GetStorageUsage(reporter),
		},
	}
}

func Payments(service billing.BillingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients/:id/payments",
			Method:  http.MethodPost,
			Handler: RecordClientPayment(service),
		},
		{
			Path:    "/v1/projects/:id/payments",
			Method:  http.MethodPost,
			Handler: RecordProjectPayment(service),
		},
		{
			Path:    "/v1/bookings/:id/payments",
			Method:  http.MethodPost,
			Handler: RecordBookingPayment(service),
		},
		{
			Path:    "/v1/invoices/:id/payments",
			Method:  http.MethodPost,
			Handler: RecordInvoicePayment(service),
		},
	}
}

func Promotions(service promoting.PromotionService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/promotion-codes/quote",
			Method:  http.MethodPost,
			Handler: QuotePromotion(service),
		},
		{
			Path:    "/v1/promotion-codes/redeem",
			Method:  http.MethodPost,
			Handler: RedeemPromotion(service),
		},
	}
}

func Team(service rostering.RosterService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/team/:id/jobs",
			Method:  http.MethodPost,
			Handler: RecordCompletedJob(service),
		},
		{
			Path:    "/v1/roster/active",
			Method:  http.MethodGet,
			Handler: ListActiveTeam(service),
		},
	}
}

// Sharing registra os links públicos (com sessão) e as páginas públicas (sem sessão)
func Sharing(service sharing.SharingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients/:id/share",
			Method:  http.MethodGet,
			Handler: ShareLink(service.ClientPortalLink),
		},
		{
			Path:    "/v1/projects/:id/share",
			Method:  http.MethodGet,
			Handler: ShareLink(service.ProjectGalleryLink),
		},
		{
			Path:    "/v1/pricelists/:id/share",
			Method:  http.MethodGet,
			Handler: ShareLink(service.PricelistLink),
		},
		{
			Path:    "/portal/:publicId",
			Method:  http.MethodGet,
			Handler: GetPortal(service),
		},
		{
			Path:    "/gallery/:publicId",
			Method:  http.MethodGet,
			Handler: GetGallery(service, sharing.FeatureGallery),
		},
		{
			Path:    "/pricelist/:publicId",
			Method:  http.MethodGet,
			Handler: GetGallery(service, sharing.FeaturePricelist),
		},
		{
			Path:    "/public/bookings",
			Method:  http.MethodPost,
			Handler: SubmitPublicBooking(service),
		},
	}
}

func Media(s *store.Store, defaults imaging.Options) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/media/compress",
			Method:  http.MethodPost,
			Handler: CompressImage(defaults),
		},
		{
			Path:    "/v1/clients/:id/compress-images",
			Method:  http.MethodPost,
			Handler: CompressEntityImages(s.Clients(), defaults),
		},
		{
			Path:    "/v1/projects/:id/compress-images",
			Method:  http.MethodPost,
			Handler: CompressEntityImages(s.Projects(), defaults),
		},
		{
			Path:    "/v1/pricelists/:id/compress-images",
			Method:  http.MethodPost,
			Handler: CompressEntityImages(s.Pricelists(), defaults),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:    "/v1/me/password",
			Method:  http.MethodPut,
			Handler: ChangePassword(service),
		},
		{
			Path:    "/v1/me/reset-password",
			Method:  http.MethodPost,
			Handler: ResetPassword(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
