package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/internal/api/handler"
	"github.com/vfg2006/mua-studio-api/internal/api/handler/router"
	"github.com/vfg2006/mua-studio-api/internal/config"
	"github.com/vfg2006/mua-studio-api/internal/store"
	"github.com/vfg2006/mua-studio-api/internal/usecases/authenticating"
	"github.com/vfg2006/mua-studio-api/internal/usecases/billing"
	"github.com/vfg2006/mua-studio-api/internal/usecases/promoting"
	"github.com/vfg2006/mua-studio-api/internal/usecases/rostering"
	"github.com/vfg2006/mua-studio-api/internal/usecases/sharing"
	"github.com/vfg2006/mua-studio-api/pkg/imaging"
	"github.com/vfg2006/mua-studio-api/pkg/middleware"
)

// Services agrupa os usecases expostos pela API
type Services struct {
	Store         *store.Store
	Authenticator authenticating.Authenticator
	Billing       billing.BillingService
	Promotions    promoting.PromotionService
	Roster        rostering.RosterService
	Sharing       sharing.SharingService
	CronJobs      handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com a cadeia de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	images := imaging.Options{
		MaxWidth: cfg.Imaging.MaxWidth,
		Quality:  cfg.Imaging.Quality,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Store)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Entities(services.Store, services.Billing, images)...),
		router.WithRoutes(handler.Storage(services.Store)...),
		router.WithRoutes(handler.Payments(services.Billing)...),
		router.WithRoutes(handler.Promotions(services.Promotions)...),
		router.WithRoutes(handler.Team(services.Roster)...),
		router.WithRoutes(handler.Sharing(services.Sharing)...),
		router.WithRoutes(handler.Media(services.Store, images)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Store == nil || services.Authenticator == nil {
		return nil, fmt.Errorf("store e autenticador são obrigatórios")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
