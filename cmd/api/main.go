package main

import (
	"context"
	"io"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/infrastructure/repository"
	"github.com/vfg2006/mua-studio-api/infrastructure/storage"
	"github.com/vfg2006/mua-studio-api/internal/api"
	"github.com/vfg2006/mua-studio-api/internal/api/handler"
	"github.com/vfg2006/mua-studio-api/internal/config"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/internal/scheduler"
	"github.com/vfg2006/mua-studio-api/internal/store"
	"github.com/vfg2006/mua-studio-api/internal/usecases/authenticating"
	"github.com/vfg2006/mua-studio-api/internal/usecases/billing"
	"github.com/vfg2006/mua-studio-api/internal/usecases/promoting"
	"github.com/vfg2006/mua-studio-api/internal/usecases/rostering"
	"github.com/vfg2006/mua-studio-api/internal/usecases/seeding"
	"github.com/vfg2006/mua-studio-api/internal/usecases/sharing"
	"github.com/vfg2006/mua-studio-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend, err := storage.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o backend de armazenamento")
	}
	defer closeBackend(backend)

	issuer, err := store.NewIssuer(cfg.App.NodeID)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar gerador de IDs")
	}

	dataStore, err := store.New(
		backend,
		store.WithIssuer(issuer),
		store.WithQuotaLimit(cfg.Quota.LimitBytes),
		store.WithCorruptionHandler(func(kind domain.Kind, err error) {
			logrus.WithError(err).WithField("kind", kind).Error("Coleção corrompida, tratada como vazia")
		}),
	)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o store")
	}

	billingService := billing.NewService(dataStore, nil)
	authenticator := authenticating.NewService(repository.NewUserRepository(backend), cfg)
	promotionService := promoting.NewService(dataStore)
	rosterService := rostering.NewService(dataStore)
	sharingService := sharing.NewService(dataStore, cfg.Share.PublicOrigin)

	if cfg.Seed.DemoData {
		summary, err := seeding.NewService(dataStore, billingService).SeedIfEmpty()
		if err != nil {
			logrus.WithError(err).Error("Erro ao gravar dados de demonstração")
		} else {
			logrus.WithField("seeded", summary.Seeded).Info("Dados de demonstração verificados")
		}
	}

	// Inicializa os agendadores
	paymentStatusSyncService := scheduler.NewPaymentStatusSyncService(billingService, cfg)
	storageQuotaWatchService := scheduler.NewStorageQuotaWatchService(dataStore, cfg)

	if err := paymentStatusSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de status de pagamento")
	} else {
		logrus.Info("Agendador de status de pagamento iniciado com sucesso")
	}

	if err := storageQuotaWatchService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o monitor de cota de armazenamento")
	} else {
		logrus.Info("Monitor de cota de armazenamento iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Store:         dataStore,
		Authenticator: authenticator,
		Billing:       billingService,
		Promotions:    promotionService,
		Roster:        rosterService,
		Sharing:       sharingService,
		CronJobs: handler.CronJobServices{
			PaymentStatusSyncService: paymentStatusSyncService,
			StorageQuotaWatchService: storageQuotaWatchService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func closeBackend(backend io.Closer) {
	if err := backend.Close(); err != nil {
		logrus.WithError(err).Error("Erro ao fechar o backend de armazenamento")
	}
}
