// Package scheduler contém os serviços de agendamento que mantêm o estado derivado em dia
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/internal/config"
	"github.com/vfg2006/mua-studio-api/internal/usecases/billing"
)

type PaymentStatusSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// PaymentStatusSyncService reavalia periodicamente o status de pagamento de todos os registros,
// já que "overdue" depende apenas da passagem do tempo
type PaymentStatusSyncService struct {
	scheduler           *gocron.Scheduler
	billingService      billing.BillingService
	config              PaymentStatusSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *billing.RefreshSummary
}

func NewPaymentStatusSyncService(billingService billing.BillingService, cfg *config.Config) *PaymentStatusSyncService {
	syncConfig := PaymentStatusSyncConfig{
		CronSchedule: cfg.PaymentStatusSync.CronSchedule, // Default: 1h da manhã todos os dias
		SyncEnabled:  cfg.PaymentStatusSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de status de pagamento carregada")

	return &PaymentStatusSyncService{
		scheduler:      gocron.NewScheduler(time.Local),
		billingService: billingService,
		config:         syncConfig,
	}
}

func (s *PaymentStatusSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de status de pagamento desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de status de pagamento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncPaymentStatuses(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de status de pagamento")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de status de pagamento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de status de pagamento")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncPaymentStatuses executa uma rodada completa. Rodadas concorrentes são ignoradas.
func (s *PaymentStatusSyncService) SyncPaymentStatuses() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização de status de pagamento já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de status de pagamento")

	summary, err := s.billingService.RefreshAll()
	if err != nil {
		return err
	}

	s.syncMutex.Lock()
	s.lastSummary = summary
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"checked": summary.Checked,
		"updated": summary.Updated,
	}).Info("Sincronização de status de pagamento concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização de status de pagamento
func (s *PaymentStatusSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de status de pagamento já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de status de pagamento")
	go func() {
		if err := s.SyncPaymentStatuses(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual de status de pagamento")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *PaymentStatusSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastSummary != nil {
		status["last_checked"] = s.lastSummary.Checked
		status["last_updated"] = s.lastSummary.Updated
	}
	return status
}
