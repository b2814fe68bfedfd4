package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/internal/config"
	"github.com/vfg2006/mua-studio-api/internal/domain"
)

// UsageReporter é satisfeito por *store.Store
type UsageReporter interface {
	Usage() (domain.StorageUsage, error)
}

type StorageQuotaWatchConfig struct {
	CronSchedule string
	WatchEnabled bool
}

// StorageQuotaWatchService acompanha o uso do armazenamento e avisa quando se aproxima do teto
type StorageQuotaWatchService struct {
	scheduler     *gocron.Scheduler
	usageReporter UsageReporter
	config        StorageQuotaWatchConfig
	checkMutex    sync.Mutex
	lastCheckedAt time.Time
	lastUsage     *domain.StorageUsage
	lastLevel     domain.StorageLevel
}

func NewStorageQuotaWatchService(usageReporter UsageReporter, cfg *config.Config) *StorageQuotaWatchService {
	watchConfig := StorageQuotaWatchConfig{
		CronSchedule: cfg.StorageQuotaWatch.CronSchedule, // Default: de hora em hora
		WatchEnabled: cfg.StorageQuotaWatch.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": watchConfig.CronSchedule,
	}).Info("Configuração do monitor de armazenamento carregada")

	return &StorageQuotaWatchService{
		scheduler:     gocron.NewScheduler(time.Local),
		usageReporter: usageReporter,
		config:        watchConfig,
		lastLevel:     domain.StorageLevelOK,
	}
}

func (s *StorageQuotaWatchService) Start(ctx context.Context) error {
	if !s.config.WatchEnabled {
		logrus.Info("Monitor de armazenamento desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando monitor de armazenamento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.CheckUsage(); err != nil {
			logrus.WithError(err).Error("Erro ao verificar uso do armazenamento")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar monitor de armazenamento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando monitor de armazenamento")
		s.scheduler.Stop()
	}()

	return nil
}

// CheckUsage calcula o uso atual e registra aviso quando o nível muda para warning ou critical
func (s *StorageQuotaWatchService) CheckUsage() (domain.StorageUsage, error) {
	usage, err := s.usageReporter.Usage()
	if err != nil {
		return domain.StorageUsage{}, err
	}

	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	s.lastCheckedAt = time.Now()
	s.lastUsage = &usage

	fields := logrus.Fields{
		"storage_used":       usage.UsedBytes,
		"storage_limit":      usage.LimitBytes,
		"storage_percentage": usage.Percentage,
	}

	if usage.Level != s.lastLevel {
		switch usage.Level {
		case domain.StorageLevelCritical:
			logrus.WithFields(fields).Error("Armazenamento no limite, novas gravações que aumentem o uso serão recusadas")
		case domain.StorageLevelWarning:
			logrus.WithFields(fields).Warn("Armazenamento acima de 80% do limite")
		default:
			logrus.WithFields(fields).Info("Uso do armazenamento voltou ao normal")
		}
		s.lastLevel = usage.Level
		return usage, nil
	}

	logrus.WithFields(fields).Debug("Uso do armazenamento verificado")
	return usage, nil
}

// GetStatus retorna o status atual do monitor
func (s *StorageQuotaWatchService) GetStatus() map[string]any {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	status := map[string]any{
		"watch_enabled":   s.config.WatchEnabled,
		"watch_cron":      s.config.CronSchedule,
		"last_checked_at": s.lastCheckedAt,
		"last_level":      s.lastLevel,
	}
	if s.lastUsage != nil {
		status["last_usage"] = *s.lastUsage
	}
	return status
}
