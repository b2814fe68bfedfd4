package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypePaymentStatus = "payment-status"
	CronJobTypeStorageQuota  = "storage-quota"
	CronJobTypeAll           = "all"
)

// ManualSyncer é um agendador que aceita execução manual
type ManualSyncer interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// QuotaChecker é o monitor de armazenamento; a verificação é rápida e roda de forma síncrona
type QuotaChecker interface {
	CheckUsage() (domain.StorageUsage, error)
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	PaymentStatusSyncService ManualSyncer
	StorageQuotaWatchService QuotaChecker
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := pathParam(r, "type")
		logrus.WithField("job", cronType).Info("Execução manual de cron solicitada")

		switch cronType {
		case CronJobTypePaymentStatus:
			if services.PaymentStatusSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de status de pagamento não disponível", nil)
				return
			}
			services.PaymentStatusSyncService.TriggerManualSync()

		case CronJobTypeStorageQuota:
			if services.StorageQuotaWatchService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Monitor de armazenamento não disponível", nil)
				return
			}
			if _, err := services.StorageQuotaWatchService.CheckUsage(); err != nil {
				handleServiceError(w, err, "Erro ao verificar uso do armazenamento")
				return
			}

		case CronJobTypeAll:
			if services.PaymentStatusSyncService != nil {
				services.PaymentStatusSyncService.TriggerManualSync()
			}
			if services.StorageQuotaWatchService != nil {
				if _, err := services.StorageQuotaWatchService.CheckUsage(); err != nil {
					handleServiceError(w, err, "Erro ao verificar uso do armazenamento")
					return
				}
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: payment-status, storage-quota, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.PaymentStatusSyncService != nil {
			status[CronJobTypePaymentStatus] = services.PaymentStatusSyncService.GetStatus()
		}
		if services.StorageQuotaWatchService != nil {
			status[CronJobTypeStorageQuota] = services.StorageQuotaWatchService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
