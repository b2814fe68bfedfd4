package handler

import (
	"net/http"

	"github.com/vfg2006/mua-studio-api/internal/domain"
)

// UsageReporter é satisfeito por *store.Store
type UsageReporter interface {
	Usage() (domain.StorageUsage, error)
}

// GetStorageUsage devolve o uso estimado do armazenamento para o aviso de 80% da UI
func GetStorageUsage(reporter UsageReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		usage, err := reporter.Usage()
		if err != nil {
			handleServiceError(w, err, "Erro ao calcular uso do armazenamento")
			return
		}

		writeJSON(w, http.StatusOK, usage)
	}
}
