package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/internal/store"
	"github.com/vfg2006/mua-studio-api/internal/usecases/billing"
	"github.com/vfg2006/mua-studio-api/pkg/apiErrors"
	"github.com/vfg2006/mua-studio-api/pkg/exporting"
	"github.com/vfg2006/mua-studio-api/pkg/imaging"
)

const (
	ExportFormatCSV    = "csv"
	ExportFormatReport = "report"
)

// ExportableRecord é uma entidade persistida que também pode ser exportada
type ExportableRecord[T any] interface {
	store.Record[T]
	exporting.Tabular
}

func ListEntities[T any, PT store.Record[T]](repo *store.Repository[T, PT]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := repo.List()
		if err != nil {
			handleServiceError(w, err, fmt.Sprintf("Erro ao listar %s", repo.Kind()))
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

func GetEntity[T any, PT store.Record[T]](repo *store.Repository[T, PT]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := repo.Get(pathParam(r, "id"))
		if err != nil {
			handleServiceError(w, err, fmt.Sprintf("Erro ao buscar %s", repo.Kind()))
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

// CreateEntity grava a entidade e em seguida recalcula o estado de pagamento derivado
func CreateEntity[T any, PT store.Record[T]](repo *store.Repository[T, PT], billingService billing.BillingService, images imaging.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var record T
		if !decodeBody(w, r, &record) {
			return
		}

		created, err := addCompressing(repo, record, images)
		if err != nil {
			handleServiceError(w, err, fmt.Sprintf("Erro ao criar %s", repo.Kind()))
			return
		}

		id := PT(&created).Identity().ID
		result, err := refreshed(repo, billingService, id)
		if err != nil {
			handleServiceError(w, err, fmt.Sprintf("Erro ao recalcular %s", repo.Kind()))
			return
		}

		writeJSON(w, http.StatusCreated, result)
	}
}

// UpdateEntity aplica um patch parcial; campos ausentes no corpo são preservados
func UpdateEntity[T any, PT store.Record[T]](repo *store.Repository[T, PT], billingService billing.BillingService, images imaging.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathParam(r, "id")

		var patch store.Patch
		if !decodeBody(w, r, &patch) {
			return
		}

		if _, err := updateCompressing(repo, id, patch, images); err != nil {
			handleServiceError(w, err, fmt.Sprintf("Erro ao atualizar %s", repo.Kind()))
			return
		}

		result, err := refreshed(repo, billingService, id)
		if err != nil {
			handleServiceError(w, err, fmt.Sprintf("Erro ao recalcular %s", repo.Kind()))
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func DeleteEntity[T any, PT store.Record[T]](repo *store.Repository[T, PT]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := repo.Remove(pathParam(r, "id")); err != nil {
			handleServiceError(w, err, fmt.Sprintf("Erro ao remover %s", repo.Kind()))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ExportEntities exporta a coleção inteira em CSV (padrão) ou relatório em texto
func ExportEntities[T any, PT ExportableRecord[T]](repo *store.Repository[T, PT], title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := strings.ToLower(r.URL.Query().Get("format"))
		if format == "" {
			format = ExportFormatCSV
		}

		items, err := repo.List()
		if err != nil {
			handleServiceError(w, err, fmt.Sprintf("Erro ao exportar %s", repo.Kind()))
			return
		}

		rows := make([]PT, len(items))
		for i := range items {
			rows[i] = PT(&items[i])
		}

		var (
			body        []byte
			contentType string
			extension   string
		)

		switch format {
		case ExportFormatCSV:
			body, err = exporting.ToCSV(rows)
			contentType, extension = "text/csv; charset=utf-8", "csv"
		case ExportFormatReport:
			body, err = exporting.ToReport(title, rows, time.Now())
			contentType, extension = "text/plain; charset=utf-8", "txt"
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de exportação inválido. Valores aceitos: csv, report", nil)
			return
		}
		if err != nil {
			handleServiceError(w, err, fmt.Sprintf("Erro ao exportar %s", repo.Kind()))
			return
		}

		logrus.WithFields(logrus.Fields{
			"kind":   repo.Kind(),
			"format": format,
			"rows":   len(rows),
		}).Info("Exportação gerada")

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", repo.Kind().String()+"."+extension))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			logrus.WithError(err).Warn("Erro ao enviar exportação")
		}
	}
}

func refreshed[T any, PT store.Record[T]](repo *store.Repository[T, PT], billingService billing.BillingService, id string) (T, error) {
	if err := billingService.Refresh(repo.Kind(), id); err != nil {
		var zero T
		return zero, err
	}
	return repo.Get(id)
}
