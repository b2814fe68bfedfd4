package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/internal/store"
	"github.com/vfg2006/mua-studio-api/internal/usecases/authenticating"
	"github.com/vfg2006/mua-studio-api/internal/usecases/billing"
	"github.com/vfg2006/mua-studio-api/internal/usecases/promoting"
	"github.com/vfg2006/mua-studio-api/internal/usecases/rostering"
	"github.com/vfg2006/mua-studio-api/internal/usecases/sharing"
	"github.com/vfg2006/mua-studio-api/pkg/apiErrors"
	"github.com/vfg2006/mua-studio-api/pkg/imaging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeBody decodifica o corpo JSON e responde 400 em caso de erro
func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		logrus.WithError(err).Debug("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// handleServiceError traduz os erros tipados dos usecases para a resposta padronizada da API
func handleServiceError(w http.ResponseWriter, err error, message string) {
	var (
		quotaErr     *store.QuotaError
		storeErr     *store.StoreError
		billingErr   *billing.BillingError
		promotionErr *promoting.PromotionError
		authErr      *authenticating.AuthError
	)

	switch {
	case errors.As(err, &quotaErr):
		apiErrors.WriteError(w, quotaErr.Code(), quotaErr.Error(), map[string]any{
			"kind":           quotaErr.Kind,
			"requiredBytes":  quotaErr.RequiredBytes,
			"availableBytes": quotaErr.AvailableBytes,
			"limitBytes":     quotaErr.LimitBytes,
		})

	case errors.As(err, &storeErr):
		if storeErr.Code == apiErrors.ErrDatabaseOperation || storeErr.Code == apiErrors.ErrInternalServer {
			logrus.WithError(err).Error(message)
		}
		apiErrors.WriteError(w, storeErr.Code, storeErr.Error(), map[string]any{
			"kind": storeErr.Kind,
			"id":   storeErr.ID,
		})

	case errors.As(err, &billingErr):
		apiErrors.WriteError(w, billingErr.Code, billingErr.Error(), nil)

	case errors.As(err, &promotionErr):
		apiErrors.WriteError(w, promotionErr.Code, promotionErr.Error(), nil)

	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)

	case errors.Is(err, sharing.ErrNotShared), errors.Is(err, store.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)

	case errors.Is(err, rostering.ErrInvalidRating),
		errors.Is(err, imaging.ErrNotDataURI),
		errors.Is(err, imaging.ErrUnsupportedFormat):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		logrus.WithError(err).Error(message)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}
