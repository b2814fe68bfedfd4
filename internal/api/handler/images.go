package handler

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/internal/store"
	"github.com/vfg2006/mua-studio-api/pkg/imaging"
)

type CompressImagesResponse struct {
	SavedBytes int `json:"savedBytes"`
	Record     any `json:"record"`
}

func carriesImages[T any]() bool {
	var zero T
	_, ok := any(&zero).(domain.ImageCarrier)
	return ok
}

// compressImages comprime no lugar as imagens embutidas de record e devolve os bytes economizados.
// Falhas de compressão são só registradas: a gravação segue com o que foi possível reduzir.
func compressImages(record any, opts imaging.Options) int {
	carrier, ok := record.(domain.ImageCarrier)
	if !ok {
		return 0
	}

	saved, err := imaging.CompressAll(carrier, opts)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao comprimir imagens embutidas")
	}
	return saved
}

// addCompressing grava o registro e, se o teto de armazenamento for atingido,
// tenta mais uma vez com as imagens comprimidas
func addCompressing[T any, PT store.Record[T]](repo *store.Repository[T, PT], record T, opts imaging.Options) (T, error) {
	created, err := repo.Add(record)
	if !store.IsQuotaExceeded(err) {
		return created, err
	}

	saved := compressImages(&record, opts)
	if saved <= 0 {
		return created, err
	}

	logrus.WithFields(logrus.Fields{
		"kind":        repo.Kind(),
		"saved_bytes": saved,
	}).Info("Teto de armazenamento atingido, gravando com imagens comprimidas")

	return repo.Add(record)
}

// updateCompressing é o equivalente de addCompressing para patches
func updateCompressing[T any, PT store.Record[T]](repo *store.Repository[T, PT], id string, patch store.Patch, opts imaging.Options) (T, error) {
	updated, err := repo.Update(id, patch)
	if !store.IsQuotaExceeded(err) || !carriesImages[T]() {
		return updated, err
	}

	saved := 0
	updated, retryErr := repo.UpdateWith(id, patch, func(record *T) error {
		saved = compressImages(record, opts)
		return nil
	})
	if saved <= 0 {
		return updated, err
	}

	logrus.WithFields(logrus.Fields{
		"kind":        repo.Kind(),
		"id":          id,
		"saved_bytes": saved,
	}).Info("Teto de armazenamento atingido, atualizando com imagens comprimidas")

	return updated, retryErr
}

// CompressEntityImages recomprime as imagens já gravadas de uma entidade para liberar espaço
func CompressEntityImages[T any, PT store.Record[T]](repo *store.Repository[T, PT], defaults imaging.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		saved := 0
		updated, err := repo.Mutate(pathParam(r, "id"), func(record *T) error {
			carrier, ok := any(record).(domain.ImageCarrier)
			if !ok {
				return nil
			}

			var err error
			saved, err = imaging.CompressAll(carrier, defaults)
			return err
		})
		if err != nil {
			handleServiceError(w, err, fmt.Sprintf("Erro ao comprimir imagens de %s", repo.Kind()))
			return
		}

		writeJSON(w, http.StatusOK, CompressImagesResponse{
			SavedBytes: saved,
			Record:     updated,
		})
	}
}
