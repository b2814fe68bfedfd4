package handler

import (
	"net/http"

	"github.com/vfg2006/mua-studio-api/pkg/apiErrors"
	"github.com/vfg2006/mua-studio-api/pkg/imaging"
)

type CompressRequest struct {
	Image    string `json:"image"`
	MaxWidth int    `json:"maxWidth,omitempty"`
	Quality  int    `json:"quality,omitempty"`
}

type CompressResponse struct {
	Image         string `json:"image"`
	OriginalBytes int    `json:"originalBytes"`
	Bytes         int    `json:"bytes"`
}

// CompressImage reduz uma imagem antes do upload; defaults vêm da configuração
func CompressImage(defaults imaging.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CompressRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.Image == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Imagem não informada", nil)
			return
		}

		opts := defaults
		if req.MaxWidth > 0 {
			opts.MaxWidth = req.MaxWidth
		}
		if req.Quality > 0 {
			opts.Quality = req.Quality
		}

		compressed, err := imaging.Compress(req.Image, opts)
		if err != nil {
			handleServiceError(w, err, "Erro ao comprimir imagem")
			return
		}

		writeJSON(w, http.StatusOK, CompressResponse{
			Image:         compressed,
			OriginalBytes: len(req.Image),
			Bytes:         len(compressed),
		})
	}
}
