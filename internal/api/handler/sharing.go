package handler

import (
	"net/http"

	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/internal/usecases/sharing"
)

// ShareLink devolve o link público de uma entidade do painel
func ShareLink(resolve func(id string) (*sharing.Link, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		link, err := resolve(pathParam(r, "id"))
		if err != nil {
			handleServiceError(w, err, "Erro ao gerar link público")
			return
		}

		writeJSON(w, http.StatusOK, link)
	}
}

// GetPortal é a página pública do cliente; não exige sessão
func GetPortal(service sharing.SharingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := service.ResolvePortal(pathParam(r, "publicId"))
		if err != nil {
			handleServiceError(w, err, "Erro ao abrir portal do cliente")
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func GetGallery(service sharing.SharingService, feature sharing.Feature) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := service.ResolveGallery(feature, pathParam(r, "publicId"))
		if err != nil {
			handleServiceError(w, err, "Erro ao abrir galeria pública")
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func SubmitPublicBooking(service sharing.SharingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var booking domain.Booking
		if !decodeBody(w, r, &booking) {
			return
		}

		created, err := service.SubmitBooking(booking)
		if err != nil {
			handleServiceError(w, err, "Erro ao registrar agendamento")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}
