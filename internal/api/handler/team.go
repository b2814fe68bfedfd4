package handler

import (
	"net/http"

	"github.com/vfg2006/mua-studio-api/internal/usecases/rostering"
)

type CompletedJobRequest struct {
	// Rating 0 registra o trabalho sem avaliação
	Rating float64 `json:"rating"`
}

func RecordCompletedJob(service rostering.RosterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CompletedJobRequest
		if !decodeBody(w, r, &req) {
			return
		}

		member, err := service.RecordCompletedJob(pathParam(r, "id"), req.Rating)
		if err != nil {
			handleServiceError(w, err, "Erro ao registrar trabalho concluído")
			return
		}

		writeJSON(w, http.StatusOK, member)
	}
}

func ListActiveTeam(service rostering.RosterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := service.ActiveMembers()
		if err != nil {
			handleServiceError(w, err, "Erro ao listar equipe ativa")
			return
		}

		writeJSON(w, http.StatusOK, members)
	}
}
