package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/internal/usecases/authenticating"
	"github.com/vfg2006/mua-studio-api/pkg/apiErrors"
	"github.com/vfg2006/mua-studio-api/pkg/middleware"
)

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

// GetMe retorna o perfil do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		profile, err := service.GetProfile(session.UserID)
		if err != nil {
			handleServiceError(w, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// ChangePassword altera a senha do próprio usuário logado
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		var req ChangePasswordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.ChangePassword(session.UserID, req.CurrentPassword, req.NewPassword); err != nil {
			handleServiceError(w, err, "Erro ao alterar senha")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ResetPassword gera uma nova senha forte para o usuário logado e a devolve uma única vez
func ResetPassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		password, err := service.ResetPassword(session.Email)
		if err != nil {
			handleServiceError(w, err, "Erro ao gerar senha")
			return
		}

		logrus.WithField("user_id", session.UserID).Info("Senha redefinida")
		writeJSON(w, http.StatusOK, GeneratePasswordResponse{Password: password})
	}
}
