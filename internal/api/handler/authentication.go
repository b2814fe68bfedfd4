package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/internal/usecases/authenticating"
	"github.com/vfg2006/mua-studio-api/pkg/apiErrors"
	"github.com/vfg2006/mua-studio-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.Email == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios", nil)
			return
		}

		result, err := service.SignIn(req.Email, req.Password)
		if err != nil {
			handleServiceError(w, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// Register cria a conta do painel para a dona do estúdio
func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authenticating.SignUpRequest
		if !decodeBody(w, r, &req) {
			return
		}

		profile, err := service.SignUp(req)
		if err != nil {
			handleServiceError(w, err, "Erro ao criar conta")
			return
		}

		logrus.WithField("user_id", profile.ID).Info("Nova conta criada")
		writeJSON(w, http.StatusCreated, profile)
	}
}

// Logout revoga o token usado na requisição
func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := middleware.BearerToken(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
			return
		}

		if err := service.SignOut(token); err != nil {
			handleServiceError(w, err, "Erro ao encerrar sessão")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
