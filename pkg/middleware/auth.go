package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/internal/usecases/authenticating"
	"github.com/vfg2006/mua-studio-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// Rotas que não exigem sessão: login, cadastro e as páginas públicas compartilhadas por link
var (
	publicPaths    = []string{"/healthcheck", "/v1/login", "/v1/register"}
	publicPrefixes = []string{"/portal/", "/gallery/", "/pricelist/", "/public/"}
)

func isPublicPath(path string) bool {
	for _, public := range publicPaths {
		if path == public {
			return true
		}
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// SessionAuthenticator é o subconjunto do autenticador usado pelo middleware
type SessionAuthenticator interface {
	CurrentSession(tokenString string) (*domain.Session, error)
}

var _ SessionAuthenticator = (authenticating.Authenticator)(nil)

func AuthMiddleware(authService SessionAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := BearerToken(r)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			session, err := authService.CurrentSession(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) {
					code = authErr.Code
				}
				apiErrors.WriteError(w, code, err.Error(), nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extrai o token do cabeçalho Authorization
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}
	return tokenString, true
}

// SessionFromContext devolve a sessão colocada no contexto pelo AuthMiddleware
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(ContextKeyUser).(*domain.Session)
	return session, ok
}
