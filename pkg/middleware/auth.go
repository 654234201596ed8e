package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/newsbreak-ads-mcp/internal/domain"
	"github.com/vfg2006/newsbreak-ads-mcp/internal/usecases/authenticating"
	"github.com/vfg2006/newsbreak-ads-mcp/pkg/apiErrors"
	"github.com/vfg2006/newsbreak-ads-mcp/pkg/log"
)

type contextKey string

const (
	ContextKeyClient contextKey = "client"
)

// caminhos acessíveis sem token
var publicPaths = map[string]struct{}{
	"/healthcheck": {},
	"/metrics":     {},
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, public := publicPaths[r.URL.Path]; public || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) && authErr.Code != "" {
					code = authErr.Code
				}

				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":  r.URL.Path,
					"error": err.Error(),
				}).Warn("Token rejeitado")
				apiErrors.WriteError(w, code, "Invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClient, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientFromContext devolve as claims do cliente autenticado
func ClientFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyClient).(*domain.Claims)
	return claims, ok
}
