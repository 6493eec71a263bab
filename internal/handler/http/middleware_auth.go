package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/internal/service"
	"github.com/MKhiriev/go-budget-tracker/internal/utils"
)

const bearerScheme = "Bearer"

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization" header, resolves it to a
// user via [service.AuthService.Resolve] and stores that user in the request
// context with [utils.WithPrincipal] before delegating to the next handler.
//
// Every authentication failure, whatever its cause, is answered with
// HTTP 401 and the body {"detail": "Invalid token"}. The cause is only logged.
// Failures of the user lookup itself are answered with HTTP 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("authorization header rejected")
			unauthorized(w)
			return
		}

		ctx := r.Context()
		principal, err := h.services.AuthService.Resolve(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				log.Debug().Err(err).Msg("token rejected")
				unauthorized(w)
				return
			}
			log.Err(err).Msg("error occurred during token resolution")
			utils.WriteError(w, detailInternal, http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", bearerScheme)
	utils.WriteError(w, detailInvalidToken, http.StatusUnauthorized)
}

// getTokenFromAuthHeader extracts the token from an "Authorization" header
// value of the form "Bearer <token>". The scheme is case-insensitive.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, ok := strings.Cut(strings.TrimLeft(authHeader, " "), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
