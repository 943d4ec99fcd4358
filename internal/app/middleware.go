package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/metinatakli/cinex/api"
	"github.com/metinatakli/cinex/internal/domain"
	"go.opentelemetry.io/otel/trace"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// requestLogger stores a logger carrying the request attributes in the context.
func (app *Application) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := app.logger.With(
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"uri", r.URL.RequestURI(),
		)

		if spanCtx := trace.SpanContextFromContext(r.Context()); spanCtx.HasTraceID() {
			logger = logger.With("trace_id", spanCtx.TraceID().String())
		}

		ctx := context.WithValue(r.Context(), loggerContextKey, logger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate resolves the caller from a bearer token or, failing that, from the
// session. Anonymous requests pass through without an actor.
func (app *Application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		authorizationHeader := r.Header.Get("Authorization")
		if authorizationHeader != "" {
			token, found := strings.CutPrefix(authorizationHeader, "Bearer ")
			if !found {
				app.invalidAuthenticationTokenResponse(w, r)
				return
			}

			actor, err := app.parseToken(token)
			if err != nil {
				app.contextGetLogger(r).Warn("rejected bearer token", "error", err)
				app.invalidAuthenticationTokenResponse(w, r)
				return
			}

			next.ServeHTTP(w, contextSetActor(r, actor))
			return
		}

		if app.sessionManager != nil {
			userId := app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
			if userId != 0 {
				role := domain.Role(app.sessionManager.GetString(r.Context(), SessionKeyRole.String()))
				if role == "" {
					role = domain.RoleCustomer
				}

				r = contextSetActor(r, domain.Actor{UserID: userId, Role: role})
			}
		}

		next.ServeHTTP(w, r)
	})
}

// requireAuthentication rejects anonymous callers of operations that declare the
// bearerAuth security scheme. Public operations pass through.
func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, secured := r.Context().Value(api.BearerAuthScopes).([]string); !secured {
			next.ServeHTTP(w, r)
			return
		}

		if _, ok := contextGetActor(r); !ok {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type identityClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (app *Application) parseToken(raw string) (domain.Actor, error) {
	if app.config.JWT.Secret == "" {
		return domain.Actor{}, errors.New("bearer tokens are not accepted, no secret configured")
	}

	var claims identityClaims

	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return []byte(app.config.JWT.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Actor{}, err
	}

	userId, err := strconv.Atoi(claims.Subject)
	if err != nil || userId < 1 {
		return domain.Actor{}, fmt.Errorf("invalid subject %q", claims.Subject)
	}

	role := domain.Role(claims.Role)
	switch role {
	case domain.RoleAdmin, domain.RoleCustomer:
	case "":
		role = domain.RoleCustomer
	default:
		return domain.Actor{}, fmt.Errorf("unknown role %q", claims.Role)
	}

	return domain.Actor{UserID: userId, Role: role}, nil
}
