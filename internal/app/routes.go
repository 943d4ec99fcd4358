package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/cinex/api"
	"github.com/riandyrn/otelchi"
)

var _ api.ServerInterface = (*Application)(nil)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)

	// websocket upgrades need the unwrapped connection
	r.Get("/showtimes/{showtimeId}/seats/ws", app.SeatUpdatesHandler)

	r.Group(func(r chi.Router) {
		r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
		r.Use(middleware.Logger)
		r.Use(app.sessionManager.LoadAndSave)
		r.Use(app.authenticate)

		api.HandlerWithOptions(app, api.ChiServerOptions{
			BaseRouter:       r,
			Middlewares:      []api.MiddlewareFunc{app.requireAuthentication},
			ErrorHandlerFunc: app.invalidParamResponse,
		})
	})

	return r
}
