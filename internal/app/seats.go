package app

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/cinex/api"
	"github.com/metinatakli/cinex/internal/domain"
	"github.com/oapi-codegen/runtime"
)

type seatTransition func(ctx context.Context, showtimeID int, label, holder string) (domain.SeatState, error)

func (app *Application) GetSeatMapHandler(w http.ResponseWriter, r *http.Request, showtimeID int) {
	states, err := app.seats.SeatMap(r.Context(), showtimeID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, app.toSeatMapResponse(showtimeID, states), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ResyncSeatMapHandler(w http.ResponseWriter, r *http.Request, showtimeID int) {
	states, err := app.seats.Resync(r.Context(), app.mustGetActor(r), showtimeID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("seat map resynchronized", "showtime_id", showtimeID, "seats", len(states))

	err = app.writeJSON(w, http.StatusOK, app.toSeatMapResponse(showtimeID, states), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) LockSeatHandler(w http.ResponseWriter, r *http.Request, showtimeID int, label string) {
	app.transitionSeat(w, r, showtimeID, label, app.seats.Lock)
}

func (app *Application) ConfirmSeatHandler(w http.ResponseWriter, r *http.Request, showtimeID int, label string) {
	app.transitionSeat(w, r, showtimeID, label, app.seats.Confirm)
}

func (app *Application) UnlockSeatHandler(w http.ResponseWriter, r *http.Request, showtimeID int, label string) {
	app.transitionSeat(w, r, showtimeID, label, app.seats.Unlock)
}

func (app *Application) transitionSeat(w http.ResponseWriter, r *http.Request, showtimeID int, label string, transition seatTransition) {
	state, err := transition(r.Context(), showtimeID, label, app.seatHolder(r))
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, app.toApiSeat(state), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// SeatUpdatesHandler upgrades to a websocket that receives a seatUpdate message for
// every state change of the showtime's seats. It is routed outside the generated
// server so the hijackable writer reaches the upgrader.
func (app *Application) SeatUpdatesHandler(w http.ResponseWriter, r *http.Request) {
	var showtimeID api.ShowtimeId

	err := runtime.BindStyledParameterWithOptions("simple", "showtimeId", chi.URLParam(r, "showtimeId"), &showtimeID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		app.invalidParamResponse(w, r, &api.InvalidParamFormatError{ParamName: "showtimeId", Err: err})
		return
	}

	if app.subscriber == nil {
		app.notFoundResponse(w, r)
		return
	}

	if _, err := app.showtimes.Get(r.Context(), showtimeID); err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	// the upgrader has already answered the request when this fails
	err = app.subscriber.Subscribe(w, r, showtimeID)
	if err != nil {
		app.contextGetLogger(r).Warn("websocket subscription failed", "showtime_id", showtimeID, "error", err)
	}
}

func (app *Application) toSeatMapResponse(showtimeID int, states []domain.SeatState) api.SeatMapResponse {
	resp := api.SeatMapResponse{
		ShowtimeId: showtimeID,
		Seats:      make([]api.Seat, 0, len(states)),
	}

	for _, state := range states {
		resp.Seats = append(resp.Seats, app.toApiSeat(state))
	}

	return resp
}

// toApiSeat never exposes the holder, it is a session identifier.
func (app *Application) toApiSeat(state domain.SeatState) api.Seat {
	seat := api.Seat{
		Label:  state.Label,
		Status: string(state.Status),
	}

	if state.Status == domain.SeatLocked && !state.LockedAt.IsZero() {
		lockedAt := state.LockedAt.UTC()
		seat.LockedAt = &lockedAt

		if ttl := app.seats.LockTTL(); ttl > 0 {
			expiresAt := lockedAt.Add(ttl)
			seat.ExpiresAt = &expiresAt
		}
	}

	return seat
}
