package app

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/metinatakli/cinex/api"
	"github.com/metinatakli/cinex/internal/domain"
	"github.com/metinatakli/cinex/internal/service"
)

const defaultScheduleWindow = 7 * 24 * time.Hour

func (app *Application) CreateShowtimeHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowtimeRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showtime, err := app.showtimes.Create(r.Context(), app.mustGetActor(r), service.CreateShowtimeInput{
		MovieID:    input.MovieId,
		HallID:     input.HallId,
		CinemaID:   input.CinemaId,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Price:      input.Price,
		TotalSeats: input.TotalSeats,
	})
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/showtimes/%d", showtime.ID))

	err = app.writeJSON(w, http.StatusCreated, toShowtimeResponse(showtime), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtimeHandler(w http.ResponseWriter, r *http.Request, showtimeID int) {
	showtime, err := app.showtimes.Get(r.Context(), showtimeID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateShowtimeHandler(w http.ResponseWriter, r *http.Request, showtimeID int) {
	var input api.UpdateShowtimeRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	patch := domain.ShowtimePatch{
		MovieID:    input.MovieId,
		HallID:     input.HallId,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		TotalSeats: input.TotalSeats,
		Price:      input.Price,
	}

	if input.Status != nil {
		status := domain.ShowtimeStatus(*input.Status)
		patch.Status = &status
	}

	showtime, err := app.showtimes.Update(r.Context(), app.mustGetActor(r), showtimeID, patch)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelShowtimeHandler(w http.ResponseWriter, r *http.Request, showtimeID int) {
	showtime, err := app.showtimes.Cancel(r.Context(), app.mustGetActor(r), showtimeID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShowtimeHandler(w http.ResponseWriter, r *http.Request, showtimeID int) {
	err := app.showtimes.Delete(r.Context(), app.mustGetActor(r), showtimeID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetHallScheduleHandler lists the scheduled showtimes of a hall overlapping [from, to).
// Without parameters it covers the next seven days.
func (app *Application) GetHallScheduleHandler(w http.ResponseWriter, r *http.Request, hallID int, params api.GetHallScheduleHandlerParams) {
	from, to, err := scheduleWindow(params)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showtimes, err := app.showtimes.HallSchedule(r.Context(), hallID, from, to)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	resp := api.HallScheduleResponse{
		HallId:    hallID,
		From:      from,
		To:        to,
		Showtimes: make([]api.ShowtimeResponse, 0, len(showtimes)),
	}

	for i := range showtimes {
		resp.Showtimes = append(resp.Showtimes, toShowtimeResponse(&showtimes[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func scheduleWindow(params api.GetHallScheduleHandlerParams) (time.Time, time.Time, error) {
	from := time.Now().UTC()
	if params.From != nil {
		from = *params.From
	}

	to := from.Add(defaultScheduleWindow)
	if params.To != nil {
		to = *params.To
	}

	if !from.Before(to) {
		return time.Time{}, time.Time{}, errors.New("from must be before to")
	}

	return from, to, nil
}

func toShowtimeResponse(showtime *domain.Showtime) api.ShowtimeResponse {
	bookedSeats := slices.Clone(showtime.BookedSeats)
	if bookedSeats == nil {
		bookedSeats = []string{}
	}

	return api.ShowtimeResponse{
		Id:             showtime.ID,
		MovieId:        showtime.MovieID,
		HallId:         showtime.HallID,
		CinemaId:       showtime.CinemaID,
		StartTime:      showtime.StartTime,
		EndTime:        showtime.EndTime,
		Status:         string(showtime.Status),
		TotalSeats:     showtime.TotalSeats,
		SeatsAvailable: showtime.SeatsAvailable,
		BookedSeats:    bookedSeats,
		Price:          showtime.Price,
	}
}

func toApiInterval(interval domain.Interval) *api.Interval {
	return &api.Interval{
		ShowtimeId: interval.ShowtimeID,
		HallId:     interval.HallID,
		Start:      interval.Start,
		End:        interval.End,
	}
}
