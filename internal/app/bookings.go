package app

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/google/uuid"
	"github.com/metinatakli/cinex/api"
	"github.com/metinatakli/cinex/internal/domain"
	"github.com/metinatakli/cinex/internal/service"
)

func (app *Application) ReserveSeatsHandler(w http.ResponseWriter, r *http.Request) {
	var input api.ReserveRequest

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

	booking, err := app.bookings.Reserve(r.Context(), app.mustGetActor(r), service.ReserveInput{
		ShowtimeID: input.ShowtimeId,
		Seats:      input.Seats,
		AdultCount: input.AdultCount,
		ChildCount: input.ChildCount,
	})
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/bookings/%s", booking.ID))

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(booking), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingHandler(w http.ResponseWriter, r *http.Request, bookingID uuid.UUID) {
	booking, err := app.bookings.Get(r.Context(), app.mustGetActor(r), bookingID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CancelBookingHandler cancels a booking. When the booking was bought through a checkout
// the whole order is cancelled with it.
func (app *Application) CancelBookingHandler(w http.ResponseWriter, r *http.Request, bookingID uuid.UUID) {
	result, err := app.cancellations.CancelBooking(r.Context(), app.mustGetActor(r), bookingID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	resp := api.CancellationResponse{
		Booking: toBookingResponse(&result.Booking),
	}

	if result.Order != nil {
		order := toOrderResponse(result.Order)
		resp.Order = &order
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingResponse(booking *domain.Booking) api.BookingResponse {
	return api.BookingResponse{
		Id:         booking.ID,
		UserId:     booking.UserID,
		ShowtimeId: booking.ShowtimeID,
		Seats:      slices.Clone(booking.Seats),
		AdultCount: booking.AdultCount,
		ChildCount: booking.ChildCount,
		TotalPrice: booking.TotalPrice,
		Canceled:   booking.Canceled,
		MovieTitle: booking.MovieTitle,
		HallName:   booking.HallName,
		StartTime:  booking.StartTime,
		CreatedAt:  booking.CreatedAt,
		CanceledAt: booking.CanceledAt,
	}
}
