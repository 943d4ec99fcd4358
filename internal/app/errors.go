package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinex/api"
	"github.com/metinatakli/cinex/internal/domain"
	appvalidator "github.com/metinatakli/cinex/internal/validator"
)

const (
	ErrInternalServer      = "The server encountered a problem and could not process your request"
	ErrNotFound            = "The requested resource not found"
	ErrMethodNotAllowed    = "The requested method is not supported for this resource"
	ErrUnauthorizedAccess  = "You must be authenticated to access this resource"
	ErrInvalidToken        = "Invalid or expired authentication token"
	ErrFailedValidation    = "One or more fields are invalid"
	ErrServiceNotAvailable = "The operation could not be completed, please try again"
)

func (app *Application) logError(r *http.Request, err error) {
	app.contextGetLogger(r).Error(err.Error())
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.writeError(w, r, status, api.ErrorResponse{Message: message})
}

func (app *Application) writeError(w http.ResponseWriter, r *http.Request, status int, resp api.ErrorResponse) {
	resp.RequestId = middleware.GetReqID(r.Context())
	resp.Timestamp = time.Now()

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// invalidParamResponse answers requests whose path or query parameters the generated
// server could not bind.
func (app *Application) invalidParamResponse(w http.ResponseWriter, r *http.Request, err error) {
	var formatErr *api.InvalidParamFormatError
	if !errors.As(err, &formatErr) {
		app.badRequestResponse(w, r, err)
		return
	}

	app.badRequestResponse(w, r, fmt.Errorf("%s %s", formatErr.ParamName, paramFormat(formatErr.ParamName)))
}

func paramFormat(name string) string {
	switch name {
	case "bookingId", "orderId", "purchaseId":
		return "must be a valid UUID"
	case "from", "to":
		return "must be an RFC 3339 timestamp"
	default:
		return "must be a positive integer"
	}
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthorizedAccess)
}

func (app *Application) invalidAuthenticationTokenResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	app.errorResponse(w, r, http.StatusUnauthorized, ErrInvalidToken)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Kind:             string(domain.KindValidation),
		Message:          ErrFailedValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: make([]api.ValidationError, 0, len(validationErrs)),
	}

	for _, fieldErr := range validationErrs {
		resp.ValidationErrors = append(resp.ValidationErrors, api.ValidationError{
			Field: fieldPath(fieldErr),
			Issue: appvalidator.ValidationMessage(fieldErr),
		})
	}

	err = app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// fieldPath drops the struct name from the namespace: "CheckoutRequest.items[0].seats" -> "items[0].seats".
func fieldPath(fieldErr validator.FieldError) string {
	_, path, found := strings.Cut(fieldErr.Namespace(), ".")
	if !found {
		return fieldErr.Field()
	}

	return path
}

// domainErrorResponse translates an error returned by a service into its HTTP form.
func (app *Application) domainErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	domainErr := domain.AsError(err)
	status := statusForKind(domainErr.Kind)

	logger := app.contextGetLogger(r)
	if status >= http.StatusInternalServerError {
		logger.Error("operation aborted", "kind", domainErr.Kind, "error", errors.Unwrap(domainErr))
	} else {
		logger.Info("operation rejected", "kind", domainErr.Kind, "reason", domainErr.Error())
	}

	resp := api.ErrorResponse{
		Kind:    string(domainErr.Kind),
		Message: domainErr.Error(),
		Seat:    domainErr.Seat,
	}

	if domainErr.Kind == domain.KindTransactionAborted {
		resp.Message = ErrServiceNotAvailable
	}

	if domainErr.Conflict != nil {
		resp.Conflict = toApiInterval(*domainErr.Conflict)
	}

	app.writeError(w, r, status, resp)
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation, domain.KindCountMismatch, domain.KindInvalidQuantity,
		domain.KindCapacityExceeded, domain.KindSeatsBelowBooked, domain.KindMissingCinema:
		return http.StatusUnprocessableEntity
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUnauthorized:
		return http.StatusForbidden
	case domain.KindScheduleConflict, domain.KindSeatConflict, domain.KindSeatUnavailable,
		domain.KindAlreadyCancelled, domain.KindHasBookings, domain.KindImmutableState,
		domain.KindInsufficientSeats, domain.KindInsufficientStock:
		return http.StatusConflict
	default:
		return http.StatusServiceUnavailable
	}
}
