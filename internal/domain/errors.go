package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindNotFound           ErrorKind = "not_found"
	KindScheduleConflict   ErrorKind = "schedule_conflict"
	KindCapacityExceeded   ErrorKind = "capacity_exceeded"
	KindSeatsBelowBooked   ErrorKind = "seats_below_booked"
	KindImmutableState     ErrorKind = "immutable_state"
	KindSeatConflict       ErrorKind = "seat_conflict"
	KindSeatUnavailable    ErrorKind = "seat_unavailable"
	KindInsufficientSeats  ErrorKind = "insufficient_seats"
	KindInsufficientStock  ErrorKind = "insufficient_stock"
	KindInvalidQuantity    ErrorKind = "invalid_quantity"
	KindUnauthorized       ErrorKind = "unauthorized"
	KindAlreadyCancelled   ErrorKind = "already_cancelled"
	KindHasBookings        ErrorKind = "has_bookings"
	KindCountMismatch      ErrorKind = "count_mismatch"
	KindMissingCinema      ErrorKind = "missing_cinema"
	KindTransactionAborted ErrorKind = "transaction_aborted"
)

// Sentinels for errors.Is checks. Two *Error values match when their kinds match.
var (
	ErrValidation         = &Error{Kind: KindValidation}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrScheduleConflict   = &Error{Kind: KindScheduleConflict}
	ErrCapacityExceeded   = &Error{Kind: KindCapacityExceeded}
	ErrSeatsBelowBooked   = &Error{Kind: KindSeatsBelowBooked}
	ErrImmutableState     = &Error{Kind: KindImmutableState}
	ErrSeatConflict       = &Error{Kind: KindSeatConflict}
	ErrSeatUnavailable    = &Error{Kind: KindSeatUnavailable}
	ErrInsufficientSeats  = &Error{Kind: KindInsufficientSeats}
	ErrInsufficientStock  = &Error{Kind: KindInsufficientStock}
	ErrInvalidQuantity    = &Error{Kind: KindInvalidQuantity}
	ErrUnauthorized       = &Error{Kind: KindUnauthorized}
	ErrAlreadyCancelled   = &Error{Kind: KindAlreadyCancelled}
	ErrHasBookings        = &Error{Kind: KindHasBookings}
	ErrCountMismatch      = &Error{Kind: KindCountMismatch}
	ErrMissingCinema      = &Error{Kind: KindMissingCinema}
	ErrTransactionAborted = &Error{Kind: KindTransactionAborted}
)

// Error is the machine-readable failure returned by every core operation.
type Error struct {
	Kind    ErrorKind
	Message string

	// Conflict is set for schedule conflicts and names the interval that collided.
	Conflict *Interval

	// Seat names the offending seat label for seat conflicts.
	Seat string

	cause error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NewValidationError(format string, args ...any) *Error {
	return newError(KindValidation, format, args...)
}

// NewPaymentReusedError reports a card payment reference that already settled another order.
func NewPaymentReusedError() *Error {
	return newError(KindValidation, "payment reference has already been used")
}

func NewNotFoundError(entity string, id any) *Error {
	return newError(KindNotFound, "%s %v not found", entity, id)
}

func NewScheduleConflictError(conflict Interval) *Error {
	err := newError(KindScheduleConflict,
		"hall %d is already scheduled from %s to %s",
		conflict.HallID,
		conflict.Start.Format("2006-01-02 15:04"),
		conflict.End.Format("2006-01-02 15:04"))
	err.Conflict = &conflict

	return err
}

func NewCapacityExceededError(requested, capacity int) *Error {
	return newError(KindCapacityExceeded, "total seats %d exceed hall capacity %d", requested, capacity)
}

func NewSeatsBelowBookedError(requested, committed int) *Error {
	return newError(KindSeatsBelowBooked, "total seats %d is below the %d seats already booked", requested, committed)
}

func NewImmutableStateError(status ShowtimeStatus) *Error {
	return newError(KindImmutableState, "showtime is %s and can no longer be modified", status)
}

func NewSeatConflictError(label string) *Error {
	err := newError(KindSeatConflict, "seat %s is already booked", label)
	err.Seat = label

	return err
}

func NewSeatUnavailableError(label string, status SeatStatus) *Error {
	err := newError(KindSeatUnavailable, "seat %s is %s", label, status)
	err.Seat = label

	return err
}

func NewInsufficientSeatsError(requested, available int) *Error {
	return newError(KindInsufficientSeats, "requested %d seats but only %d are available", requested, available)
}

func NewInsufficientStockError(name string, requested, onHand int) *Error {
	return newError(KindInsufficientStock, "requested %d of %s but only %d left", requested, name, onHand)
}

func NewInvalidQuantityError(quantity int) *Error {
	return newError(KindInvalidQuantity, "quantity must be greater than zero, got %d", quantity)
}

func NewUnauthorizedError(format string, args ...any) *Error {
	return newError(KindUnauthorized, format, args...)
}

func NewAlreadyCancelledError(entity string, id any) *Error {
	return newError(KindAlreadyCancelled, "%s %v is already cancelled", entity, id)
}

func NewHasBookingsError(booked int) *Error {
	return newError(KindHasBookings, "showtime has %d booked seats, cancel it instead", booked)
}

func NewCountMismatchError(seats, tickets int) *Error {
	return newError(KindCountMismatch, "%d seats selected for %d tickets", seats, tickets)
}

func NewMissingCinemaError(showtimeID int) *Error {
	return newError(KindMissingCinema, "showtime %d is not linked to a cinema", showtimeID)
}

// NewTransactionAbortedError wraps an infrastructure failure raised inside an atomic unit.
func NewTransactionAbortedError(cause error) *Error {
	return &Error{
		Kind:    KindTransactionAborted,
		Message: "the operation was aborted, no changes were made",
		cause:   cause,
	}
}

// AsError extracts the domain error from err. Non-domain errors are reported as
// transaction_aborted so callers always get a kind.
func AsError(err error) *Error {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr
	}

	return NewTransactionAbortedError(err)
}
