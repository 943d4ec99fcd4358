package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinex/internal/domain"
	"github.com/shopspring/decimal"
)

func (s *ServiceTestSuite) TestReserveTwoAdultSeats() {
	showtime := s.scheduleShowtime(24, 100, 1000)

	booking, err := s.bookings.Reserve(s.ctx, customer, ReserveInput{
		ShowtimeID: showtime.ID,
		Seats:      []string{"A1", "A2"},
		AdultCount: 2,
	})
	s.Require().NoError(err)

	s.True(decimal.NewFromInt(2000).Equal(booking.TotalPrice), "got total %s", booking.TotalPrice)
	s.Equal(customerID, booking.UserID)
	s.Equal("The Long Night", booking.MovieTitle)
	s.Equal("Hall 1", booking.HallName)
	s.Equal(showtime.StartTime, booking.StartTime)

	stored := s.showtime(showtime.ID)
	s.Equal(98, stored.SeatsAvailable)
	s.ElementsMatch([]string{"A1", "A2"}, stored.BookedSeats)
	s.assertSeatInvariant(showtime.ID)

	s.Equal(domain.SeatBooked, s.seatStatus(showtime.ID, "A1"))
	s.Equal(domain.SeatBooked, s.seatStatus(showtime.ID, "A2"))
	s.Contains(s.broadcaster.Updates(), domain.SeatUpdate{ShowtimeID: showtime.ID, SeatLabel: "A1", Status: domain.SeatBooked})
}

func (s *ServiceTestSuite) TestReserveChildFare() {
	showtime := s.scheduleShowtime(24, 100, 1000)

	booking, err := s.bookings.Reserve(s.ctx, customer, ReserveInput{
		ShowtimeID: showtime.ID,
		Seats:      []string{"D4", "D5", "D6"},
		AdultCount: 1,
		ChildCount: 2,
	})
	s.Require().NoError(err)

	s.True(decimal.NewFromInt(2000).Equal(booking.TotalPrice), "got total %s", booking.TotalPrice)
}

func (s *ServiceTestSuite) TestReserveFailures() {
	tests := []struct {
		name     string
		setup    func() int
		input    func(showtimeID int) ReserveInput
		wantKind domain.ErrorKind
		wantSeat string
	}{
		{
			name: "should fail naming the seat that is already booked",
			setup: func() int {
				showtime := s.scheduleShowtime(24, 100, 1000)
				_, err := s.bookings.Reserve(s.ctx, other, ReserveInput{ShowtimeID: showtime.ID, Seats: []string{"A1"}, AdultCount: 1})
				s.Require().NoError(err)
				return showtime.ID
			},
			input: func(id int) ReserveInput {
				return ReserveInput{ShowtimeID: id, Seats: []string{"A3", "A1"}, AdultCount: 2}
			},
			wantKind: domain.KindSeatConflict,
			wantSeat: "A1",
		},
		{
			name:  "should fail for unknown showtime",
			setup: func() int { return 404 },
			input: func(id int) ReserveInput {
				return ReserveInput{ShowtimeID: id, Seats: []string{"A1"}, AdultCount: 1}
			},
			wantKind: domain.KindNotFound,
		},
		{
			name:  "should report an unknown showtime before empty seats",
			setup: func() int { return 404 },
			input: func(id int) ReserveInput {
				return ReserveInput{ShowtimeID: id}
			},
			wantKind: domain.KindNotFound,
		},
		{
			name:  "should report an unknown showtime before negative counts",
			setup: func() int { return 404 },
			input: func(id int) ReserveInput {
				return ReserveInput{ShowtimeID: id, Seats: []string{"A1", "A1"}, AdultCount: -1}
			},
			wantKind: domain.KindNotFound,
		},
		{
			name:  "should fail for empty seats on a known showtime",
			setup: func() int { return s.scheduleShowtime(24, 100, 1000).ID },
			input: func(id int) ReserveInput {
				return ReserveInput{ShowtimeID: id}
			},
			wantKind: domain.KindValidation,
		},
		{
			name: "should fail when the showtime lacks a cinema",
			setup: func() int {
				showtime := s.store.AddShowtime(domain.Showtime{
					MovieID: testMovieID, HallID: testHallID, Status: domain.ShowtimeScheduled,
					StartTime: testStart.Add(time.Hour), EndTime: testStart.Add(3 * time.Hour),
					TotalSeats: 10, SeatsAvailable: 10, Price: decimal.NewFromInt(1000),
				})
				return showtime.ID
			},
			input: func(id int) ReserveInput {
				return ReserveInput{ShowtimeID: id, Seats: []string{"A1"}, AdultCount: 1}
			},
			wantKind: domain.KindMissingCinema,
		},
		{
			name:  "should fail when seat count does not match ticket count",
			setup: func() int { return s.scheduleShowtime(24, 100, 1000).ID },
			input: func(id int) ReserveInput {
				return ReserveInput{ShowtimeID: id, Seats: []string{"A1", "A2"}, AdultCount: 1}
			},
			wantKind: domain.KindCountMismatch,
		},
		{
			name:  "should fail when not enough seats are left",
			setup: func() int { return s.scheduleShowtime(24, 2, 1000).ID },
			input: func(id int) ReserveInput {
				return ReserveInput{ShowtimeID: id, Seats: []string{"A1", "A2", "A3"}, AdultCount: 3}
			},
			wantKind: domain.KindInsufficientSeats,
		},
		{
			name:  "should fail for seats outside the hall layout",
			setup: func() int { return s.scheduleShowtime(24, 100, 1000).ID },
			input: func(id int) ReserveInput {
				return ReserveInput{ShowtimeID: id, Seats: []string{"Z99"}, AdultCount: 1}
			},
			wantKind: domain.KindValidation,
		},
		{
			name:  "should fail for duplicate seats",
			setup: func() int { return s.scheduleShowtime(24, 100, 1000).ID },
			input: func(id int) ReserveInput {
				return ReserveInput{ShowtimeID: id, Seats: []string{"A1", "A1"}, AdultCount: 2}
			},
			wantKind: domain.KindValidation,
		},
		{
			name: "should fail for a cancelled showtime",
			setup: func() int {
				showtime := s.scheduleShowtime(24, 100, 1000)
				_, err := s.scheduler.Cancel(s.ctx, admin, showtime.ID)
				s.Require().NoError(err)
				return showtime.ID
			},
			input: func(id int) ReserveInput {
				return ReserveInput{ShowtimeID: id, Seats: []string{"A1"}, AdultCount: 1}
			},
			wantKind: domain.KindImmutableState,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			showtimeID := tt.setup()
			before, _ := s.store.Showtime(showtimeID)
			bookingsBefore, _, _ := s.store.Counts()

			_, err := s.bookings.Reserve(s.ctx, customer, tt.input(showtimeID))
			domainErr := s.requireKind(err, tt.wantKind)

			if tt.wantSeat != "" {
				s.Equal(tt.wantSeat, domainErr.Seat)
				s.Contains(domainErr.Message, tt.wantSeat)
			}

			after, _ := s.store.Showtime(showtimeID)
			s.Equal(before, after, "a failed reservation must not change the showtime")

			bookingsAfter, _, _ := s.store.Counts()
			s.Equal(bookingsBefore, bookingsAfter)
		})
	}
}

func (s *ServiceTestSuite) TestReserveThenReleaseRestoresShowtime() {
	showtime := s.scheduleShowtime(24, 100, 1000)

	_, err := s.bookings.Reserve(s.ctx, other, ReserveInput{ShowtimeID: showtime.ID, Seats: []string{"A5"}, AdultCount: 1})
	s.Require().NoError(err)

	before := s.showtime(showtime.ID)

	booking, err := s.bookings.Reserve(s.ctx, customer, ReserveInput{
		ShowtimeID: showtime.ID,
		Seats:      []string{"A1", "A2"},
		AdultCount: 1,
		ChildCount: 1,
	})
	s.Require().NoError(err)

	released, err := s.bookings.Release(s.ctx, customer, booking.ID)
	s.Require().NoError(err)
	s.True(released.Canceled)

	after := s.showtime(showtime.ID)
	s.Equal(before.BookedSeats, after.BookedSeats)
	s.Equal(before.SeatsAvailable, after.SeatsAvailable)
	s.assertSeatInvariant(showtime.ID)

	s.Equal(domain.SeatAvailable, s.seatStatus(showtime.ID, "A1"))
	s.Equal(domain.SeatBooked, s.seatStatus(showtime.ID, "A5"))

	stored, ok := s.store.Booking(booking.ID)
	s.Require().True(ok)
	s.True(stored.Canceled)
	s.NotNil(stored.CanceledAt)
}

func (s *ServiceTestSuite) TestReleaseIsNotRepeatable() {
	showtime := s.scheduleShowtime(24, 100, 1000)

	booking, err := s.bookings.Reserve(s.ctx, customer, ReserveInput{ShowtimeID: showtime.ID, Seats: []string{"E1"}, AdultCount: 1})
	s.Require().NoError(err)

	_, err = s.bookings.Release(s.ctx, other, booking.ID)
	s.requireKind(err, domain.KindUnauthorized)

	_, err = s.bookings.Release(s.ctx, customer, booking.ID)
	s.Require().NoError(err)

	before := s.showtime(showtime.ID)

	_, err = s.bookings.Release(s.ctx, customer, booking.ID)
	s.requireKind(err, domain.KindAlreadyCancelled)

	s.Equal(before, s.showtime(showtime.ID))

	_, err = s.bookings.Release(s.ctx, customer, uuid.New())
	s.requireKind(err, domain.KindNotFound)
}

func (s *ServiceTestSuite) TestConcurrentReservationsOfOneSeat() {
	showtime := s.scheduleShowtime(24, 100, 1000)

	const attempts = 20

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
		others    []error
	)

	for i := range attempts {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := s.bookings.Reserve(s.ctx, domain.Actor{UserID: 100 + i}, ReserveInput{
				ShowtimeID: showtime.ID,
				Seats:      []string{"F7"},
				AdultCount: 1,
			})

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrSeatConflict):
				conflicts++
			default:
				others = append(others, err)
			}
		}()
	}

	wg.Wait()

	s.Empty(others)
	s.Equal(1, successes)
	s.Equal(attempts-1, conflicts)

	stored := s.showtime(showtime.ID)
	s.Equal([]string{"F7"}, stored.BookedSeats)
	s.Equal(99, stored.SeatsAvailable)
}

func (s *ServiceTestSuite) TestReserveAbortsOnInfrastructureFailure() {
	showtime := s.scheduleShowtime(24, 100, 1000)
	s.store.FailOn("bookings.Create", errors.New("connection reset by peer"))

	_, err := s.bookings.Reserve(s.ctx, customer, ReserveInput{ShowtimeID: showtime.ID, Seats: []string{"A1"}, AdultCount: 1})
	s.requireKind(err, domain.KindTransactionAborted)
	s.ErrorContains(err, "aborted")

	stored := s.showtime(showtime.ID)
	s.Empty(stored.BookedSeats)
	s.Equal(100, stored.SeatsAvailable)
	s.NotEqual(domain.SeatBooked, s.seatStatus(showtime.ID, "A1"))
}

func (s *ServiceTestSuite) TestGetBooking() {
	showtime := s.scheduleShowtime(24, 100, 1000)

	booking, err := s.bookings.Reserve(s.ctx, customer, ReserveInput{ShowtimeID: showtime.ID, Seats: []string{"A1"}, AdultCount: 1})
	s.Require().NoError(err)

	got, err := s.bookings.Get(s.ctx, customer, booking.ID)
	s.Require().NoError(err)
	s.Equal(booking.ID, got.ID)

	_, err = s.bookings.Get(s.ctx, admin, booking.ID)
	s.NoError(err)

	_, err = s.bookings.Get(s.ctx, other, booking.ID)
	s.requireKind(err, domain.KindUnauthorized)
}
