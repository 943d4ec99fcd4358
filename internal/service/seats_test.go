package service

import (
	"time"

	"github.com/metinatakli/cinex/internal/domain"
	"github.com/metinatakli/cinex/internal/memstore"
	"github.com/shopspring/decimal"
)

func (s *ServiceTestSuite) TestLockConfirmUnlock() {
	showtime := s.scheduleShowtime(24, 100, 1000)

	state, err := s.seats.Lock(s.ctx, showtime.ID, "A1", "session-1")
	s.Require().NoError(err)
	s.Equal(domain.SeatLocked, state.Status)
	s.Equal("session-1", state.Holder)

	_, err = s.seats.Lock(s.ctx, showtime.ID, "A1", "session-2")
	domainErr := s.requireKind(err, domain.KindSeatUnavailable)
	s.Equal("A1", domainErr.Seat)

	_, err = s.seats.Confirm(s.ctx, showtime.ID, "A1", "session-2")
	s.requireKind(err, domain.KindUnauthorized)

	_, err = s.seats.Unlock(s.ctx, showtime.ID, "A1", "session-2")
	s.requireKind(err, domain.KindUnauthorized)

	state, err = s.seats.Confirm(s.ctx, showtime.ID, "A1", "session-1")
	s.Require().NoError(err)
	s.Equal(domain.SeatBooked, state.Status)

	_, err = s.seats.Unlock(s.ctx, showtime.ID, "A1", "session-1")
	s.requireKind(err, domain.KindUnauthorized)

	_, err = s.seats.Lock(s.ctx, showtime.ID, "A2", "session-1")
	s.Require().NoError(err)

	state, err = s.seats.Unlock(s.ctx, showtime.ID, "A2", "session-1")
	s.Require().NoError(err)
	s.Equal(domain.SeatAvailable, state.Status)

	s.Equal([]domain.SeatUpdate{
		{ShowtimeID: showtime.ID, SeatLabel: "A1", Status: domain.SeatLocked},
		{ShowtimeID: showtime.ID, SeatLabel: "A1", Status: domain.SeatBooked},
		{ShowtimeID: showtime.ID, SeatLabel: "A2", Status: domain.SeatLocked},
		{ShowtimeID: showtime.ID, SeatLabel: "A2", Status: domain.SeatAvailable},
	}, s.broadcaster.Updates())
}

func (s *ServiceTestSuite) TestLockFailures() {
	tests := []struct {
		name     string
		setup    func() int
		label    string
		holder   string
		wantKind domain.ErrorKind
	}{
		{
			name: "should reject seats committed by a booking",
			setup: func() int {
				showtime := s.scheduleShowtime(24, 100, 1000)
				_, err := s.bookings.Reserve(s.ctx, other, ReserveInput{ShowtimeID: showtime.ID, Seats: []string{"A1"}, AdultCount: 1})
				s.Require().NoError(err)
				return showtime.ID
			},
			label:    "A1",
			holder:   "session-1",
			wantKind: domain.KindSeatUnavailable,
		},
		{
			name:     "should reject seats outside the layout",
			setup:    func() int { return s.scheduleShowtime(24, 100, 1000).ID },
			label:    "Z1",
			holder:   "session-1",
			wantKind: domain.KindNotFound,
		},
		{
			name:     "should require a holder",
			setup:    func() int { return s.scheduleShowtime(24, 100, 1000).ID },
			label:    "A1",
			wantKind: domain.KindValidation,
		},
		{
			name:     "should fail for unknown showtime",
			setup:    func() int { return 404 },
			label:    "A1",
			holder:   "session-1",
			wantKind: domain.KindNotFound,
		},
		{
			name: "should reject cancelled showtimes",
			setup: func() int {
				showtime := s.scheduleShowtime(24, 100, 1000)
				_, err := s.scheduler.Cancel(s.ctx, admin, showtime.ID)
				s.Require().NoError(err)
				return showtime.ID
			},
			label:    "A1",
			holder:   "session-1",
			wantKind: domain.KindImmutableState,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			_, err := s.seats.Lock(s.ctx, tt.setup(), tt.label, tt.holder)
			s.requireKind(err, tt.wantKind)
		})
	}
}

func (s *ServiceTestSuite) TestExpiredLocks() {
	showtime := s.scheduleShowtime(24, 100, 1000)

	_, err := s.seats.Lock(s.ctx, showtime.ID, "B2", "session-1")
	s.Require().NoError(err)

	s.clock.Advance(testLockTTL)

	seatMap, err := s.seats.SeatMap(s.ctx, showtime.ID)
	s.Require().NoError(err)
	s.Equal(domain.SeatAvailable, findSeat(seatMap, "B2").Status)

	_, err = s.seats.Confirm(s.ctx, showtime.ID, "B2", "session-1")
	s.requireKind(err, domain.KindUnauthorized)

	state, err := s.seats.Lock(s.ctx, showtime.ID, "B2", "session-2")
	s.Require().NoError(err)
	s.Equal("session-2", state.Holder)

	s.clock.Advance(testLockTTL - time.Second)

	_, err = s.seats.Confirm(s.ctx, showtime.ID, "B2", "session-2")
	s.NoError(err)
}

func (s *ServiceTestSuite) TestSeatMapView() {
	showtime := s.scheduleShowtime(24, 100, 1000)

	_, err := s.bookings.Reserve(s.ctx, other, ReserveInput{ShowtimeID: showtime.ID, Seats: []string{"A2"}, AdultCount: 1})
	s.Require().NoError(err)

	_, err = s.seats.Lock(s.ctx, showtime.ID, "A3", "session-1")
	s.Require().NoError(err)

	seatMap, err := s.seats.SeatMap(s.ctx, showtime.ID)
	s.Require().NoError(err)
	s.Len(seatMap, 100)

	s.Equal("A1", seatMap[0].Label)
	s.Equal(domain.SeatAvailable, seatMap[0].Status)
	s.Equal(domain.SeatBooked, seatMap[1].Status)
	s.Equal(domain.SeatLocked, seatMap[2].Status)
	s.Equal("session-1", seatMap[2].Holder)
	s.Equal("J10", seatMap[99].Label)
}

func (s *ServiceTestSuite) TestSeatMapBuildsLazily() {
	showtime := s.store.AddShowtime(domain.Showtime{
		MovieID: testMovieID, HallID: smallHallID, CinemaID: testCinemaID, Status: domain.ShowtimeScheduled,
		StartTime: testStart.Add(time.Hour), EndTime: testStart.Add(3 * time.Hour),
		TotalSeats: 2, SeatsAvailable: 1, BookedSeats: []string{"A2"}, Price: decimal.NewFromInt(1000),
	})

	states, err := s.seatStore.Get(s.ctx, showtime.ID)
	s.Require().NoError(err)
	s.Empty(states)

	seatMap, err := s.seats.SeatMap(s.ctx, showtime.ID)
	s.Require().NoError(err)
	s.Equal([]domain.SeatState{
		{Label: "A1", Status: domain.SeatAvailable},
		{Label: "A2", Status: domain.SeatBooked},
	}, seatMap)

	s.Equal(domain.SeatBooked, s.seatStatus(showtime.ID, "A2"))
}

func (s *ServiceTestSuite) TestLockBuildsMissingSeatMap() {
	showtime := s.store.AddShowtime(domain.Showtime{
		MovieID: testMovieID, HallID: smallHallID, CinemaID: testCinemaID, Status: domain.ShowtimeScheduled,
		StartTime: testStart.Add(time.Hour), EndTime: testStart.Add(3 * time.Hour),
		TotalSeats: 2, SeatsAvailable: 2, Price: decimal.NewFromInt(1000),
	})

	state, err := s.seats.Lock(s.ctx, showtime.ID, "A1", "session-1")
	s.Require().NoError(err)
	s.Equal(domain.SeatLocked, state.Status)
}

func (s *ServiceTestSuite) TestResyncPreservesHeldSeats() {
	showtime := s.scheduleShowtime(24, 100, 1000)

	_, err := s.seats.Lock(s.ctx, showtime.ID, "A1", "session-1")
	s.Require().NoError(err)

	_, err = s.seats.Lock(s.ctx, showtime.ID, "A4", "session-1")
	s.Require().NoError(err)
	_, err = s.seats.Confirm(s.ctx, showtime.ID, "A4", "session-1")
	s.Require().NoError(err)

	_, err = s.seats.Resync(s.ctx, customer, showtime.ID)
	s.requireKind(err, domain.KindUnauthorized)

	// seats A5 to A10 are taken out of the layout
	hall := memstore.GridHall(testHallID, testCinemaID, 10, 10)
	for i := range hall.Seats {
		if hall.Seats[i].Row == 1 && hall.Seats[i].Col > 4 {
			hall.Seats[i].Active = false
		}
	}
	s.catalog.AddHall(hall)

	seatMap, err := s.seats.Resync(s.ctx, admin, showtime.ID)
	s.Require().NoError(err)
	s.Len(seatMap, 94)

	s.Equal(domain.SeatLocked, s.seatStatus(showtime.ID, "A1"))
	s.Equal(domain.SeatBooked, s.seatStatus(showtime.ID, "A4"))
	s.Equal(domain.SeatAvailable, s.seatStatus(showtime.ID, "A2"))
	s.Empty(s.seatStatus(showtime.ID, "A5"), "available seats removed from the layout are dropped")
}

func findSeat(states []domain.SeatState, label string) domain.SeatState {
	for _, state := range states {
		if state.Label == label {
			return state
		}
	}

	return domain.SeatState{}
}
