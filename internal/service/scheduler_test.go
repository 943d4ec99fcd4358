package service

import (
	"time"

	"github.com/metinatakli/cinex/internal/domain"
	"github.com/shopspring/decimal"
)

func (s *ServiceTestSuite) TestCreateShowtime() {
	start := testStart.Add(24 * time.Hour)

	showtime, err := s.scheduler.Create(s.ctx, admin, CreateShowtimeInput{
		MovieID:    testMovieID,
		HallID:     testHallID,
		CinemaID:   testCinemaID,
		StartTime:  start,
		Price:      decimal.NewFromInt(1000),
		TotalSeats: 100,
	})
	s.Require().NoError(err)

	s.NotZero(showtime.ID)
	s.Equal(domain.ShowtimeScheduled, showtime.Status)
	s.Equal(100, showtime.SeatsAvailable)
	s.Equal(start.Add(120*time.Minute), showtime.EndTime)
	s.Empty(showtime.BookedSeats)

	stored := s.showtime(showtime.ID)
	s.Equal(showtime.EndTime, stored.EndTime)

	states, err := s.seatStore.Get(s.ctx, showtime.ID)
	s.Require().NoError(err)
	s.Len(states, 100, "seat map should be initialized from the hall layout")
}

func (s *ServiceTestSuite) TestCreateShowtimeWithExplicitEnd() {
	start := testStart.Add(24 * time.Hour)
	end := start.Add(3 * time.Hour)

	showtime, err := s.scheduler.Create(s.ctx, admin, CreateShowtimeInput{
		MovieID:    testMovieID,
		HallID:     testHallID,
		CinemaID:   testCinemaID,
		StartTime:  start,
		EndTime:    &end,
		Price:      decimal.NewFromInt(1000),
		TotalSeats: 10,
	})
	s.Require().NoError(err)
	s.Equal(end, showtime.EndTime)
}

func (s *ServiceTestSuite) TestCreateShowtimeFailures() {
	future := testStart.Add(24 * time.Hour)
	before := future.Add(-time.Minute)

	valid := func() CreateShowtimeInput {
		return CreateShowtimeInput{
			MovieID:    testMovieID,
			HallID:     testHallID,
			CinemaID:   testCinemaID,
			StartTime:  future,
			Price:      decimal.NewFromInt(1000),
			TotalSeats: 50,
		}
	}

	tests := []struct {
		name     string
		actor    domain.Actor
		modify   func(in *CreateShowtimeInput)
		wantKind domain.ErrorKind
	}{
		{
			name:     "should fail for non-admin actors",
			actor:    customer,
			wantKind: domain.KindUnauthorized,
		},
		{
			name:     "should fail for negative price",
			actor:    admin,
			modify:   func(in *CreateShowtimeInput) { in.Price = decimal.NewFromInt(-1) },
			wantKind: domain.KindValidation,
		},
		{
			name:     "should fail when total seats is below one",
			actor:    admin,
			modify:   func(in *CreateShowtimeInput) { in.TotalSeats = 0 },
			wantKind: domain.KindValidation,
		},
		{
			name:     "should fail when start is not in the future",
			actor:    admin,
			modify:   func(in *CreateShowtimeInput) { in.StartTime = testStart },
			wantKind: domain.KindValidation,
		},
		{
			name:     "should fail when end is not after start",
			actor:    admin,
			modify:   func(in *CreateShowtimeInput) { in.EndTime = &before },
			wantKind: domain.KindValidation,
		},
		{
			name:     "should fail for unknown movie",
			actor:    admin,
			modify:   func(in *CreateShowtimeInput) { in.MovieID = 99 },
			wantKind: domain.KindNotFound,
		},
		{
			name:     "should fail for unknown hall",
			actor:    admin,
			modify:   func(in *CreateShowtimeInput) { in.HallID = 99 },
			wantKind: domain.KindNotFound,
		},
		{
			name:     "should fail for unknown cinema",
			actor:    admin,
			modify:   func(in *CreateShowtimeInput) { in.CinemaID = 99 },
			wantKind: domain.KindNotFound,
		},
		{
			name:     "should fail when the hall belongs to another cinema",
			actor:    admin,
			modify:   func(in *CreateShowtimeInput) { in.HallID = foreignHallID },
			wantKind: domain.KindValidation,
		},
		{
			name:     "should fail when total seats exceed hall capacity",
			actor:    admin,
			modify:   func(in *CreateShowtimeInput) { in.TotalSeats = 101 },
			wantKind: domain.KindCapacityExceeded,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			input := valid()
			if tt.modify != nil {
				tt.modify(&input)
			}

			_, err := s.scheduler.Create(s.ctx, tt.actor, input)
			s.requireKind(err, tt.wantKind)
		})
	}
}

func (s *ServiceTestSuite) TestCreateShowtimeOverlap() {
	existing := s.scheduleShowtime(24, 100, 1000) // [+24h, +26h)

	tests := []struct {
		name         string
		hallID       int
		startOffset  time.Duration
		wantConflict bool
	}{
		{name: "should conflict when starting inside the existing slot", hallID: testHallID, startOffset: time.Hour, wantConflict: true},
		{name: "should conflict when ending inside the existing slot", hallID: testHallID, startOffset: -time.Hour, wantConflict: true},
		{name: "should not conflict when touching the end boundary", hallID: testHallID, startOffset: 2 * time.Hour},
		{name: "should not conflict when touching the start boundary", hallID: testHallID, startOffset: -2 * time.Hour},
		{name: "should not conflict in another hall", hallID: smallHallID, startOffset: 0},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			totalSeats := 2

			showtime, err := s.scheduler.Create(s.ctx, admin, CreateShowtimeInput{
				MovieID:    testMovieID,
				HallID:     tt.hallID,
				CinemaID:   testCinemaID,
				StartTime:  existing.StartTime.Add(tt.startOffset),
				Price:      decimal.NewFromInt(1000),
				TotalSeats: totalSeats,
			})

			if !tt.wantConflict {
				s.Require().NoError(err)
				// leave the hall free for the next case
				s.Require().NoError(s.scheduler.Delete(s.ctx, admin, showtime.ID))
				return
			}

			domainErr := s.requireKind(err, domain.KindScheduleConflict)
			s.Require().NotNil(domainErr.Conflict)
			s.Equal(existing.Interval(), *domainErr.Conflict)
		})
	}
}

func (s *ServiceTestSuite) TestCancelledShowtimesDoNotConflict() {
	existing := s.scheduleShowtime(24, 100, 1000)

	_, err := s.scheduler.Cancel(s.ctx, admin, existing.ID)
	s.Require().NoError(err)

	replacement := s.scheduleShowtime(24, 100, 1000)
	s.NotEqual(existing.ID, replacement.ID)
}

func (s *ServiceTestSuite) TestUpdateShowtime() {
	showtime := s.scheduleShowtime(24, 100, 1000)
	later := s.scheduleShowtime(30, 100, 1000) // [+30h, +32h)

	_, err := s.bookings.Reserve(s.ctx, customer, ReserveInput{
		ShowtimeID: showtime.ID, Seats: []string{"A1", "A2", "A3"}, AdultCount: 3,
	})
	s.Require().NoError(err)

	s.Run("should shift within its own slot", func() {
		start := showtime.StartTime.Add(30 * time.Minute)

		updated, err := s.scheduler.Update(s.ctx, admin, showtime.ID, domain.ShowtimePatch{StartTime: &start})
		s.Require().NoError(err)

		s.Equal(start, updated.StartTime)
		s.Equal(start.Add(2*time.Hour), updated.EndTime)
	})

	s.Run("should fail when moved onto another showtime", func() {
		start := later.StartTime.Add(-time.Hour)

		_, err := s.scheduler.Update(s.ctx, admin, showtime.ID, domain.ShowtimePatch{StartTime: &start})
		domainErr := s.requireKind(err, domain.KindScheduleConflict)
		s.Equal(later.ID, domainErr.Conflict.ShowtimeID)
	})

	s.Run("should fail when total seats drop below booked seats", func() {
		total := 2

		_, err := s.scheduler.Update(s.ctx, admin, showtime.ID, domain.ShowtimePatch{TotalSeats: &total})
		s.requireKind(err, domain.KindSeatsBelowBooked)
	})

	s.Run("should resize and keep the seat invariant", func() {
		total := 50

		updated, err := s.scheduler.Update(s.ctx, admin, showtime.ID, domain.ShowtimePatch{TotalSeats: &total})
		s.Require().NoError(err)

		s.Equal(50, updated.TotalSeats)
		s.Equal(47, updated.SeatsAvailable)
		s.assertSeatInvariant(showtime.ID)
	})

	s.Run("should fail when the new hall is too small", func() {
		hall := smallHallID

		_, err := s.scheduler.Update(s.ctx, admin, showtime.ID, domain.ShowtimePatch{HallID: &hall})
		s.Require().Error(err)
	})

	s.Run("should fail for non-admin actors", func() {
		price := decimal.NewFromInt(1)

		_, err := s.scheduler.Update(s.ctx, customer, showtime.ID, domain.ShowtimePatch{Price: &price})
		s.requireKind(err, domain.KindUnauthorized)
	})

	s.Run("should fail when the showtime is terminal", func() {
		_, err := s.scheduler.Cancel(s.ctx, admin, later.ID)
		s.Require().NoError(err)

		price := decimal.NewFromInt(1)

		_, err = s.scheduler.Update(s.ctx, admin, later.ID, domain.ShowtimePatch{Price: &price})
		s.requireKind(err, domain.KindImmutableState)
	})
}

func (s *ServiceTestSuite) TestUpdateShowtimeMovieRecomputesEnd() {
	showtime := s.scheduleShowtime(24, 100, 1000)
	movie := shortMovieID

	updated, err := s.scheduler.Update(s.ctx, admin, showtime.ID, domain.ShowtimePatch{MovieID: &movie})
	s.Require().NoError(err)

	s.Equal(showtime.StartTime.Add(30*time.Minute), updated.EndTime)
}

func (s *ServiceTestSuite) TestCancelShowtime() {
	showtime := s.scheduleShowtime(24, 100, 1000)

	_, err := s.bookings.Reserve(s.ctx, customer, ReserveInput{
		ShowtimeID: showtime.ID, Seats: []string{"B1"}, AdultCount: 1,
	})
	s.Require().NoError(err)

	cancelled, err := s.scheduler.Cancel(s.ctx, admin, showtime.ID)
	s.Require().NoError(err)
	s.Equal(domain.ShowtimeCancelled, cancelled.Status)

	stored := s.showtime(showtime.ID)
	s.Equal([]string{"B1"}, stored.BookedSeats, "cancel must not release seats by itself")
	s.Equal(99, stored.SeatsAvailable)

	_, err = s.scheduler.Cancel(s.ctx, admin, showtime.ID)
	s.requireKind(err, domain.KindAlreadyCancelled)

	_, err = s.scheduler.Cancel(s.ctx, customer, showtime.ID)
	s.requireKind(err, domain.KindUnauthorized)
}

func (s *ServiceTestSuite) TestDeleteShowtime() {
	booked := s.scheduleShowtime(24, 100, 1000)
	empty := s.scheduleShowtime(48, 100, 1000)

	_, err := s.bookings.Reserve(s.ctx, customer, ReserveInput{
		ShowtimeID: booked.ID, Seats: []string{"C1", "C2"}, AdultCount: 2,
	})
	s.Require().NoError(err)

	err = s.scheduler.Delete(s.ctx, admin, booked.ID)
	s.requireKind(err, domain.KindHasBookings)

	s.Require().NoError(s.scheduler.Delete(s.ctx, admin, empty.ID))

	_, err = s.scheduler.Get(s.ctx, empty.ID)
	s.requireKind(err, domain.KindNotFound)

	err = s.scheduler.Delete(s.ctx, admin, empty.ID)
	s.requireKind(err, domain.KindNotFound)
}

func (s *ServiceTestSuite) TestHallSchedule() {
	first := s.scheduleShowtime(24, 100, 1000)
	second := s.scheduleShowtime(48, 100, 1000)
	cancelled := s.scheduleShowtime(72, 100, 1000)

	_, err := s.scheduler.Cancel(s.ctx, admin, cancelled.ID)
	s.Require().NoError(err)

	list, err := s.scheduler.HallSchedule(s.ctx, testHallID, testStart, testStart.Add(96*time.Hour))
	s.Require().NoError(err)

	s.Require().Len(list, 2)
	s.Equal(first.ID, list[0].ID)
	s.Equal(second.ID, list[1].ID)

	_, err = s.scheduler.HallSchedule(s.ctx, testHallID, testStart, testStart)
	s.requireKind(err, domain.KindValidation)

	_, err = s.scheduler.HallSchedule(s.ctx, 99, testStart, testStart.Add(time.Hour))
	s.requireKind(err, domain.KindNotFound)
}
