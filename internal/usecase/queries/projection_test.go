//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"lendit/internal/domain/booking"
	"lendit/internal/pkg/clock"
	"lendit/internal/usecase/queries"
	"lendit/tests/common/builder"
	queriesmock "lendit/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var workedStatuses = []booking.Status{booking.StatusApproved, booking.StatusWaiting}

type BookingProjectionsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *queriesmock.MockProjectionReadStore
	clock     *clock.MockClock
	p         queries.BookingProjections
}

func (s *BookingProjectionsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockProjectionReadStore(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.p = queries.NewBookingProjections(s.mockStore, workedStatuses, s.clock)
}

func (s *BookingProjectionsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingProjectionsSuite(t *testing.T) {
	suite.Run(t, new(BookingProjectionsTestSuite))
}

func (s *BookingProjectionsTestSuite) TestLastAndNext() {
	const itemID = int64(10)
	now := s.clock.Now()

	s.Run("returns both sides of the projection", func() {
		last := builder.NewBookingBuilder().BuildView()
		next := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 2 }).BuildView()

		s.mockStore.EXPECT().LastForItem(gomock.Any(), itemID, workedStatuses, now).Return(last, nil)
		s.mockStore.EXPECT().NextForItem(gomock.Any(), itemID, workedStatuses, now).Return(next, nil)

		gotLast, gotNext, err := s.p.LastAndNext(context.Background(), itemID)
		s.Require().NoError(err)
		s.Equal(last, gotLast)
		s.Equal(next, gotNext)
	})

	s.Run("item without bookings yields nils", func() {
		s.mockStore.EXPECT().LastForItem(gomock.Any(), itemID, workedStatuses, now).Return(nil, nil)
		s.mockStore.EXPECT().NextForItem(gomock.Any(), itemID, workedStatuses, now).Return(nil, nil)

		gotLast, gotNext, err := s.p.LastAndNext(context.Background(), itemID)
		s.Require().NoError(err)
		s.Nil(gotLast)
		s.Nil(gotNext)
	})
}

func (s *BookingProjectionsTestSuite) TestIsEligibleToComment() {
	const (
		itemID = int64(10)
		userID = int64(2)
	)
	now := s.clock.Now()

	s.Run("finished approved booking grants eligibility", func() {
		finished := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusApproved
			b.Start = now.Add(-48 * time.Hour)
			b.End = now.Add(-24 * time.Hour)
		}).BuildView()

		s.mockStore.EXPECT().LastFinished(gomock.Any(), itemID, userID, now).Return(finished, nil)

		eligible, err := s.p.IsEligibleToComment(context.Background(), itemID, userID)
		s.Require().NoError(err)
		s.True(eligible)
	})

	s.Run("no finished booking denies eligibility", func() {
		s.mockStore.EXPECT().LastFinished(gomock.Any(), itemID, userID, now).Return(nil, nil)

		eligible, err := s.p.IsEligibleToComment(context.Background(), itemID, userID)
		s.Require().NoError(err)
		s.False(eligible)
	})
}
