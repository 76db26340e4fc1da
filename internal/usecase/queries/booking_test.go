//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"lendit/internal/infra"
	"lendit/internal/pkg/clock"
	"lendit/internal/pkg/errs"
	"lendit/internal/usecase/queries"
	"lendit/tests/common/builder"
	queriesmock "lendit/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *queriesmock.MockBookingReadStore
	mockUsers *queriesmock.MockUserReadStore
	clock     *clock.MockClock
	q         queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.mockUsers = queriesmock.NewMockUserReadStore(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.q = queries.NewBookingQueries(s.mockStore, s.mockUsers, s.clock)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) TestGetByID() {
	b := builder.NewBookingBuilder()
	view := b.BuildView()

	s.Run("returns visible booking", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), b.BookerID).Return(b.BuildBookerView(), nil)
		s.mockStore.EXPECT().FindVisibleByID(gomock.Any(), b.ID, b.BookerID).Return(view, nil)

		got, err := s.q.GetByID(context.Background(), b.ID, b.BookerID)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("unknown user", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(99)).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := s.q.GetByID(context.Background(), b.ID, 99)
		s.Require().ErrorIs(err, errs.ErrUserNotFound)
	})

	s.Run("invisible booking", func() {
		stranger := b.BuildBookerView()
		stranger.ID = 77
		s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(77)).Return(stranger, nil)
		s.mockStore.EXPECT().FindVisibleByID(gomock.Any(), b.ID, int64(77)).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := s.q.GetByID(context.Background(), b.ID, 77)
		s.Require().ErrorIs(err, errs.ErrBookingNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestListByBooker() {
	b := builder.NewBookingBuilder()
	page := queries.NewPage(0, 10)

	s.Run("passes state and clock time to the store", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), b.BookerID).Return(b.BuildBookerView(), nil)
		s.mockStore.EXPECT().
			ListByBooker(gomock.Any(), b.BookerID, queries.StateFuture, s.clock.Now(), page).
			Return([]*queries.BookingView{b.BuildView()}, nil)

		got, err := s.q.ListByBooker(context.Background(), b.BookerID, queries.StateFuture, page)
		s.Require().NoError(err)
		s.Len(got, 1)
	})

	s.Run("empty result is an empty slice", func() {
		s.mockUsers.EXPECT().FindByID(gomock.Any(), b.BookerID).Return(b.BuildBookerView(), nil)
		s.mockStore.EXPECT().
			ListByBooker(gomock.Any(), b.BookerID, queries.StateAll, s.clock.Now(), page).
			Return(nil, nil)

		got, err := s.q.ListByBooker(context.Background(), b.BookerID, queries.StateAll, page)
		s.Require().NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})
}

func (s *BookingQueriesTestSuite) TestListByOwner() {
	b := builder.NewBookingBuilder()
	page := queries.NewPage(0, 10)

	s.mockUsers.EXPECT().FindByID(gomock.Any(), b.ItemOwnerID).Return(b.BuildOwnerView(), nil)
	s.mockStore.EXPECT().
		ListByOwner(gomock.Any(), b.ItemOwnerID, queries.StateWaiting, s.clock.Now(), page).
		Return([]*queries.BookingView{b.BuildView()}, nil)

	got, err := s.q.ListByOwner(context.Background(), b.ItemOwnerID, queries.StateWaiting, page)
	s.Require().NoError(err)
	s.Len(got, 1)
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name     string
		from     int
		size     int
		wantFrom int
		wantSize int
	}{
		{name: "valid", from: 20, size: 5, wantFrom: 20, wantSize: 5},
		{name: "negative from clamps to zero", from: -3, size: 5, wantFrom: 0, wantSize: 5},
		{name: "zero size falls back to default", from: 0, size: 0, wantFrom: 0, wantSize: 10},
		{name: "negative size falls back to default", from: 0, size: -1, wantFrom: 0, wantSize: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := queries.NewPage(tt.from, tt.size)
			if page.From != tt.wantFrom || page.Size != tt.wantSize {
				t.Errorf("NewPage(%d, %d) = %+v, want {From:%d Size:%d}",
					tt.from, tt.size, page, tt.wantFrom, tt.wantSize)
			}
		})
	}
}
