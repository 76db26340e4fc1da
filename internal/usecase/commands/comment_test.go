//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"lendit/internal/domain/comment"
	"lendit/internal/infra/db"
	"lendit/internal/pkg/clock"
	"lendit/internal/pkg/errs"
	"lendit/internal/usecase/commands"
	"lendit/tests/common/builder"
	commandsmock "lendit/tests/mock/commands"
	queriesmock "lendit/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CommentCommandsTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUsers       *commandsmock.MockUserReader
	mockItems       *commandsmock.MockItemReader
	mockProjections *queriesmock.MockBookingProjections
	comments        *stubCommentRepo
	clock           *clock.MockClock
	uc              commands.CommentCommands
}

type stubCommentRepo struct {
	createID int64
	created  *comment.Comment
}

func (r *stubCommentRepo) Create(_ context.Context, _ db.DBTX, c *comment.Comment) (int64, error) {
	r.created = c
	return r.createID, nil
}

func (s *CommentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUsers = commandsmock.NewMockUserReader(s.ctrl)
	s.mockItems = commandsmock.NewMockItemReader(s.ctrl)
	s.mockProjections = queriesmock.NewMockBookingProjections(s.ctrl)
	s.comments = &stubCommentRepo{createID: 7}
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	uow := &fakeUoW{tx: &fakeTx{
		bookings:      &stubBookingRepo{},
		notifications: &stubNotificationRepo{},
		comments:      s.comments,
	}}
	s.uc = commands.NewCommentCommands(uow, s.mockUsers, s.mockItems, s.mockProjections, s.clock)
}

func (s *CommentCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCommentCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommentCommandsTestSuite))
}

func (s *CommentCommandsTestSuite) TestCreate() {
	s.Run("borrower with a finished booking leaves a comment", func() {
		b := builder.NewBookingBuilder()
		s.mockUsers.EXPECT().FindByID(gomock.Any(), b.BookerID).Return(b.BuildBookerView(), nil)
		s.mockItems.EXPECT().FindByID(gomock.Any(), b.ItemID).Return(b.BuildItemView(), nil)
		s.mockProjections.EXPECT().IsEligibleToComment(gomock.Any(), b.ItemID, b.BookerID).Return(true, nil)

		view, err := s.uc.Create(context.Background(), b.ItemID, "Great drill", b.BookerID)

		s.Require().NoError(err)
		s.Equal(int64(7), view.ID)
		s.Equal("Great drill", view.Text)
		s.Equal("Borrower", view.AuthorName)
		s.Equal(s.clock.Now(), view.Created)
	})

	s.Run("user without a finished booking is rejected", func() {
		b := builder.NewBookingBuilder()
		s.mockUsers.EXPECT().FindByID(gomock.Any(), b.BookerID).Return(b.BuildBookerView(), nil)
		s.mockItems.EXPECT().FindByID(gomock.Any(), b.ItemID).Return(b.BuildItemView(), nil)
		s.mockProjections.EXPECT().IsEligibleToComment(gomock.Any(), b.ItemID, b.BookerID).Return(false, nil)

		_, err := s.uc.Create(context.Background(), b.ItemID, "Great drill", b.BookerID)

		s.ErrorIs(err, errs.ErrCommentNotAllowed)
	})

	s.Run("overlong text fails validation", func() {
		b := builder.NewBookingBuilder()
		s.mockUsers.EXPECT().FindByID(gomock.Any(), b.BookerID).Return(b.BuildBookerView(), nil)
		s.mockItems.EXPECT().FindByID(gomock.Any(), b.ItemID).Return(b.BuildItemView(), nil)
		s.mockProjections.EXPECT().IsEligibleToComment(gomock.Any(), b.ItemID, b.BookerID).Return(true, nil)

		_, err := s.uc.Create(context.Background(), b.ItemID, strings.Repeat("a", 1001), b.BookerID)

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})
}
