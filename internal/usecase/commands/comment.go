package commands

import (
	"context"

	"lendit/internal/domain/comment"
	"lendit/internal/pkg/clock"
	"lendit/internal/pkg/errs"
	"lendit/internal/usecase/queries"
	"lendit/internal/usecase/shared"
)

type CommentCommands interface {
	Create(ctx context.Context, itemID int64, text string, authorID int64) (*queries.CommentView, error)
}

type commentCommandsImpl struct {
	uow         shared.UnitOfWork
	users       UserReader
	items       ItemReader
	projections queries.BookingProjections
	clock       clock.Clock
}

func NewCommentCommands(
	uow shared.UnitOfWork,
	users UserReader,
	items ItemReader,
	projections queries.BookingProjections,
	clk clock.Clock,
) CommentCommands {
	return &commentCommandsImpl{
		uow:         uow,
		users:       users,
		items:       items,
		projections: projections,
		clock:       clk,
	}
}

func (uc *commentCommandsImpl) Create(ctx context.Context, itemID int64, text string, authorID int64) (*queries.CommentView, error) {
	author, err := resolveUser(ctx, uc.users, authorID)
	if err != nil {
		return nil, err
	}
	it, err := resolveItem(ctx, uc.items, itemID)
	if err != nil {
		return nil, err
	}

	// Only a borrower whose approved booking has already ended may
	// leave a comment.
	eligible, err := uc.projections.IsEligibleToComment(ctx, it.ID, author.ID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, errs.ErrCommentNotAllowed
	}

	entity, err := comment.NewComment(text, it.ID, author.ID, author.Name, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var view *queries.CommentView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Comments().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			return txErr
		}
		view = &queries.CommentView{
			ID:         id,
			Text:       entity.Text(),
			AuthorName: entity.AuthorName(),
			Created:    entity.Created(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}
