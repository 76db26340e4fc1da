package queries

import (
	"context"
	"strings"

	"lendit/internal/infra"
	"lendit/internal/pkg/errs"
)

type ItemQueries interface {
	// GetByID returns the detail view; last/next bookings are attached
	// only when the viewer owns the item.
	GetByID(ctx context.Context, itemID, viewerID int64) (*ItemDetailView, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*ItemDetailView, error)
	Search(ctx context.Context, text string, viewerID int64) ([]*ItemView, error)
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id int64) (*ItemView, error)
	FindAllByOwner(ctx context.Context, ownerID int64) ([]*ItemView, error)
	Search(ctx context.Context, pattern string) ([]*ItemView, error)
}

type CommentReadStore interface {
	FindAllByItem(ctx context.Context, itemID int64) ([]CommentView, error)
}

type itemQueriesImpl struct {
	items       ItemReadStore
	comments    CommentReadStore
	projections BookingProjections
}

func NewItemQueries(items ItemReadStore, comments CommentReadStore, projections BookingProjections) ItemQueries {
	return &itemQueriesImpl{
		items:       items,
		comments:    comments,
		projections: projections,
	}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, itemID, viewerID int64) (*ItemDetailView, error) {
	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}

	detail := &ItemDetailView{ItemView: *view, Comments: []CommentView{}}

	comments, err := q.comments.FindAllByItem(ctx, itemID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list item comments")
	}
	if comments != nil {
		detail.Comments = comments
	}

	// Booking history is the owner's view only.
	if view.OwnerID == viewerID {
		if err := q.attachProjection(ctx, detail); err != nil {
			return nil, err
		}
	}

	return detail, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID int64) ([]*ItemDetailView, error) {
	views, err := q.items.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list owner items")
	}

	details := make([]*ItemDetailView, 0, len(views))
	for _, view := range views {
		detail := &ItemDetailView{ItemView: *view, Comments: []CommentView{}}
		if err := q.attachProjection(ctx, detail); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return details, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string, _ int64) ([]*ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}

	views, err := q.items.Search(ctx, text)
	if err != nil {
		return nil, errs.Wrap(err, "failed to search items")
	}
	if views == nil {
		return []*ItemView{}, nil
	}

	return views, nil
}

func (q *itemQueriesImpl) attachProjection(ctx context.Context, detail *ItemDetailView) error {
	last, next, err := q.projections.LastAndNext(ctx, detail.ID)
	if err != nil {
		return err
	}
	if last != nil {
		detail.LastBooking = &BookingRef{ID: last.ID, BookerID: last.BookerID}
	}
	if next != nil {
		detail.NextBooking = &BookingRef{ID: next.ID, BookerID: next.BookerID}
	}
	return nil
}
