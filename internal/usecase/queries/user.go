package queries

import (
	"context"

	"lendit/internal/infra"
	"lendit/internal/pkg/errs"
)

type UserQueries interface {
	GetByID(ctx context.Context, id int64) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	users UserReadStore
}

func NewUserQueries(users UserReadStore) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id int64) (*UserView, error) {
	u, err := q.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}

	return u, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	users, err := q.users.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list users")
	}
	if users == nil {
		return []*UserView{}, nil
	}

	return users, nil
}
