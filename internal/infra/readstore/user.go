package readstore

import (
	"context"

	"lendit/internal/infra"
	"lendit/internal/infra/db"
	"lendit/internal/pkg/pgconv"
	"lendit/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	sql, args, err := pg.From("users").
		Select("id", "name", "email").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user query", err)
	}

	var v queries.UserView
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&v.ID, &v.Name, &v.Email); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &v, nil
}

func (r *UserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	sql, args, err := pg.From("users").
		Select("id", "name", "email").
		Order(goqu.C("id").Asc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	views := make([]*queries.UserView, 0)
	for rows.Next() {
		var v queries.UserView
		if scanErr := rows.Scan(&v.ID, &v.Name, &v.Email); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", scanErr)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}

	return views, nil
}
