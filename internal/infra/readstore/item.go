package readstore

import (
	"context"

	"lendit/internal/infra"
	"lendit/internal/infra/db"
	"lendit/internal/pkg/pgconv"
	"lendit/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

func itemBase() *goqu.SelectDataset {
	return pg.From("items").
		Select("id", "name", "description", "available", "owner_id")
}

func (r *ItemReadStore) FindByID(ctx context.Context, id int64) (*queries.ItemView, error) {
	sql, args, err := itemBase().Where(goqu.C("id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item query", err)
	}

	view, err := scanItemView(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	return view, nil
}

func (r *ItemReadStore) FindAllByOwner(ctx context.Context, ownerID int64) ([]*queries.ItemView, error) {
	ds := itemBase().
		Where(goqu.C("owner_id").Eq(ownerID)).
		Order(goqu.C("id").Asc())

	return r.list(ctx, ds, "failed to list owner items")
}

// Search matches available items by name or description,
// case-insensitively.
func (r *ItemReadStore) Search(ctx context.Context, pattern string) ([]*queries.ItemView, error) {
	like := "%" + pattern + "%"
	ds := itemBase().
		Where(
			goqu.C("available").IsTrue(),
			goqu.Or(
				goqu.C("name").ILike(like),
				goqu.C("description").ILike(like),
			),
		).
		Order(goqu.C("id").Asc())

	return r.list(ctx, ds, "failed to search items")
}

func (r *ItemReadStore) list(ctx context.Context, ds *goqu.SelectDataset, failMsg string) ([]*queries.ItemView, error) {
	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(failMsg, err)
	}
	defer rows.Close()

	views := make([]*queries.ItemView, 0)
	for rows.Next() {
		view, scanErr := scanItemView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}

	return views, nil
}

func scanItemView(row rowScanner) (*queries.ItemView, error) {
	var v queries.ItemView
	err := row.Scan(&v.ID, &v.Name, &v.Description, &v.Available, &v.OwnerID)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
