package readstore

import (
	"context"

	"lendit/internal/infra"
	"lendit/internal/infra/db"
	"lendit/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
)

type CommentReadStore struct {
	db db.DBTX
}

func NewCommentReadStore(dbtx db.DBTX) *CommentReadStore {
	return &CommentReadStore{db: dbtx}
}

// FindAllByItem returns the item's comments, oldest first. The author
// name is denormalized onto the row at write time.
func (r *CommentReadStore) FindAllByItem(ctx context.Context, itemID int64) ([]queries.CommentView, error) {
	sql, args, err := pg.From("comments").
		Select("id", "text", "author_name", "created_at").
		Where(goqu.C("item_id").Eq(itemID)).
		Order(goqu.C("created_at").Asc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build comment query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item comments", err)
	}
	defer rows.Close()

	views := make([]queries.CommentView, 0)
	for rows.Next() {
		var v queries.CommentView
		if scanErr := rows.Scan(&v.ID, &v.Text, &v.AuthorName, &v.Created); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", scanErr)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read comment rows", err)
	}

	return views, nil
}
