package repository

import (
	"context"

	"lendit/internal/domain/comment"
	"lendit/internal/infra"
	"lendit/internal/infra/db"
	"lendit/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
)

type CommentRepository struct{}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

func (r *CommentRepository) Create(ctx context.Context, dbtx db.DBTX, c *comment.Comment) (int64, error) {
	sql, args, err := pg.Insert("comments").
		Rows(goqu.Record{
			"text":        c.Text(),
			"item_id":     c.ItemID(),
			"author_id":   c.AuthorID(),
			"author_name": c.AuthorName(),
			"created_at":  c.Created(),
		}).
		Returning("id").
		Prepared(true).ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build comment insert", err)
	}

	var id int64
	if err := dbtx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("comment references missing row", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to create comment", err)
	}

	return id, nil
}
