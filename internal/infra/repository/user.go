package repository

import (
	"context"

	"lendit/internal/domain/user"
	"lendit/internal/infra"
	"lendit/internal/infra/db"
	"lendit/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (int64, error) {
	sql, args, err := pg.Insert("users").
		Rows(goqu.Record{
			"name":  u.Name(),
			"email": u.Email(),
		}).
		Returning("id").
		Prepared(true).ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build user insert", err)
	}

	var id int64
	if err := dbtx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return 0, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, dbtx db.DBTX, u *user.User) error {
	sql, args, err := pg.Update("users").
		Set(goqu.Record{
			"name":  u.Name(),
			"email": u.Email(),
		}).
		Where(goqu.C("id").Eq(u.ID())).
		Prepared(true).ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build user update", err)
	}

	tag, err := dbtx.Exec(ctx, sql, args...)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, dbtx db.DBTX, userID int64) error {
	sql, args, err := pg.Delete("users").
		Where(goqu.C("id").Eq(userID)).
		Prepared(true).ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build user delete", err)
	}

	tag, err := dbtx.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	return nil
}
