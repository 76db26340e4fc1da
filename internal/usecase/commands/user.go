package commands

import (
	"context"

	"lendit/internal/domain/user"
	"lendit/internal/infra"
	"lendit/internal/pkg/errs"
	"lendit/internal/usecase/queries"
	"lendit/internal/usecase/shared"
)

type CreateUserParams struct {
	Name  string
	Email string
}

type UpdateUserParams struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, params CreateUserParams) (*queries.UserView, error)
	Update(ctx context.Context, userID int64, params UpdateUserParams) (*queries.UserView, error)
	Delete(ctx context.Context, userID int64) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	users UserReader
}

func NewUserCommands(uow shared.UnitOfWork, users UserReader) UserCommands {
	return &userCommandsImpl{
		uow:   uow,
		users: users,
	}
}

func (uc *userCommandsImpl) Create(ctx context.Context, params CreateUserParams) (*queries.UserView, error) {
	entity, err := user.NewUser(params.Name, params.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var view *queries.UserView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Users().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindDuplicateKey) {
				return errs.ErrDuplicateEmail
			}
			return txErr
		}
		view = &queries.UserView{ID: id, Name: entity.Name(), Email: entity.Email()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func (uc *userCommandsImpl) Update(ctx context.Context, userID int64, params UpdateUserParams) (*queries.UserView, error) {
	current, err := resolveUser(ctx, uc.users, userID)
	if err != nil {
		return nil, err
	}

	entity := user.ReconstructUser(current.ID, current.Name, current.Email)
	if err := entity.ApplyPatch(params.Name, params.Email); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if txErr := tx.Users().Update(ctx, tx.DB(), entity); txErr != nil {
			if infra.IsKind(txErr, infra.KindDuplicateKey) {
				return errs.ErrDuplicateEmail
			}
			return txErr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.UserView{ID: entity.ID(), Name: entity.Name(), Email: entity.Email()}, nil
}

func (uc *userCommandsImpl) Delete(ctx context.Context, userID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if txErr := tx.Users().Delete(ctx, tx.DB(), userID); txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.ErrUserNotFound
			}
			return txErr
		}
		return nil
	})
}
