package commands

import (
	"context"

	"lendit/internal/domain/item"
	"lendit/internal/pkg/errs"
	"lendit/internal/usecase/queries"
	"lendit/internal/usecase/shared"
)

type CreateItemParams struct {
	Name        string
	Description string
	Available   bool
}

type UpdateItemParams struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, params CreateItemParams, ownerID int64) (*queries.ItemView, error)
	Update(ctx context.Context, itemID int64, params UpdateItemParams, userID int64) (*queries.ItemView, error)
}

type itemCommandsImpl struct {
	uow   shared.UnitOfWork
	users UserReader
	items ItemReader
}

func NewItemCommands(uow shared.UnitOfWork, users UserReader, items ItemReader) ItemCommands {
	return &itemCommandsImpl{
		uow:   uow,
		users: users,
		items: items,
	}
}

func (uc *itemCommandsImpl) Create(ctx context.Context, params CreateItemParams, ownerID int64) (*queries.ItemView, error) {
	if _, err := resolveUser(ctx, uc.users, ownerID); err != nil {
		return nil, err
	}

	entity, err := item.NewItem(params.Name, params.Description, params.Available, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var view *queries.ItemView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Items().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			return txErr
		}
		view = itemToView(id, entity)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func (uc *itemCommandsImpl) Update(ctx context.Context, itemID int64, params UpdateItemParams, userID int64) (*queries.ItemView, error) {
	if _, err := resolveUser(ctx, uc.users, userID); err != nil {
		return nil, err
	}

	current, err := resolveItem(ctx, uc.items, itemID)
	if err != nil {
		return nil, err
	}

	entity := item.ReconstructItem(current.ID, current.Name, current.Description, current.Available, current.OwnerID)
	// Editing someone else's item reads as the item not belonging to the
	// caller at all.
	if !entity.IsOwnedBy(userID) {
		return nil, errs.ErrUserNotFound
	}

	if err := entity.ApplyPatch(params.Name, params.Description, params.Available); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Items().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, err
	}

	return itemToView(entity.ID(), entity), nil
}

func itemToView(id int64, it *item.Item) *queries.ItemView {
	return &queries.ItemView{
		ID:          id,
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		OwnerID:     it.OwnerID(),
	}
}
