package item

import (
	"errors"
	"strings"

	"lendit/internal/pkg/patch"
)

var (
	ErrEmptyName        = errors.New("item name must not be blank")
	ErrEmptyDescription = errors.New("item description must not be blank")
)

type Item struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
}

func NewItem(name, description string, available bool, ownerID int64) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	return &Item{
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
	}, nil
}

func ReconstructItem(id int64, name, description string, available bool, ownerID int64) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
	}
}

// ApplyPatch overwrites only the fields present in the request.
func (i *Item) ApplyPatch(name, description *string, available *bool) error {
	next := &Item{
		id:          i.id,
		name:        patch.Coalesce(name, i.name),
		description: patch.Coalesce(description, i.description),
		available:   patch.Coalesce(available, i.available),
		ownerID:     i.ownerID,
	}
	if strings.TrimSpace(next.name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(next.description) == "" {
		return ErrEmptyDescription
	}
	*i = *next
	return nil
}

func (i *Item) IsOwnedBy(userID int64) bool {
	return i.ownerID == userID
}

func (i *Item) ID() int64           { return i.id }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }
func (i *Item) OwnerID() int64      { return i.ownerID }
