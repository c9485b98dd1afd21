package item

import (
	"strings"

	"gearshare/internal/pkg/errs"
)

var (
	ErrEmptyName        = errs.New("item name must not be empty")
	ErrEmptyDescription = errs.New("item description must not be empty")
	ErrNotOwner         = errs.New("caller is not the owner of the item")
)

type Item struct {
	id          int64
	ownerID     int64
	name        string
	description string
	available   bool
	requestID   *int64
}

func NewItem(ownerID int64, name, description string, available bool, requestID *int64) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &Item{
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
	}, nil
}

func ReconstructItem(id, ownerID int64, name, description string, available bool, requestID *int64) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
	}
}

func (i *Item) ID() int64           { return i.id }
func (i *Item) OwnerID() int64      { return i.ownerID }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }
func (i *Item) RequestID() *int64   { return i.requestID }

func (i *Item) OwnedBy(userID int64) bool {
	return i.ownerID == userID
}

// Patch applies a partial update; nil fields are left untouched.
func (i *Item) Patch(name, description *string, available *bool) {
	if name != nil && strings.TrimSpace(*name) != "" {
		i.name = strings.TrimSpace(*name)
	}
	if description != nil && strings.TrimSpace(*description) != "" {
		i.description = strings.TrimSpace(*description)
	}
	if available != nil {
		i.available = *available
	}
}
