// Package request holds the item-request aggregate: a user describes a thing
// they would like to rent, and owners may answer by listing matching items.
package request

import (
	"strings"
	"time"

	"gearshare/internal/pkg/errs"
)

var ErrEmptyDescription = errs.New("request description must not be empty")

type ItemRequest struct {
	id          int64
	requesterID int64
	description string
	created     time.Time
}

func NewItemRequest(requesterID int64, description string, now time.Time) (*ItemRequest, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &ItemRequest{
		requesterID: requesterID,
		description: description,
		created:     now,
	}, nil
}

func (r *ItemRequest) ID() int64           { return r.id }
func (r *ItemRequest) RequesterID() int64  { return r.requesterID }
func (r *ItemRequest) Description() string { return r.description }
func (r *ItemRequest) Created() time.Time  { return r.created }
