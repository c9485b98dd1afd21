package item

import (
	"strings"
	"time"

	"gearshare/internal/pkg/errs"
)

var ErrEmptyComment = errs.New("comment text must not be empty")

type Comment struct {
	id       int64
	itemID   int64
	authorID int64
	text     string
	created  time.Time
}

func NewComment(itemID, authorID int64, text string, now time.Time) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}
	return &Comment{
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  now,
	}, nil
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Text() string       { return c.text }
func (c *Comment) Created() time.Time { return c.created }
