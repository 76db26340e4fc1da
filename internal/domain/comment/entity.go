package comment

import (
	"errors"
	"strings"
	"time"
)

const MaxTextLength = 1000

var (
	ErrEmptyText   = errors.New("comment text must not be blank")
	ErrTextTooLong = errors.New("comment text exceeds maximum length")
)

// Comment is feedback a borrower leaves on an item after a finished,
// approved booking. Eligibility is checked by the caller against the
// booking store; the entity only guards its own shape.
type Comment struct {
	id         int64
	text       string
	itemID     int64
	authorID   int64
	authorName string
	created    time.Time
}

func NewComment(text string, itemID, authorID int64, authorName string, now time.Time) (*Comment, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil, ErrEmptyText
	}
	if len(t) > MaxTextLength {
		return nil, ErrTextTooLong
	}

	return &Comment{
		text:       t,
		itemID:     itemID,
		authorID:   authorID,
		authorName: authorName,
		created:    now,
	}, nil
}

func ReconstructComment(id int64, text string, itemID, authorID int64, authorName string, created time.Time) *Comment {
	return &Comment{
		id:         id,
		text:       text,
		itemID:     itemID,
		authorID:   authorID,
		authorName: authorName,
		created:    created,
	}
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) Text() string       { return c.text }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) AuthorName() string { return c.authorName }
func (c *Comment) Created() time.Time { return c.created }
