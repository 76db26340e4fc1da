//go:build unit

package comment_test

import (
	"strings"
	"testing"
	"time"

	"lendit/internal/domain/comment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		text  string
		errIs error
	}{
		{name: "valid comment", text: "Great drill, sharp bits"},
		{name: "max length", text: strings.Repeat("a", comment.MaxTextLength)},
		{name: "blank text", text: "   ", errIs: comment.ErrEmptyText},
		{name: "too long", text: strings.Repeat("a", comment.MaxTextLength+1), errIs: comment.ErrTextTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := comment.NewComment(tt.text, 10, 2, "Borrower", now)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.text), c.Text())
			assert.Equal(t, int64(10), c.ItemID())
			assert.Equal(t, int64(2), c.AuthorID())
			assert.Equal(t, "Borrower", c.AuthorName())
			assert.Equal(t, now, c.Created())
		})
	}
}
