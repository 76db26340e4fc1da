package response

import (
	"time"

	"lendit/internal/usecase/queries"
)

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         v.ID,
		Text:       v.Text,
		AuthorName: v.AuthorName,
		Created:    v.Created,
	}
}

func FromCommentViews(views []queries.CommentView) []CommentResponse {
	out := make([]CommentResponse, len(views))
	for i := range views {
		out[i] = *FromCommentView(&views[i])
	}
	return out
}
