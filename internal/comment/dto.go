// AngelaMos | 2026
// dto.go

package comment

import "time"

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type CommentAuthor struct {
	ID        int64   `json:"id"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

type CommentResponse struct {
	ID        int64         `json:"id"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
	Author    CommentAuthor `json:"author"`
}

type CommentEnvelope struct {
	Comment CommentResponse `json:"comment"`
}

func ToCommentResponse(c *CommentWithAuthor) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		Author: CommentAuthor{
			ID:        c.AuthorID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
		},
	}
}
