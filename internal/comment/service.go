// AngelaMos | 2026
// service.go

package comment

import (
	"context"

	"github.com/angelamos/cohort-api/internal/core"
	"github.com/angelamos/cohort-api/internal/post"
	"github.com/angelamos/cohort-api/internal/validate"
)

// PostChecker is the slice of the post repository the comment flow
// needs: existence of the target post.
type PostChecker interface {
	GetByID(ctx context.Context, id int64) (*post.Post, error)
}

type Service struct {
	repo  Repository
	posts PostChecker
}

func NewService(repo Repository, posts PostChecker) *Service {
	return &Service{repo: repo, posts: posts}
}

// Create attaches a comment to an existing post. Content is validated
// and trimmed before persistence; the author is always the actor.
func (s *Service) Create(
	ctx context.Context,
	actorID, postID int64,
	content string,
) (*CommentWithAuthor, error) {
	trimmed, msg, ok := validate.CommentContent(content)
	if !ok {
		return nil, core.NewValidationError(map[string]string{"content": msg})
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &Comment{
		PostID:   postID,
		AuthorID: actorID,
		Content:  trimmed,
	})
}

// ListByPost returns a post's comments oldest-first.
func (s *Service) ListByPost(
	ctx context.Context,
	postID int64,
) ([]CommentResponse, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments := make([]CommentResponse, 0, len(rows))
	for i := range rows {
		comments = append(comments, ToCommentResponse(&rows[i]))
	}

	return comments, nil
}
