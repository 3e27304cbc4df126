// AngelaMos | 2026
// service.go

package post

import (
	"context"
	"strings"

	"github.com/angelamos/cohort-api/internal/cohort"
	"github.com/angelamos/cohort-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create publishes a post owned by the acting user. The owner is always
// the authenticated actor; a client-supplied author id is never trusted.
func (s *Service) Create(
	ctx context.Context,
	actorID int64,
	content string,
) (*Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, core.NewValidationError(map[string]string{
			"content": "Must provide content",
		})
	}

	post := &Post{
		AuthorID: actorID,
		Content:  content,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// Feed lists every post newest-first with author identity, the author's
// cohort in display form, and like/comment counts.
func (s *Service) Feed(ctx context.Context) ([]FeedPost, error) {
	rows, err := s.repo.ListFeed(ctx)
	if err != nil {
		return nil, err
	}

	feed := make([]FeedPost, 0, len(rows))
	for _, row := range rows {
		item := ToFeedPost(row)
		if item.Author.Cohort != nil {
			item.Author.Cohort.Type = cohort.DisplayType(
				item.Author.Cohort.Type)
		}
		feed = append(feed, item)
	}

	return feed, nil
}

// Edit replaces a post's content. Only the author may edit.
func (s *Service) Edit(
	ctx context.Context,
	actorID, postID int64,
	content string,
) (*Post, error) {
	existing, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if existing.AuthorID != actorID {
		return nil, core.ForbiddenError("only the author may edit this post")
	}

	if strings.TrimSpace(content) == "" {
		return nil, core.NewValidationError(map[string]string{
			"content": "Must provide content",
		})
	}

	return s.repo.UpdateContent(ctx, postID, content)
}

// Delete removes a post and, through the schema's cascades, its likes
// and comments. Only the author may delete.
func (s *Service) Delete(ctx context.Context, actorID, postID int64) error {
	existing, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if existing.AuthorID != actorID {
		return core.ForbiddenError("only the author may delete this post")
	}

	return s.repo.Delete(ctx, postID)
}

// ToggleLike flips the actor's like on a post and reports the new state
// with the fresh total.
func (s *Service) ToggleLike(
	ctx context.Context,
	actorID, postID int64,
) (*ToggleLikeResponse, error) {
	if _, err := s.repo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	liked, err := s.repo.ToggleLike(ctx, postID, actorID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountLikes(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &ToggleLikeResponse{Liked: liked, LikeCount: count}, nil
}
