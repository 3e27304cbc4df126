// AngelaMos | 2026
// repository.go

package comment

import (
	"context"
	"fmt"

	"github.com/angelamos/cohort-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, comment *Comment) (*CommentWithAuthor, error)
	ListByPost(ctx context.Context, postID int64) ([]CommentWithAuthor, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	comment *Comment,
) (*CommentWithAuthor, error) {
	query := `
		WITH created AS (
			INSERT INTO post_comments (post_id, author_id, content)
			VALUES ($1, $2, $3)
			RETURNING id, post_id, author_id, content, created_at
		)
		SELECT
			created.id, created.post_id, created.author_id,
			created.content, created.created_at,
			u.first_name, u.last_name
		FROM created
		JOIN users u ON u.id = created.author_id`

	var created CommentWithAuthor
	err := r.db.GetContext(ctx, &created, query,
		comment.PostID,
		comment.AuthorID,
		comment.Content,
	)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return &created, nil
}

func (r *repository) ListByPost(
	ctx context.Context,
	postID int64,
) ([]CommentWithAuthor, error) {
	query := `
		SELECT
			pc.id, pc.post_id, pc.author_id, pc.content, pc.created_at,
			u.first_name, u.last_name
		FROM post_comments pc
		JOIN users u ON u.id = pc.author_id
		WHERE pc.post_id = $1
		ORDER BY pc.created_at, pc.id`

	var comments []CommentWithAuthor
	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return comments, nil
}
