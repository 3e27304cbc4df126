// AngelaMos | 2026
// repository.go

package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/cohort-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	ListFeed(ctx context.Context) ([]FeedRow, error)
	UpdateContent(ctx context.Context, id int64, content string) (*Post, error)
	Delete(ctx context.Context, id int64) error
	ToggleLike(ctx context.Context, postID, userID int64) (bool, error)
	CountLikes(ctx context.Context, postID int64) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const postColumns = `id, author_id, content, created_at, updated_at`

func (r *repository) Create(ctx context.Context, post *Post) error {
	query := `
		INSERT INTO posts (author_id, content)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	err := r.db.GetContext(ctx, post, query, post.AuthorID, post.Content)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	var post Post
	err := r.db.GetContext(ctx, &post, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get post: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	return &post, nil
}

func (r *repository) ListFeed(ctx context.Context) ([]FeedRow, error) {
	query := `
		SELECT
			p.id, p.content, p.created_at, p.author_id,
			u.first_name, u.last_name,
			c.id AS cohort_id, c.type AS cohort_type,
			COUNT(DISTINCT pl.user_id) AS like_count,
			COUNT(DISTINCT pc.id) AS comment_count
		FROM posts p
		JOIN users u ON u.id = p.author_id
		LEFT JOIN cohorts c ON c.id = u.cohort_id
		LEFT JOIN post_likes pl ON pl.post_id = p.id
		LEFT JOIN post_comments pc ON pc.post_id = p.id
		GROUP BY p.id, u.id, c.id
		ORDER BY p.created_at DESC, p.id DESC`

	var rows []FeedRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return rows, nil
}

func (r *repository) UpdateContent(
	ctx context.Context,
	id int64,
	content string,
) (*Post, error) {
	query := `
		UPDATE posts
		SET content = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + postColumns

	var post Post
	err := r.db.GetContext(ctx, &post, query, id, content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update post: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	return &post, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete post: %w", core.ErrNotFound)
	}

	return nil
}

// ToggleLike flips the (post, user) like with two single-statement
// mutations. The delete-first shape means a concurrent double-toggle
// settles on one of the two valid end states instead of failing on the
// unique constraint.
func (r *repository) ToggleLike(
	ctx context.Context,
	postID, userID int64,
) (bool, error) {
	deleteQuery := `
		DELETE FROM post_likes
		WHERE post_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, deleteQuery, postID, userID)
	if err != nil {
		return false, fmt.Errorf("toggle like: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("toggle like: %w", err)
	}

	if rows > 0 {
		return false, nil
	}

	insertQuery := `
		INSERT INTO post_likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, user_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, insertQuery, postID, userID); err != nil {
		return false, fmt.Errorf("toggle like: %w", err)
	}

	return true, nil
}

func (r *repository) CountLikes(
	ctx context.Context,
	postID int64,
) (int, error) {
	query := `SELECT COUNT(*) FROM post_likes WHERE post_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, postID); err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}

	return count, nil
}
