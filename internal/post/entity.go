// AngelaMos | 2026
// entity.go

package post

import "time"

type Post struct {
	ID        int64     `db:"id"`
	AuthorID  int64     `db:"author_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// FeedRow is the joined projection behind the feed listing: the post,
// its author's display identity, the author's cohort when they have one,
// and the like/comment tallies.
type FeedRow struct {
	ID           int64     `db:"id"`
	Content      string    `db:"content"`
	CreatedAt    time.Time `db:"created_at"`
	AuthorID     int64     `db:"author_id"`
	FirstName    *string   `db:"first_name"`
	LastName     *string   `db:"last_name"`
	CohortID     *int64    `db:"cohort_id"`
	CohortType   *string   `db:"cohort_type"`
	LikeCount    int       `db:"like_count"`
	CommentCount int       `db:"comment_count"`
}
