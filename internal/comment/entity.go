// AngelaMos | 2026
// entity.go

package comment

import "time"

type Comment struct {
	ID        int64     `db:"id"`
	PostID    int64     `db:"post_id"`
	AuthorID  int64     `db:"author_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

// CommentWithAuthor is the created-comment projection: the comment plus
// the author's display identity.
type CommentWithAuthor struct {
	Comment
	FirstName *string `db:"first_name"`
	LastName  *string `db:"last_name"`
}
