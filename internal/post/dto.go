// AngelaMos | 2026
// dto.go

package post

import "time"

type CreatePostRequest struct {
	Content string `json:"content"`
}

type UpdatePostRequest struct {
	Content string `json:"content"`
}

type PostResponse struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type PostEnvelope struct {
	Post PostResponse `json:"post"`
}

type AuthorCohort struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type FeedAuthor struct {
	ID        int64         `json:"id"`
	FirstName *string       `json:"firstName"`
	LastName  *string       `json:"lastName"`
	Cohort    *AuthorCohort `json:"cohort"`
}

type PostStats struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
}

type FeedPost struct {
	ID        int64      `json:"id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	Author    FeedAuthor `json:"author"`
	Stats     PostStats  `json:"stats"`
}

type FeedEnvelope struct {
	Posts []FeedPost `json:"posts"`
}

type ToggleLikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

func ToPostResponse(p *Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
	}
}

func ToFeedPost(row FeedRow) FeedPost {
	feed := FeedPost{
		ID:        row.ID,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
		Author: FeedAuthor{
			ID:        row.AuthorID,
			FirstName: row.FirstName,
			LastName:  row.LastName,
		},
		Stats: PostStats{
			Likes:    row.LikeCount,
			Comments: row.CommentCount,
		},
	}

	if row.CohortID != nil && row.CohortType != nil {
		feed.Author.Cohort = &AuthorCohort{
			ID:   *row.CohortID,
			Type: *row.CohortType,
		}
	}

	return feed
}
