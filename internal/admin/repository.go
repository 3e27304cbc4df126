// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/angelamos/cohort-api/internal/core"
)

type Repository interface {
	PlatformCounts(ctx context.Context) (*PlatformStats, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) PlatformCounts(
	ctx context.Context,
) (*PlatformStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM cohorts) AS cohorts,
			(SELECT COUNT(*) FROM posts) AS posts,
			(SELECT COUNT(*) FROM post_comments) AS comments,
			(SELECT COUNT(*) FROM post_likes) AS likes`

	var stats PlatformStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("platform counts: %w", err)
	}

	return &stats, nil
}
