// AngelaMos | 2026
// repository.go

package cohort

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/cohort-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, cohort *Cohort) error
	GetByID(ctx context.Context, id int64) (*Cohort, error)
	GetMembers(ctx context.Context, cohortID int64) ([]MemberRow, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, cohort *Cohort) error {
	query := `
		INSERT INTO cohorts (type, cohort_number)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.GetContext(ctx, cohort, query, cohort.Type, cohort.CohortNumber)
	if err != nil {
		return fmt.Errorf("create cohort: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Cohort, error) {
	query := `
		SELECT id, type, cohort_number, created_at
		FROM cohorts
		WHERE id = $1`

	var cohort Cohort
	err := r.db.GetContext(ctx, &cohort, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get cohort: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get cohort: %w", err)
	}

	return &cohort, nil
}

func (r *repository) GetMembers(
	ctx context.Context,
	cohortID int64,
) ([]MemberRow, error) {
	query := `
		SELECT id, role, first_name, last_name
		FROM users
		WHERE cohort_id = $1
		ORDER BY id`

	var members []MemberRow
	if err := r.db.SelectContext(ctx, &members, query, cohortID); err != nil {
		return nil, fmt.Errorf("get cohort members: %w", err)
	}

	return members, nil
}
