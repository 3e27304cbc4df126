// AngelaMos | 2026
// service.go

package cohort

import (
	"context"
	"fmt"

	"github.com/angelamos/cohort-api/internal/core"
	"github.com/angelamos/cohort-api/internal/validate"
)

// ErrNoMembers marks a cohort whose member listing came back empty. The
// product treats that as a missing resource, not an empty collection.
var ErrNoMembers = fmt.Errorf(
	"no members found in this cohort: %w", core.ErrNotFound)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create opens a new cohort. A missing type falls back to the default
// software development track.
func (s *Service) Create(
	ctx context.Context,
	cohortType string,
	cohortNumber int,
) (*Cohort, error) {
	if cohortType == "" {
		cohortType = TypeSoftwareDevelopment
	}
	if msg, ok := validate.CohortType(cohortType); !ok {
		return nil, core.NewValidationError(map[string]string{"type": msg})
	}

	cohort := &Cohort{
		Type:         cohortType,
		CohortNumber: cohortNumber,
	}

	if err := s.repo.Create(ctx, cohort); err != nil {
		return nil, err
	}

	return cohort, nil
}

// Members partitions a cohort's users into students and teachers. An
// empty cohort is reported as ErrNoMembers whether or not the cohort
// row itself exists.
func (s *Service) Members(
	ctx context.Context,
	cohortID int64,
) (*MembersResponse, error) {
	rows, err := s.repo.GetMembers(ctx, cohortID)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, ErrNoMembers
	}

	cohort, err := s.repo.GetByID(ctx, cohortID)
	if err != nil {
		return nil, err
	}

	partition := MembersPartition{
		Students: []Member{},
		Teachers: []Member{},
	}

	for _, row := range rows {
		member := Member{
			ID:        row.ID,
			FirstName: row.FirstName,
			LastName:  row.LastName,
		}
		if row.Role == validate.RoleTeacher {
			partition.Teachers = append(partition.Teachers, member)
		} else {
			partition.Students = append(partition.Students, member)
		}
	}

	return &MembersResponse{
		Cohort: CohortResponse{
			ID:   cohort.ID,
			Type: DisplayType(cohort.Type),
		},
		Members: partition,
	}, nil
}
