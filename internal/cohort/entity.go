// AngelaMos | 2026
// entity.go

package cohort

import "time"

const (
	TypeSoftwareDevelopment = "SOFTWARE_DEVELOPMENT"
	TypeFrontendDevelopment = "FRONTEND_DEVELOPMENT"
	TypeDataAnalytics       = "DATA_ANALYTICS"
)

// typeDisplay maps the stored cohort type to the human-readable name
// used in member listings.
var typeDisplay = map[string]string{
	TypeSoftwareDevelopment: "Software Development",
	TypeFrontendDevelopment: "Front-End Development",
	TypeDataAnalytics:       "Data Analytics",
}

func DisplayType(cohortType string) string {
	if display, ok := typeDisplay[cohortType]; ok {
		return display
	}
	return cohortType
}

type Cohort struct {
	ID           int64     `db:"id"`
	Type         string    `db:"type"`
	CohortNumber int       `db:"cohort_number"`
	CreatedAt    time.Time `db:"created_at"`
}

// MemberRow is the projection the member listing reads: identity plus
// the role used to partition students from teachers.
type MemberRow struct {
	ID        int64   `db:"id"`
	Role      string  `db:"role"`
	FirstName *string `db:"first_name"`
	LastName  *string `db:"last_name"`
}
