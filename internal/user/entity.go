// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/angelamos/cohort-api/internal/validate"
)

const (
	RoleStudent = validate.RoleStudent
	RoleTeacher = validate.RoleTeacher
)

// User is a platform account. Profile fields are optional: an account can
// exist with just credentials and grow a profile later.
type User struct {
	ID           int64      `db:"id"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Role         string     `db:"role"`
	CohortID     *int64     `db:"cohort_id"`
	FirstName    *string    `db:"first_name"`
	LastName     *string    `db:"last_name"`
	Username     *string    `db:"username"`
	Bio          *string    `db:"bio"`
	GithubURL    *string    `db:"github_url"`
	Mobile       *string    `db:"mobile"`
	TokenVersion int        `db:"token_version"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

// Actor is the authenticated identity a request acts as.
type Actor struct {
	ID   int64
	Role string
}

func (a Actor) IsTeacher() bool {
	return a.Role == RoleTeacher
}
