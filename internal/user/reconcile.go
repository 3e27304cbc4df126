// AngelaMos | 2026
// reconcile.go

package user

import (
	"fmt"

	"github.com/angelamos/cohort-api/internal/core"
	"github.com/angelamos/cohort-api/internal/validate"
)

// placeholderValue is the literal some request generators put in every
// string field of a default body. It means "not supplied".
const placeholderValue = "string"

// UpdateSet is the admitted subset of a PATCH request: every field here
// passed validation and authorization and will be persisted. Password is
// still the raw value; the service hashes it before it reaches the
// repository.
type UpdateSet struct {
	Email     *string
	Password  *string
	Role      *string
	CohortID  *int64
	FirstName *string
	LastName  *string
	Bio       *string
	GithubURL *string
	Mobile    *string
}

func (s *UpdateSet) Empty() bool {
	return s.Email == nil &&
		s.Password == nil &&
		s.Role == nil &&
		s.CohortID == nil &&
		s.FirstName == nil &&
		s.LastName == nil &&
		s.Bio == nil &&
		s.GithubURL == nil &&
		s.Mobile == nil
}

// ReconcileUpdate decides which of the requested changes the actor is
// allowed to make to the target profile. It is a pure function: no
// persistence, no clock, no I/O.
//
// Gates run in order. Access is owner-or-teacher; role and cohort are
// teacher-only even for the profile owner; everything else is admitted
// per-field when supplied, valid and not the unset placeholder.
func ReconcileUpdate(
	actor Actor,
	target *User,
	req UpdateUserRequest,
) (*UpdateSet, error) {
	isOwnProfile := actor.ID == target.ID
	isTeacher := actor.IsTeacher()

	if !isOwnProfile && !isTeacher {
		return nil, core.ForbiddenError(
			"only the profile owner or a teacher may update this profile",
		)
	}

	if !isTeacher && (supplied(req.Role) || req.hasCohortField()) {
		return nil, core.ForbiddenError(
			"students cannot modify cohort or role",
		)
	}

	fields := validate.Fields{}
	set := &UpdateSet{}

	if supplied(req.Email) {
		if msg, ok := validate.Email(*req.Email); ok {
			set.Email = req.Email
		} else {
			fields.Add("email", msg)
		}
	}

	if isOwnProfile && supplied(req.Password) {
		if msg, ok := validate.Password(*req.Password); ok {
			set.Password = req.Password
		} else {
			fields.Add("password", msg)
		}
	}

	if isTeacher {
		// An invalid role or unparseable cohort id is dropped, not
		// rejected.
		if supplied(req.Role) {
			if _, ok := validate.Role(*req.Role); ok {
				set.Role = req.Role
			}
		}
		if cohort := req.cohortField(); cohort.Valid {
			set.CohortID = &cohort.Value
		}
	}

	if supplied(req.FirstName) {
		if msg, ok := validate.Name(*req.FirstName); ok {
			set.FirstName = req.FirstName
		} else {
			fields.Add("firstName", msg)
		}
	}

	if supplied(req.LastName) {
		if msg, ok := validate.Name(*req.LastName); ok {
			set.LastName = req.LastName
		} else {
			fields.Add("lastName", msg)
		}
	}

	if supplied(req.Bio) {
		if msg, ok := validate.Bio(*req.Bio); ok {
			set.Bio = req.Bio
		} else {
			fields.Add("biography", msg)
		}
	}

	if supplied(req.GithubURL) {
		if msg, ok := validate.GithubURL(*req.GithubURL); ok {
			set.GithubURL = req.GithubURL
		} else {
			fields.Add("githubUrl", msg)
		}
	}

	if supplied(req.Mobile) {
		if msg, ok := validate.Mobile(*req.Mobile); ok {
			set.Mobile = req.Mobile
		} else {
			fields.Add("mobile", msg)
		}
	}

	if err := fields.Err(); err != nil {
		return nil, err
	}

	if set.Empty() {
		return nil, fmt.Errorf(
			"reconcile update: no valid fields to update: %w",
			core.ErrInvalidInput,
		)
	}

	return set, nil
}

// supplied reports whether a string field carries a real value: present,
// non-empty and not the generated-body placeholder.
func supplied(value *string) bool {
	return value != nil && *value != "" && *value != placeholderValue
}
