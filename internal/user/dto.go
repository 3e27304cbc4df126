// AngelaMos | 2026
// dto.go

package user

import (
	"encoding/json"
	"strconv"
	"time"
)

type CreateUserRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Username  *string `json:"username"`
	Bio       *string `json:"biography"`
	GithubURL *string `json:"githubUrl"`
	Mobile    *string `json:"mobile"`
	CohortID  *int64  `json:"cohortId"`
}

// IntField distinguishes "key absent" from "key present but not an
// integer". Unparseable values are recorded as present-but-invalid and
// silently ignored during admission.
type IntField struct {
	Present bool
	Valid   bool
	Value   int64
}

func (f *IntField) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	f.Present = true

	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		f.Valid = true
		f.Value = n
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, parseErr := strconv.ParseInt(s, 10, 64); parseErr == nil {
			f.Valid = true
			f.Value = v
		}
	}

	return nil
}

// UpdateUserRequest is the explicit record of optional fields a PATCH may
// carry. The cohort id is accepted under both spellings clients have
// historically sent.
type UpdateUserRequest struct {
	Email          *string  `json:"email"`
	Password       *string  `json:"password"`
	Role           *string  `json:"role"`
	CohortID       IntField `json:"cohortId"`
	CohortIDLegacy IntField `json:"cohort_id"`
	FirstName      *string  `json:"firstName"`
	LastName       *string  `json:"lastName"`
	Bio            *string  `json:"biography"`
	GithubURL      *string  `json:"githubUrl"`
	Mobile         *string  `json:"mobile"`
}

func (r *UpdateUserRequest) cohortField() IntField {
	if r.CohortID.Present {
		return r.CohortID
	}
	return r.CohortIDLegacy
}

func (r *UpdateUserRequest) hasCohortField() bool {
	return r.CohortID.Present || r.CohortIDLegacy.Present
}

// UserResponse is the public projection. It never carries the password
// hash.
type UserResponse struct {
	ID        int64     `json:"id"`
	CohortID  *int64    `json:"cohortId"`
	Role      string    `json:"role"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	Username  *string   `json:"username"`
	Email     string    `json:"email"`
	Bio       *string   `json:"biography"`
	GithubURL *string   `json:"githubUrl"`
	Mobile    *string   `json:"mobile"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserEnvelope struct {
	User UserResponse `json:"user"`
}

type UserListEnvelope struct {
	Users []UserResponse `json:"users"`
}

type ListUsersParams struct {
	FirstName string
	LastName  string
}

type ProgressCount struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

type ProgressSummary struct {
	CompletedModules   ProgressCount `json:"completedModules"`
	CompletedUnits     ProgressCount `json:"completedUnits"`
	CompletedExercises ProgressCount `json:"completedExercises"`
}

type ProgressEnvelope struct {
	Progress ProgressSummary `json:"progress"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		CohortID:  u.CohortID,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		GithubURL: u.GithubURL,
		Mobile:    u.Mobile,
		CreatedAt: u.CreatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
