// AngelaMos | 2026
// validate.go

// Package validate holds the field-level validation rules shared by the
// user, auth and comment surfaces. Every rule is a pure function of the
// raw value; who is asking is decided elsewhere.
package validate

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/angelamos/cohort-api/internal/core"
)

const (
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"

	MaxBioLength      = 500
	MaxCommentLength  = 2560
	MinPasswordLen    = 8
	MinUsernameLength = 3
	MaxUsernameLength = 30

	passwordSpecials = "@$!%*#?&"
)

var (
	namePattern   = regexp.MustCompile(`^[A-Za-z][A-Za-z' -]{1,49}$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	githubPattern = regexp.MustCompile(
		`^https://github\.com/[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?$`,
	)
	mobilePattern = regexp.MustCompile(`^\+?[0-9]{2,15}$`)
)

// Fields accumulates one error message per failing field. Rules never
// short-circuit: callers run every check and report the full map at once.
type Fields map[string]string

func (f Fields) Add(field, message string) {
	f[field] = message
}

func (f Fields) Empty() bool {
	return len(f) == 0
}

// Err returns nil when no field failed, otherwise a ValidationError
// carrying the whole map.
func (f Fields) Err() error {
	if len(f) == 0 {
		return nil
	}
	return core.NewValidationError(f)
}

func Name(value string) (string, bool) {
	if !namePattern.MatchString(value) {
		return "must be 2-50 characters and contain only letters, " +
			"spaces, hyphens or apostrophes", false
	}
	return "", true
}

func Email(value string) (string, bool) {
	if !emailPattern.MatchString(value) {
		return "must be a valid email address", false
	}
	return "", true
}

// Password enforces the canonical ruleset: length plus one character from
// each required class. The returned message names every missing class.
func Password(value string) (string, bool) {
	var missing []string

	if len(value) < MinPasswordLen {
		missing = append(missing, "be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}

	if !hasUpper {
		missing = append(missing, "contain at least one uppercase letter")
	}
	if !hasLower {
		missing = append(missing, "contain at least one lowercase letter")
	}
	if !hasDigit {
		missing = append(missing, "contain at least one digit")
	}
	if !hasSpecial {
		missing = append(
			missing,
			"contain at least one special character ("+passwordSpecials+")",
		)
	}

	if len(missing) > 0 {
		return "must " + strings.Join(missing, ", "), false
	}
	return "", true
}

func Bio(value string) (string, bool) {
	if utf8.RuneCountInString(value) > MaxBioLength {
		return "must be at most 500 characters", false
	}
	return "", true
}

func Username(value string) (string, bool) {
	length := utf8.RuneCountInString(value)
	if length < MinUsernameLength || length > MaxUsernameLength {
		return "must be 3-30 characters", false
	}
	return "", true
}

func GithubURL(value string) (string, bool) {
	if !githubPattern.MatchString(value) {
		return "must be a GitHub profile URL " +
			"(https://github.com/username)", false
	}
	return "", true
}

func Role(value string) (string, bool) {
	if value != RoleStudent && value != RoleTeacher {
		return "must be either STUDENT or TEACHER", false
	}
	return "", true
}

func CohortType(value string) (string, bool) {
	switch value {
	case "SOFTWARE_DEVELOPMENT", "FRONTEND_DEVELOPMENT", "DATA_ANALYTICS":
		return "", true
	}
	return "must be one of SOFTWARE_DEVELOPMENT, FRONTEND_DEVELOPMENT, " +
		"DATA_ANALYTICS", false
}

func Mobile(value string) (string, bool) {
	if !mobilePattern.MatchString(value) {
		return "must be 2-15 digits with an optional leading +", false
	}
	return "", true
}

// CommentContent checks the trimmed comment body. The trimmed value is
// what gets persisted.
func CommentContent(value string) (string, string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", "Comment content cannot be empty", false
	}
	if utf8.RuneCountInString(trimmed) > MaxCommentLength {
		return "", "Comment content must be at most 2560 characters", false
	}
	return trimmed, "", true
}
