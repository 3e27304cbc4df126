// AngelaMos | 2026
// validate_test.go

package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/cohort-api/internal/core"
)

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"simple", "Alice", true},
		{"with space", "Mary Jane", true},
		{"with hyphen", "Jean-Luc", true},
		{"with apostrophe", "O'Brien", true},
		{"minimum length", "Al", true},
		{"maximum length", "A" + strings.Repeat("b", 49), true},
		{"single character", "A", false},
		{"too long", "A" + strings.Repeat("b", 50), false},
		{"digits", "Alice3", false},
		{"leading space", " Alice", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := Name(tt.value)
			assert.Equal(t, tt.valid, ok)
			if !tt.valid {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"a.b+c@sub.domain.org",
	}
	for _, v := range valid {
		_, ok := Email(v)
		assert.True(t, ok, v)
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing@tld",
		"two@@example.com",
		"spaces in@example.com",
	}
	for _, v := range invalid {
		_, ok := Email(v)
		assert.False(t, ok, v)
	}
}

func TestPassword(t *testing.T) {
	_, ok := Password("Str0ngpass!")
	assert.True(t, ok)

	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"too short", "Ab1!", "at least 8 characters"},
		{"missing uppercase", "str0ngpass!", "uppercase"},
		{"missing lowercase", "STR0NGPASS!", "lowercase"},
		{"missing digit", "Strongpass!", "digit"},
		{"missing special", "Str0ngpass1", "special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := Password(tt.value)
			require.False(t, ok)
			assert.Contains(t, msg, tt.expected)
		})
	}
}

func TestPasswordNamesEveryMissingClass(t *testing.T) {
	msg, ok := Password("a")
	require.False(t, ok)

	assert.Contains(t, msg, "at least 8 characters")
	assert.Contains(t, msg, "uppercase")
	assert.Contains(t, msg, "digit")
	assert.Contains(t, msg, "special character")
	assert.NotContains(t, msg, "lowercase")
}

func TestBio(t *testing.T) {
	_, ok := Bio(strings.Repeat("a", MaxBioLength))
	assert.True(t, ok)

	msg, ok := Bio(strings.Repeat("a", MaxBioLength+1))
	assert.False(t, ok)
	assert.Contains(t, msg, "500")

	// Limits count characters, not bytes.
	_, ok = Bio(strings.Repeat("é", MaxBioLength))
	assert.True(t, ok)

	_, ok = Bio(strings.Repeat("é", MaxBioLength+1))
	assert.False(t, ok)
}

func TestUsername(t *testing.T) {
	_, ok := Username("ab")
	assert.False(t, ok)

	_, ok = Username(strings.Repeat("a", MaxUsernameLength+1))
	assert.False(t, ok)

	_, ok = Username("alice_dev")
	assert.True(t, ok)

	_, ok = Username(strings.Repeat("é", MaxUsernameLength))
	assert.True(t, ok)
}

func TestGithubURL(t *testing.T) {
	valid := []string{
		"https://github.com/alice",
		"https://github.com/alice-b",
		"https://github.com/a",
	}
	for _, v := range valid {
		_, ok := GithubURL(v)
		assert.True(t, ok, v)
	}

	invalid := []string{
		"http://github.com/alice",
		"https://gitlab.com/alice",
		"https://github.com/alice/repo",
		"https://github.com/",
		"https://github.com/-alice",
	}
	for _, v := range invalid {
		_, ok := GithubURL(v)
		assert.False(t, ok, v)
	}
}

func TestRole(t *testing.T) {
	_, ok := Role(RoleStudent)
	assert.True(t, ok)
	_, ok = Role(RoleTeacher)
	assert.True(t, ok)

	for _, v := range []string{"ADMIN", "student", "teacher", ""} {
		_, ok := Role(v)
		assert.False(t, ok, v)
	}
}

func TestCohortType(t *testing.T) {
	for _, v := range []string{
		"SOFTWARE_DEVELOPMENT", "FRONTEND_DEVELOPMENT", "DATA_ANALYTICS",
	} {
		_, ok := CohortType(v)
		assert.True(t, ok, v)
	}

	_, ok := CohortType("BASKET_WEAVING")
	assert.False(t, ok)
}

func TestMobile(t *testing.T) {
	valid := []string{"+4412345678", "12", "123456789012345"}
	for _, v := range valid {
		_, ok := Mobile(v)
		assert.True(t, ok, v)
	}

	invalid := []string{"", "1", "+1234567890123456", "44-123", "phone"}
	for _, v := range invalid {
		_, ok := Mobile(v)
		assert.False(t, ok, v)
	}
}

func TestCommentContent(t *testing.T) {
	trimmed, _, ok := CommentContent("  hello  ")
	require.True(t, ok)
	assert.Equal(t, "hello", trimmed)

	_, msg, ok := CommentContent("   ")
	assert.False(t, ok)
	assert.Contains(t, msg, "empty")

	_, _, ok = CommentContent(strings.Repeat("a", MaxCommentLength))
	assert.True(t, ok)

	_, msg, ok = CommentContent(strings.Repeat("a", MaxCommentLength+1))
	assert.False(t, ok)
	assert.Contains(t, msg, "2560")

	// Multibyte content within the character limit is accepted.
	_, _, ok = CommentContent(strings.Repeat("é", MaxCommentLength))
	assert.True(t, ok)

	_, _, ok = CommentContent(strings.Repeat("é", MaxCommentLength+1))
	assert.False(t, ok)
}

func TestFieldsCollectEveryViolation(t *testing.T) {
	fields := Fields{}

	if msg, ok := Email("not-an-email"); !ok {
		fields.Add("email", msg)
	}
	if msg, ok := Password("short"); !ok {
		fields.Add("password", msg)
	}
	if msg, ok := Name("X"); !ok {
		fields.Add("firstName", msg)
	}

	err := fields.Err()
	require.Error(t, err)

	vErr, ok := core.AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, vErr.Fields, 3)
	assert.Contains(t, vErr.Fields, "email")
	assert.Contains(t, vErr.Fields, "password")
	assert.Contains(t, vErr.Fields, "firstName")
}

func TestFieldsEmpty(t *testing.T) {
	fields := Fields{}
	assert.True(t, fields.Empty())
	assert.NoError(t, fields.Err())
}
