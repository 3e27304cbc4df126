// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/cohort-api/internal/core"
)

type mockUserRepo struct {
	users  map[int64]*User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:  make(map[int64]*User),
		nextID: 1,
	}
}

func (m *mockUserRepo) Create(_ context.Context, user *User) error {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
	}

	user.ID = m.nextID
	m.nextID++
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	clone := *user
	return &clone, nil
}

func (m *mockUserRepo) GetByEmail(
	_ context.Context,
	email string,
) (*User, error) {
	for _, user := range m.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func (m *mockUserRepo) List(
	_ context.Context,
	params ListUsersParams,
) ([]User, error) {
	var users []User
	for id := int64(1); id < m.nextID; id++ {
		user, ok := m.users[id]
		if !ok {
			continue
		}
		if params.FirstName != "" &&
			(user.FirstName == nil || *user.FirstName != params.FirstName) {
			continue
		}
		if params.LastName != "" &&
			(user.LastName == nil || *user.LastName != params.LastName) {
			continue
		}
		users = append(users, *user)
	}
	return users, nil
}

func (m *mockUserRepo) ApplyUpdate(
	_ context.Context,
	id int64,
	set *UpdateSet,
) (*User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("update user: %w", core.ErrNotFound)
	}

	if set.Email != nil {
		for otherID, other := range m.users {
			if otherID != id && other.Email == *set.Email {
				return nil, fmt.Errorf(
					"update user: %w", core.ErrDuplicateKey,
				)
			}
		}
		user.Email = *set.Email
	}
	if set.Password != nil {
		user.PasswordHash = *set.Password
	}
	if set.Role != nil {
		user.Role = *set.Role
	}
	if set.CohortID != nil {
		user.CohortID = set.CohortID
	}
	if set.FirstName != nil {
		user.FirstName = set.FirstName
	}
	if set.LastName != nil {
		user.LastName = set.LastName
	}
	if set.Bio != nil {
		user.Bio = set.Bio
	}
	if set.GithubURL != nil {
		user.GithubURL = set.GithubURL
	}
	if set.Mobile != nil {
		user.Mobile = set.Mobile
	}

	clone := *user
	return &clone, nil
}

func (m *mockUserRepo) UpdatePassword(
	_ context.Context,
	id int64,
	passwordHash string,
) error {
	user, ok := m.users[id]
	if !ok {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}
	user.PasswordHash = passwordHash
	return nil
}

func (m *mockUserRepo) IncrementTokenVersion(
	_ context.Context,
	id int64,
) error {
	user, ok := m.users[id]
	if !ok {
		return fmt.Errorf("increment token version: %w", core.ErrNotFound)
	}
	user.TokenVersion++
	return nil
}

func (m *mockUserRepo) ExistsByEmail(
	_ context.Context,
	email string,
) (bool, error) {
	for _, user := range m.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func validCreateRequest() CreateUserRequest {
	return CreateUserRequest{
		Email:     "alice@test.com",
		Password:  "Str0ngpass!",
		FirstName: strPtr("Alice"),
		LastName:  strPtr("Smith"),
	}
}

func TestCreateUserRoundTrip(t *testing.T) {
	svc := NewService(newMockUserRepo())

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "STUDENT", created.Role)

	fetched, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@test.com", fetched.Email)
	assert.Equal(t, "Alice", *fetched.FirstName)
	assert.Equal(t, "Smith", *fetched.LastName)

	// The stored credential is a hash, never the raw password.
	assert.NotEqual(t, "Str0ngpass!", fetched.PasswordHash)
	assert.NotEmpty(t, fetched.PasswordHash)

	resp := ToUserResponse(fetched)
	assert.Equal(t, "alice@test.com", resp.Email)
	assert.NotContains(t, fmt.Sprintf("%+v", resp), fetched.PasswordHash)
}

func TestCreateUserInvalidFieldsReportedTogether(t *testing.T) {
	svc := NewService(newMockUserRepo())

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Email:     "nope",
		Password:  "weak",
		FirstName: strPtr("X"),
	})

	require.Error(t, err)
	vErr, ok := core.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, vErr.Fields, "email")
	assert.Contains(t, vErr.Fields, "password")
	assert.Contains(t, vErr.Fields, "firstName")
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := NewService(newMockUserRepo())

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validCreateRequest())
	require.Error(t, err)

	vErr, ok := core.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Email already in use", vErr.Fields["email"])
}

func TestCreateUserLowercasesEmail(t *testing.T) {
	svc := NewService(newMockUserRepo())

	req := validCreateRequest()
	req.Email = "Alice@Test.COM"

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "alice@test.com", created.Email)
}

func TestListUsersRejectsMalformedFilters(t *testing.T) {
	svc := NewService(newMockUserRepo())

	_, err := svc.List(context.Background(), ListUsersParams{
		FirstName: strings.Repeat("a", 60),
	})

	require.Error(t, err)
	vErr, ok := core.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, vErr.Fields, "firstName")
}

func TestListUsersFiltersByName(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	first := validCreateRequest()
	_, err := svc.Create(context.Background(), first)
	require.NoError(t, err)

	second := validCreateRequest()
	second.Email = "bob@test.com"
	second.FirstName = strPtr("Bob")
	_, err = svc.Create(context.Background(), second)
	require.NoError(t, err)

	users, err := svc.List(context.Background(), ListUsersParams{
		FirstName: "Bob",
	})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "bob@test.com", users[0].Email)
}

func TestUpdateHashesAdmittedPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	actor := Actor{ID: created.ID, Role: "STUDENT"}
	updated, err := svc.Update(
		context.Background(),
		actor,
		created.ID,
		UpdateUserRequest{Password: strPtr("Newpassw0rd!")},
	)
	require.NoError(t, err)

	assert.NotEqual(t, "Newpassw0rd!", updated.PasswordHash)
	ok, err := core.VerifyPassword("Newpassw0rd!", updated.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdateDuplicateEmailRejected(t *testing.T) {
	svc := NewService(newMockUserRepo())

	first, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	req := validCreateRequest()
	req.Email = "bob@test.com"
	target, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Update(
		context.Background(),
		Actor{ID: target.ID, Role: RoleStudent},
		target.ID,
		UpdateUserRequest{Email: strPtr(first.Email)},
	)
	require.Error(t, err)

	vErr, ok := core.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Email already in use", vErr.Fields["email"])
}

func TestCreateUserUsernameLength(t *testing.T) {
	svc := NewService(newMockUserRepo())

	req := validCreateRequest()
	req.Username = strPtr("ab")

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	vErr, ok := core.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, vErr.Fields, "username")

	req = validCreateRequest()
	req.Email = "carol@test.com"
	req.Username = strPtr("carol")

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, created.Username)
	assert.Equal(t, "carol", *created.Username)
}

func TestUpdateMissingTarget(t *testing.T) {
	svc := NewService(newMockUserRepo())

	_, err := svc.Update(
		context.Background(),
		Actor{ID: 1, Role: "TEACHER"},
		42,
		UpdateUserRequest{Bio: strPtr("hi")},
	)

	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestProgressVisibility(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// Self.
	summary, err := svc.Progress(
		context.Background(),
		Actor{ID: created.ID, Role: "STUDENT"},
		created.ID,
	)
	require.NoError(t, err)
	assert.Equal(t, 10, summary.CompletedModules.Total)
	assert.Equal(t, 40, summary.CompletedUnits.Total)
	assert.Equal(t, 120, summary.CompletedExercises.Total)

	// Any teacher.
	_, err = svc.Progress(
		context.Background(),
		Actor{ID: 99, Role: "TEACHER"},
		created.ID,
	)
	assert.NoError(t, err)

	// Another student.
	_, err = svc.Progress(
		context.Background(),
		Actor{ID: 99, Role: "STUDENT"},
		created.ID,
	)
	assert.ErrorIs(t, err, core.ErrForbidden)
}
