// AngelaMos | 2026
// reconcile_test.go

package user

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/cohort-api/internal/core"
)

func strPtr(s string) *string {
	return &s
}

func testTarget() *User {
	return &User{
		ID:    5,
		Email: "target@test.com",
		Role:  "STUDENT",
	}
}

func TestReconcileStrangerRejected(t *testing.T) {
	actor := Actor{ID: 9, Role: "STUDENT"}

	set, err := ReconcileUpdate(actor, testTarget(), UpdateUserRequest{
		Bio: strPtr("perfectly valid bio"),
	})

	assert.Nil(t, set)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestReconcileOwnerCannotChangeRole(t *testing.T) {
	actor := Actor{ID: 5, Role: "STUDENT"}

	set, err := ReconcileUpdate(actor, testTarget(), UpdateUserRequest{
		Bio:  strPtr("hi"),
		Role: strPtr("TEACHER"),
	})

	assert.Nil(t, set)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrForbidden)
	assert.Contains(t, err.Error(), "cohort or role")
}

func TestReconcileOwnerCannotChangeCohort(t *testing.T) {
	actor := Actor{ID: 5, Role: "STUDENT"}

	var req UpdateUserRequest
	require.NoError(
		t,
		json.Unmarshal([]byte(`{"cohortId": 3}`), &req),
	)

	_, err := ReconcileUpdate(actor, testTarget(), req)
	assert.ErrorIs(t, err, core.ErrForbidden)

	// Legacy spelling hits the same gate.
	var legacy UpdateUserRequest
	require.NoError(
		t,
		json.Unmarshal([]byte(`{"cohort_id": 3}`), &legacy),
	)

	_, err = ReconcileUpdate(actor, testTarget(), legacy)
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestReconcileOwnerUpdatesProfile(t *testing.T) {
	actor := Actor{ID: 5, Role: "STUDENT"}

	set, err := ReconcileUpdate(actor, testTarget(), UpdateUserRequest{
		FirstName: strPtr("Alice"),
		LastName:  strPtr("Smith"),
		Bio:       strPtr("learning Go"),
		GithubURL: strPtr("https://github.com/alice"),
		Email:     strPtr("alice@test.com"),
		Mobile:    strPtr("+4412345678"),
	})

	require.NoError(t, err)
	require.NotNil(t, set)
	assert.Equal(t, "Alice", *set.FirstName)
	assert.Equal(t, "Smith", *set.LastName)
	assert.Equal(t, "learning Go", *set.Bio)
	assert.Equal(t, "https://github.com/alice", *set.GithubURL)
	assert.Equal(t, "alice@test.com", *set.Email)
	assert.Equal(t, "+4412345678", *set.Mobile)
	assert.Nil(t, set.Role)
	assert.Nil(t, set.CohortID)
}

func TestReconcileOwnerPasswordAdmitted(t *testing.T) {
	actor := Actor{ID: 5, Role: "STUDENT"}

	set, err := ReconcileUpdate(actor, testTarget(), UpdateUserRequest{
		Password: strPtr("Newpassw0rd!"),
	})

	require.NoError(t, err)
	require.NotNil(t, set.Password)
	assert.Equal(t, "Newpassw0rd!", *set.Password)
}

func TestReconcileTeacherCannotSetTargetPassword(t *testing.T) {
	actor := Actor{ID: 9, Role: "TEACHER"}

	set, err := ReconcileUpdate(actor, testTarget(), UpdateUserRequest{
		Password: strPtr("Newpassw0rd!"),
		Bio:      strPtr("set by teacher"),
	})

	require.NoError(t, err)
	assert.Nil(t, set.Password)
	assert.NotNil(t, set.Bio)
}

func TestReconcileTeacherSetsRoleAndCohort(t *testing.T) {
	actor := Actor{ID: 9, Role: "TEACHER"}

	var req UpdateUserRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"role": "TEACHER", "cohortId": "7"}`),
		&req,
	))

	set, err := ReconcileUpdate(actor, testTarget(), req)
	require.NoError(t, err)
	require.NotNil(t, set.Role)
	assert.Equal(t, "TEACHER", *set.Role)
	require.NotNil(t, set.CohortID)
	assert.Equal(t, int64(7), *set.CohortID)
}

func TestReconcileInvalidTeacherFieldsDropped(t *testing.T) {
	actor := Actor{ID: 9, Role: "TEACHER"}

	var req UpdateUserRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"role": "WIZARD", "cohortId": "soon", "bio": "still fine"}`),
		&req,
	))

	set, err := ReconcileUpdate(actor, testTarget(), req)
	require.NoError(t, err)
	assert.Nil(t, set.Role)
	assert.Nil(t, set.CohortID)
	require.NotNil(t, set.Bio)
}

func TestReconcilePlaceholderTreatedAsUnset(t *testing.T) {
	actor := Actor{ID: 5, Role: "STUDENT"}

	set, err := ReconcileUpdate(actor, testTarget(), UpdateUserRequest{
		FirstName: strPtr("string"),
		Bio:       strPtr("real bio"),
	})

	require.NoError(t, err)
	assert.Nil(t, set.FirstName)
	assert.NotNil(t, set.Bio)
}

func TestReconcilePlaceholderRoleSkipsRestrictedGate(t *testing.T) {
	actor := Actor{ID: 5, Role: "STUDENT"}

	set, err := ReconcileUpdate(actor, testTarget(), UpdateUserRequest{
		Role: strPtr("string"),
		Bio:  strPtr("hi"),
	})

	require.NoError(t, err)
	assert.Nil(t, set.Role)
	assert.NotNil(t, set.Bio)
}

func TestReconcileCollectsEveryFieldError(t *testing.T) {
	actor := Actor{ID: 5, Role: "STUDENT"}

	_, err := ReconcileUpdate(actor, testTarget(), UpdateUserRequest{
		Email:     strPtr("not-an-email"),
		FirstName: strPtr("X"),
		GithubURL: strPtr("https://gitlab.com/alice"),
	})

	require.Error(t, err)
	vErr, ok := core.AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, vErr.Fields, 3)
}

func TestReconcileEmptySetRejected(t *testing.T) {
	actor := Actor{ID: 5, Role: "STUDENT"}

	_, err := ReconcileUpdate(actor, testTarget(), UpdateUserRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))

	// All-placeholder bodies land in the same place.
	_, err = ReconcileUpdate(actor, testTarget(), UpdateUserRequest{
		FirstName: strPtr("string"),
		LastName:  strPtr(""),
	})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
