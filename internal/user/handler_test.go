// AngelaMos | 2026
// handler_test.go

package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/cohort-api/internal/middleware"
)

// passthroughAuth stands in for the token middleware; tests inject the
// actor directly with middleware.WithActor.
func passthroughAuth(next http.Handler) http.Handler {
	return next
}

func setupUserRouter(t *testing.T) (chi.Router, *Service) {
	t.Helper()

	svc := NewService(newMockUserRepo())
	handler := NewHandler(svc)

	router := chi.NewRouter()
	handler.RegisterRoutes(router, passthroughAuth)

	return router, svc
}

func doJSON(
	t *testing.T,
	router chi.Router,
	method, path, body string,
	actor *Actor,
) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if actor != nil {
		ctx := middleware.WithActor(req.Context(), actor.ID, actor.Role)
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateUserHandler(t *testing.T) {
	router, _ := setupUserRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/users",
		`{"email": "alice@test.com", "password": "Str0ngpass!",
		  "firstName": "Alice", "lastName": "Smith"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope UserEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "alice@test.com", envelope.User.Email)
	assert.Equal(t, "STUDENT", envelope.User.Role)

	// The raw body never carries credential material.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "Str0ngpass!")
}

func TestCreateUserHandlerFieldErrors(t *testing.T) {
	router, _ := setupUserRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/users",
		`{"email": "nope", "password": "weak"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestListUsersEmptyIsNotFound(t *testing.T) {
	router, _ := setupUserRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/users", "",
		&Actor{ID: 1, Role: "STUDENT"})

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "No users found", body["users"])
}

func TestListUsersMalformedFilter(t *testing.T) {
	router, _ := setupUserRouter(t)

	rec := doJSON(t, router, http.MethodGet,
		"/users?firstName="+strings.Repeat("a", 60), "",
		&Actor{ID: 1, Role: "STUDENT"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserByIDNotFound(t *testing.T) {
	router, _ := setupUserRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/users/42", "",
		&Actor{ID: 1, Role: "STUDENT"})

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User not found", body["id"])
}

func TestPatchUserOwnerWithRoleRejected(t *testing.T) {
	router, svc := setupUserRouter(t)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPatch, "/users/1",
		`{"biography": "hi", "role": "TEACHER"}`,
		&Actor{ID: created.ID, Role: "STUDENT"})

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "cohort or role")

	// Bio must not have been applied on the rejected request.
	after, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, after.Bio)
}

func TestPatchUserOwnerUpdatesBio(t *testing.T) {
	router, svc := setupUserRouter(t)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPatch, "/users/1",
		`{"biography": "learning Go"}`,
		&Actor{ID: created.ID, Role: "STUDENT"})

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope UserEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.User.Bio)
	assert.Equal(t, "learning Go", *envelope.User.Bio)
}

func TestPatchUserDuplicateEmail(t *testing.T) {
	router, svc := setupUserRouter(t)

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	second := validCreateRequest()
	second.Email = "bob@test.com"
	target, err := svc.Create(context.Background(), second)
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPatch, "/users/2",
		`{"email": "alice@test.com"}`,
		&Actor{ID: target.ID, Role: "STUDENT"})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	assert.Equal(t, "Email already in use", fields["email"])
}

func TestPatchUserStrangerForbidden(t *testing.T) {
	router, svc := setupUserRouter(t)

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPatch, "/users/1",
		`{"biography": "hi"}`,
		&Actor{ID: 99, Role: "STUDENT"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPatchUserEmptySet(t *testing.T) {
	router, svc := setupUserRouter(t)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPatch, "/users/1",
		`{"firstName": "string"}`,
		&Actor{ID: created.ID, Role: "STUDENT"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no valid fields")
}

func TestProgressEndpoint(t *testing.T) {
	router, svc := setupUserRouter(t)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/users/1/progress", "",
		&Actor{ID: created.ID, Role: "STUDENT"})

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope ProgressEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 10, envelope.Progress.CompletedModules.Total)

	rec = doJSON(t, router, http.MethodGet, "/users/1/progress", "",
		&Actor{ID: 2, Role: "STUDENT"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
