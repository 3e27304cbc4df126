// AngelaMos | 2026
// handler_test.go

package post

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

func passthroughAuth(next http.Handler) http.Handler {
	return next
}

func setupPostRouter(t *testing.T) (chi.Router, *Service) {
	t.Helper()

	svc := NewService(newMockPostRepo())
	handler := NewHandler(svc)

	router := chi.NewRouter()
	handler.RegisterRoutes(router, passthroughAuth)

	return router, svc
}

func doAs(
	t *testing.T,
	router chi.Router,
	method, path, body string,
	userID int64,
) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(
		middleware.WithActor(req.Context(), userID, "STUDENT"),
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestToggleLikeEndpoint(t *testing.T) {
	router, svc := setupPostRouter(t)

	_, err := svc.Create(context.Background(), 7, "like me")
	require.NoError(t, err)

	rec := doAs(t, router, http.MethodPost, "/posts/1/toggle-like", "{}", 8)
	require.Equal(t, http.StatusOK, rec.Code)

	var first ToggleLikeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	assert.True(t, first.Liked)
	assert.Equal(t, 1, first.LikeCount)

	rec = doAs(t, router, http.MethodPost, "/posts/1/toggle-like", "{}", 8)
	require.Equal(t, http.StatusOK, rec.Code)

	var second ToggleLikeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.False(t, second.Liked)
	assert.Equal(t, 0, second.LikeCount)
}

func TestToggleLikeMissingPostEndpoint(t *testing.T) {
	router, _ := setupPostRouter(t)

	rec := doAs(t, router, http.MethodPost, "/posts/42/toggle-like", "{}", 8)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Post not found", body["post"])
}

func TestEditPostForbiddenEndpoint(t *testing.T) {
	router, svc := setupPostRouter(t)

	_, err := svc.Create(context.Background(), 7, "original")
	require.NoError(t, err)

	rec := doAs(t, router, http.MethodPatch, "/posts/1",
		`{"content": "hijacked"}`, 8)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeletePostEndpoint(t *testing.T) {
	router, svc := setupPostRouter(t)

	_, err := svc.Create(context.Background(), 7, "short lived")
	require.NoError(t, err)

	rec := doAs(t, router, http.MethodDelete, "/posts/1", "", 7)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doAs(t, router, http.MethodDelete, "/posts/1", "", 7)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePostEndpoint(t *testing.T) {
	router, _ := setupPostRouter(t)

	rec := doAs(t, router, http.MethodPost, "/posts",
		`{"content": "hello cohort"}`, 7)
	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope PostEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, int64(7), envelope.Post.AuthorID)
	assert.Equal(t, "hello cohort", envelope.Post.Content)
}
