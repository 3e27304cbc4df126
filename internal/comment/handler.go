// AngelaMos | 2026
// handler.go

package comment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/cohort-api/internal/core"
	"github.com/angelamos/cohort-api/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	// Registered as flat patterns rather than a nested Route so the
	// /posts subtree mount and these endpoints can share a prefix.
	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/posts/{postID}/comments", h.Create)
		r.Get("/posts/{postID}/comments", h.ListByPost)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r.Context())
	if actorID == 0 {
		core.Unauthorized(w, "")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		core.BadRequest(w, "invalid post ID")
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), actorID, postID, req.Content)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFoundWith(w, map[string]string{"post": "Post not found"})
			return
		}
		core.JSONError(w, err)
		return
	}

	core.Created(w, CommentEnvelope{Comment: ToCommentResponse(created)})
}

func (h *Handler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		core.BadRequest(w, "invalid post ID")
		return
	}

	comments, err := h.service.ListByPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFoundWith(w, map[string]string{"post": "Post not found"})
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, map[string][]CommentResponse{"comments": comments})
}
