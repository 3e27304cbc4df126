// AngelaMos | 2026
// handler.go

package post

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
	r.Route("/posts", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Create)
		r.Get("/", h.Feed)
		r.Patch("/{postID}", h.Edit)
		r.Delete("/{postID}", h.Delete)
		r.Post("/{postID}/toggle-like", h.ToggleLike)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r.Context())
	if actorID == 0 {
		core.Unauthorized(w, "")
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), actorID, req.Content)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, PostEnvelope{Post: ToPostResponse(created)})
}

func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.service.Feed(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, FeedEnvelope{Posts: feed})
}

func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r.Context())
	if actorID == 0 {
		core.Unauthorized(w, "")
		return
	}

	postID, err := parsePostID(r)
	if err != nil {
		core.BadRequest(w, "invalid post ID")
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	updated, err := h.service.Edit(r.Context(), actorID, postID, req.Content)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFoundWith(w, map[string]string{"post": "Post not found"})
			return
		}
		core.JSONError(w, err)
		return
	}

	core.Created(w, PostEnvelope{Post: ToPostResponse(updated)})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r.Context())
	if actorID == 0 {
		core.Unauthorized(w, "")
		return
	}

	postID, err := parsePostID(r)
	if err != nil {
		core.BadRequest(w, "invalid post ID")
		return
	}

	if err := h.service.Delete(r.Context(), actorID, postID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFoundWith(w, map[string]string{"post": "Post not found"})
			return
		}
		core.JSONError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r.Context())
	if actorID == 0 {
		core.Unauthorized(w, "")
		return
	}

	postID, err := parsePostID(r)
	if err != nil {
		core.BadRequest(w, "invalid post ID")
		return
	}

	result, err := h.service.ToggleLike(r.Context(), actorID, postID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFoundWith(w, map[string]string{"post": "Post not found"})
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, result)
}

func parsePostID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
}
