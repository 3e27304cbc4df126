// AngelaMos | 2026
// handler.go

package user

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
	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.Create)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/", h.List)
			r.Get("/{userID}", h.GetByID)
			r.Patch("/{userID}", h.Update)
			r.Get("/{userID}/progress", h.Progress)
		})
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		if vErr, ok := core.AsValidationError(err); ok {
			core.ValidationFailed(w, vErr.Fields)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, UserEnvelope{User: ToUserResponse(created)})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := ListUsersParams{
		FirstName: r.URL.Query().Get("firstName"),
		LastName:  r.URL.Query().Get("lastName"),
	}

	users, err := h.service.List(r.Context(), params)
	if err != nil {
		if vErr, ok := core.AsValidationError(err); ok {
			core.ValidationFailed(w, vErr.Fields)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	if len(users) == 0 {
		core.NotFoundWith(w, map[string]string{"users": "No users found"})
		return
	}

	core.OK(w, UserListEnvelope{Users: ToUserResponseList(users)})
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r)
	if err != nil {
		core.BadRequest(w, "invalid user ID")
		return
	}

	found, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFoundWith(w, map[string]string{"id": "User not found"})
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, UserEnvelope{User: ToUserResponse(found)})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r)
	if err != nil {
		core.BadRequest(w, "invalid user ID")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	actor := Actor{
		ID:   middleware.GetUserID(r.Context()),
		Role: middleware.GetUserRole(r.Context()),
	}
	if actor.ID == 0 {
		core.Unauthorized(w, "")
		return
	}

	updated, err := h.service.Update(r.Context(), actor, id, req)
	if err != nil {
		h.writeUpdateError(w, err)
		return
	}

	core.OK(w, UserEnvelope{User: ToUserResponse(updated)})
}

func (h *Handler) writeUpdateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFoundWith(w, map[string]string{"id": "User not found"})
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, "no valid fields to update")
	default:
		core.JSONError(w, err)
	}
}

func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r)
	if err != nil {
		core.BadRequest(w, "invalid user ID")
		return
	}

	actor := Actor{
		ID:   middleware.GetUserID(r.Context()),
		Role: middleware.GetUserRole(r.Context()),
	}
	if actor.ID == 0 {
		core.Unauthorized(w, "")
		return
	}

	summary, err := h.service.Progress(r.Context(), actor, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFoundWith(w, map[string]string{"id": "User not found"})
			return
		}
		core.JSONError(w, err)
		return
	}

	core.OK(w, ProgressEnvelope{Progress: *summary})
}

func parseUserID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
}
