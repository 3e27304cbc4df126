// AngelaMos | 2026
// handler.go

package cohort

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/cohort-api/internal/core"
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
	requireTeacher func(http.Handler) http.Handler,
) {
	r.Route("/cohorts", func(r chi.Router) {
		r.Use(authenticator)

		r.With(requireTeacher).Post("/", h.Create)
		r.Get("/{cohortID}/members", h.Members)
	})
}

type createCohortRequest struct {
	Type         string `json:"type"`
	CohortNumber int    `json:"cohortNumber"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCohortRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			core.BadRequest(w, "invalid request body")
			return
		}
	}

	created, err := h.service.Create(r.Context(), req.Type, req.CohortNumber)
	if err != nil {
		if vErr, ok := core.AsValidationError(err); ok {
			core.ValidationFailed(w, vErr.Fields)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, CohortEnvelope{
		Cohort: CohortResponse{ID: created.ID, Type: created.Type},
	})
}

func (h *Handler) Members(w http.ResponseWriter, r *http.Request) {
	cohortID, err := strconv.ParseInt(chi.URLParam(r, "cohortID"), 10, 64)
	if err != nil {
		core.BadRequest(w, "invalid cohort ID")
		return
	}

	members, err := h.service.Members(r.Context(), cohortID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFoundWith(w, map[string]string{
				"cohort": "No members found in this cohort",
			})
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, members)
}
