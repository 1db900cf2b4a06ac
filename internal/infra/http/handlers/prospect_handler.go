package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matheuslc/prospectly/internal/infra/http/middleware"
	"github.com/matheuslc/prospectly/internal/usecase"
)

type ProspectHandler struct {
	UseCase *usecase.ProspectUseCase
}

func NewProspectHandler(uc *usecase.ProspectUseCase) *ProspectHandler {
	return &ProspectHandler{UseCase: uc}
}

// List (GET /prospects) returns the caller's prospects newest-first, each
// with at most its latest generated email for summary display.
func (h *ProspectHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	prospects, err := h.UseCase.List(r.Context(), userID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, prospects)
}

// Create (POST /prospects). Mutation endpoints return the complete resulting
// resource so the client can patch its view state without a follow-up fetch.
func (h *ProspectHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var input usecase.CreateProspectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	prospect, err := h.UseCase.Create(r.Context(), userID, input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, prospect)
}

// Get (GET /prospects/{id}) returns the prospect with its full email history.
func (h *ProspectHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	id := chi.URLParam(r, "id")

	prospect, err := h.UseCase.Get(r.Context(), id, userID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, prospect)
}

// Update (PUT /prospects/{id}) applies a partial update and returns the full
// updated record.
func (h *ProspectHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	id := chi.URLParam(r, "id")

	var input usecase.UpdateProspectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	prospect, err := h.UseCase.Update(r.Context(), id, userID, input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, prospect)
}

// Delete (DELETE /prospects/{id}) removes the prospect and, via the cascade,
// all of its generated emails.
func (h *ProspectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.UseCase.Delete(r.Context(), id, userID); err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, usecase.DeleteProspectOutput{Success: true})
}
