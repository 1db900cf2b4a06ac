package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/matheuslc/prospectly/internal/infra/http/middleware"
	"github.com/matheuslc/prospectly/internal/usecase"
)

type EmailHandler struct {
	UseCase *usecase.GenerateEmailUseCase
}

func NewEmailHandler(uc *usecase.GenerateEmailUseCase) *EmailHandler {
	return &EmailHandler{UseCase: uc}
}

// Generate (POST /generate-email) drafts an outreach email for one of the
// caller's prospects and returns the persisted record.
func (h *EmailHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var input usecase.GenerateEmailInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if input.ProspectID == "" {
		writeError(w, http.StatusBadRequest, "Prospect ID is required")
		return
	}

	email, err := h.UseCase.Execute(r.Context(), input.ProspectID, userID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, email)
}
