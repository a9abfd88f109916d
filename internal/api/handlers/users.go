package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hugh/go-roster/internal/api/dto"
	"github.com/hugh/go-roster/internal/auth"
)

type UserHandler struct {
	authService auth.Authenticator
}

func NewUserHandler(authService auth.Authenticator) *UserHandler {
	return &UserHandler{authService: authService}
}

// Get returns the public projection of a user record. Any failure,
// including an unknown id, collapses to the generic shape.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.GenericError{Error: "Something went wrong"})
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.GenericError{Error: "Something went wrong"})
		return
	}

	writeJSON(w, http.StatusOK, dto.Success("user record", dto.NewUserDTO(user)))
}
