package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hugh/go-roster/internal/api/dto"
	"github.com/hugh/go-roster/internal/auth"
)

type AuthHandler struct {
	authService auth.Authenticator
}

func NewAuthHandler(authService auth.Authenticator) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.StatusError{
			Status: "Bad request", Message: "Registration unsuccessful", StatusCode: http.StatusBadRequest,
		})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, dto.ValidationErrors{Errors: errs})
		return
	}

	resp, err := h.authService.Register(r.Context(), auth.RegisterInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Phone:     req.Phone,
	})

	if err != nil {
		// The duplicate check is re-run at write time, so a lost race
		// surfaces here as the same field error as the fast path.
		if errors.Is(err, auth.ErrEmailTaken) {
			writeJSON(w, http.StatusUnprocessableEntity, dto.ValidationErrors{Errors: []dto.FieldError{
				{Field: "email", Message: "Email already in use"},
			}})
			return
		}
		writeJSON(w, http.StatusBadRequest, dto.StatusError{
			Status: "Bad request", Message: "Registration unsuccessful", StatusCode: http.StatusBadRequest,
		})
		return
	}

	writeJSON(w, http.StatusCreated, dto.Success("Registration successful", dto.AuthData{
		AccessToken: resp.Token,
		User:        dto.NewUserDTO(resp.User),
	}))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthFailed(w)
		return
	}

	resp, err := h.authService.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})

	if err != nil {
		// Unknown email and wrong password produce the same response.
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeAuthFailed(w)
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.GenericError{Error: "Something went wrong"})
		return
	}

	writeJSON(w, http.StatusOK, dto.Success("Login successful", dto.AuthData{
		AccessToken: resp.Token,
		User:        dto.NewUserDTO(resp.User),
	}))
}

func writeAuthFailed(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, dto.StatusError{
		Status: "Bad request", Message: "Authentication failed", StatusCode: http.StatusUnauthorized,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
