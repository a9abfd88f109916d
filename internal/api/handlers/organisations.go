package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hugh/go-roster/internal/api/dto"
	"github.com/hugh/go-roster/internal/api/middleware"
	"github.com/hugh/go-roster/internal/orgs"
)

type OrganisationHandler struct {
	orgService *orgs.Service
}

func NewOrganisationHandler(orgService *orgs.Service) *OrganisationHandler {
	return &OrganisationHandler{orgService: orgService}
}

func (h *OrganisationHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.orgService.List(r.Context(), identity)
	if err != nil {
		if errors.Is(err, orgs.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.GenericError{Error: "Something went wrong"})
		return
	}

	data := dto.OrganisationListData{Organisations: make([]dto.OrganisationDTO, 0, len(list))}
	for i := range list {
		data.Organisations = append(data.Organisations, dto.NewOrganisationDTO(&list[i]))
	}

	writeJSON(w, http.StatusOK, dto.Success("Organisations user belongs to.", data))
}

func (h *OrganisationHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// An unparseable id gets the same 404 as a non-membership, so callers
	// learn nothing about which organisations exist.
	orgID, err := uuid.Parse(chi.URLParam(r, "orgId"))
	if err != nil {
		writeNotMember(w)
		return
	}

	org, err := h.orgService.Get(r.Context(), identity, orgID)
	if err != nil {
		if errors.Is(err, orgs.ErrNotMember) {
			writeNotMember(w)
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.GenericError{Error: "Something went wrong"})
		return
	}

	writeJSON(w, http.StatusOK, dto.Success("Organisation user belongs to.", dto.NewOrganisationDTO(org)))
}

func (h *OrganisationHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req dto.CreateOrganisationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.StatusError{
			Status: "Bad Request", Message: "Client error", StatusCode: http.StatusBadRequest,
		})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, dto.ValidationErrors{Errors: errs})
		return
	}

	org, err := h.orgService.Create(r.Context(), identity, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, orgs.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.GenericError{Error: "Something went wrong"})
		return
	}

	writeJSON(w, http.StatusOK, dto.Success("Organisation created successfully", dto.NewOrganisationDTO(org)))
}

// AddMember is deliberately not behind the access guard; see the router.
func (h *OrganisationHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "orgId"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.MessageResponse{Message: "Organisation not found"})
		return
	}

	var req dto.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
		return
	}

	if _, err := h.orgService.AddMember(r.Context(), orgID, userID); err != nil {
		switch {
		case errors.Is(err, orgs.ErrOrgNotFound):
			writeJSON(w, http.StatusNotFound, dto.MessageResponse{Message: "Organisation not found"})
		case errors.Is(err, orgs.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
		default:
			writeJSON(w, http.StatusInternalServerError, dto.GenericError{Error: "Something went wrong"})
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.Success("User added to the organisation successfully", nil))
}

func writeNotMember(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, dto.MessageResponse{Message: "User does not belong to this organisation"})
}
