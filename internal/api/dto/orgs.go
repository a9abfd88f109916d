package dto

import "github.com/hugh/go-roster/internal/database/models"

type CreateOrganisationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r CreateOrganisationRequest) Validate() []FieldError {
	var errs []FieldError

	if len(r.Name) < 1 || len(r.Name) > 20 {
		errs = append(errs, FieldError{Field: "name", Message: "Name must be between 1 and 20 characters"})
	}
	if len(r.Description) < 1 || len(r.Description) > 100 {
		errs = append(errs, FieldError{Field: "description", Message: "Description must be between 1 and 100 characters"})
	}

	return errs
}

type AddMemberRequest struct {
	UserID string `json:"userId"`
}

type OrganisationDTO struct {
	OrgID       string `json:"orgId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func NewOrganisationDTO(o *models.Organisation) OrganisationDTO {
	return OrganisationDTO{
		OrgID:       o.ID.String(),
		Name:        o.Name,
		Description: o.Description,
	}
}

type OrganisationListData struct {
	Organisations []OrganisationDTO `json:"organisations"`
}
