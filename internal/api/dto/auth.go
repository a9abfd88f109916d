package dto

import (
	"regexp"

	"github.com/hugh/go-roster/internal/database/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	Phone     string `json:"phone,omitempty"`
}

func (r RegisterRequest) Validate() []FieldError {
	var errs []FieldError

	if !emailRegex.MatchString(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email address"})
	} else if len(r.Email) > 100 {
		errs = append(errs, FieldError{Field: "email", Message: "Email must be at most 100 characters"})
	}
	if len(r.FirstName) < 1 || len(r.FirstName) > 50 {
		errs = append(errs, FieldError{Field: "firstName", Message: "First name must be between 1 and 50 characters"})
	}
	if len(r.LastName) < 1 || len(r.LastName) > 50 {
		errs = append(errs, FieldError{Field: "lastName", Message: "Last name must be between 1 and 50 characters"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 8 characters long"})
	}

	return errs
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthData struct {
	AccessToken string  `json:"accessToken"`
	User        UserDTO `json:"user"`
}

// UserDTO is the public user projection; it never carries the password hash.
type UserDTO struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		UserID:    u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}
