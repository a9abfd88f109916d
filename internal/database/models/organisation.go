package models

import "github.com/google/uuid"

type Organisation struct {
	Base
	// Name is limited to 20 characters for user-created organisations.
	// Default organisations ("{firstName}'s organisation") are exempt,
	// so the column itself is not size-constrained.
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"size:100" json:"description,omitempty"`
}

func (Organisation) TableName() string {
	return "organisations"
}

// Membership links one user to one organisation. Rows must reference
// existing users and organisations; the foreign keys enforce that.
type Membership struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	OrganisationID uuid.UUID `gorm:"type:uuid;primaryKey" json:"organisation_id"`

	User         *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Organisation *Organisation `gorm:"foreignKey:OrganisationID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Membership) TableName() string {
	return "memberships"
}
