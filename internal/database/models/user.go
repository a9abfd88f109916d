package models

type User struct {
	Base
	Email        string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FirstName    string `gorm:"size:50;not null" json:"first_name"`
	LastName     string `gorm:"size:50;not null" json:"last_name"`
	Phone        string `json:"phone,omitempty"`
}

func (User) TableName() string {
	return "users"
}
