package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the read-only projection of the users table owned by the auth service.
// Practice features only preload it for names/email on attempt listings.
type UserModel struct {
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"id"`
	UserFirstName string    `gorm:"column:user_first_name;type:varchar(80)" json:"firstName"`
	UserLastName  string    `gorm:"column:user_last_name;type:varchar(80)" json:"lastName"`
	UserEmail     string    `gorm:"column:user_email;type:varchar(160);uniqueIndex" json:"email"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
