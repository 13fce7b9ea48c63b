package dto

import (
	"strings"

	"github.com/google/uuid"

	"nguvan_backend/internals/features/users/user/model"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
}

func FromUserModel(m *model.UserModel) *UserResponse {
	if m == nil || m.UserID == uuid.Nil {
		return nil
	}
	return &UserResponse{
		ID:        m.UserID,
		FirstName: m.UserFirstName,
		LastName:  m.UserLastName,
		FullName:  strings.TrimSpace(m.UserFirstName + " " + m.UserLastName),
		Email:     m.UserEmail,
	}
}
