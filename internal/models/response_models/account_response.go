package response_models

import "github.com/google/uuid"

type CurrentUser struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  CurrentUser `json:"user"`
}
