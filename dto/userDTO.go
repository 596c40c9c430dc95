package dto

import (
	"taskboard/model"
	"taskboard/services"
)

const notAvailable = "Not available"

type AccountResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Rol       string `json:"rol"`
	LastLogin string `json:"last_login"`
}

type UpdateAccountRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
}

func NewAccountResponse(u model.User) AccountResponse {
	return AccountResponse{
		ID:        u.UserID,
		Email:     orPlaceholder(u.Email),
		Username:  orPlaceholder(u.Username),
		Rol:       orPlaceholder(u.Role),
		LastLogin: services.FormatLastLogin(u),
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
