package user

import (
	"telecare/models"
)

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// UserService defines account management operations.
type UserService interface {
	RegisterUser(input models.UserRegistrationInput) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	UpdateUser(u models.User) (*models.User, error)
	DeleteUser(id string) error
}
