package userRepo

import "telecare/models"

// UserRepository defines data access for platform accounts.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error

	// GetByID and GetByEmail return (nil, nil) when no matching user exists.
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
