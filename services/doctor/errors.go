package doctor

import "fmt"

// NotFoundError signals a missing doctor profile or user account.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

// ProfileExistsError signals that the user already has a doctor profile.
type ProfileExistsError struct {
	UserID string
}

func (e *ProfileExistsError) Error() string {
	return "user " + e.UserID + " already has a doctor profile"
}
