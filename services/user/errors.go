package user

// NotFoundError signals that no account with the given id exists.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "user with id " + e.ID + " not found"
}

// DuplicateEmailError signals a registration attempt with a taken email.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return "an account with email " + e.Email + " already exists"
}

// InvalidCredentialsError signals a failed login. It deliberately carries no
// detail about which part of the credentials was wrong.
type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string {
	return "invalid email or password"
}
