package user

import (
	"fmt"
	"strings"
	"time"

	userRepo "telecare/database/repository/user"
	"telecare/models"
	"telecare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegisterUser creates an account with a bcrypt-hashed password and returns a
// signed token for the new session.
func (s *DefaultUserService) RegisterUser(input models.UserRegistrationInput) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if existing != nil {
		return nil, &DuplicateEmailError{Email: email}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = models.RolePatient
	}

	u := models.User{
		ID:           uuid.New().String(),
		FullName:     input.FullName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		PhoneNumber:  input.PhoneNumber,
	}
	if err := s.Repo.Create(&u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	utils.GetLogger().Info("user registered", zap.String("userID", u.ID), zap.String("role", u.Role))
	return &AuthResponse{Token: token, User: u}, nil
}

// AuthenticateUser verifies credentials and issues a signed token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, &InvalidCredentialsError{}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, &InvalidCredentialsError{}
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResponse{Token: token, User: *userRec}, nil
}

// GetUserByID fetches an account by id.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &NotFoundError{ID: id}
	}
	return u, nil
}

// UpdateUser persists profile changes.
func (s *DefaultUserService) UpdateUser(u models.User) (*models.User, error) {
	if err := s.Repo.Update(&u); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", u.ID, err)
	}
	return &u, nil
}

// DeleteUser removes an account.
func (s *DefaultUserService) DeleteUser(id string) error {
	return s.Repo.Delete(id)
}
