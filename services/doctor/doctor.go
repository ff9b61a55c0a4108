package doctor

import (
	"fmt"

	doctorRepo "telecare/database/repository/doctor"
	userRepo "telecare/database/repository/user"
	"telecare/models"
	"telecare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultDoctorService is the production implementation of DoctorService.
type DefaultDoctorService struct {
	Repo     doctorRepo.DoctorRepository
	UserRepo userRepo.UserRepository
}

// RegisterDoctor creates a practitioner profile for an existing user account.
func (s *DefaultDoctorService) RegisterDoctor(userID string, input DoctorRegistrationInput) (*models.Doctor, error) {
	u, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %s: %w", userID, err)
	}
	if u == nil {
		return nil, &NotFoundError{Resource: "user", ID: userID}
	}

	existing, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, &ProfileExistsError{UserID: userID}
	}

	d := models.Doctor{
		ID:              uuid.New().String(),
		UserID:          userID,
		FullName:        u.FullName,
		Email:           u.Email,
		Specialization:  input.Specialization,
		LicenseNumber:   input.LicenseNumber,
		PracticeAreas:   input.PracticeAreas,
		ConsultationFee: input.ConsultationFee,
		// New profiles are bookable until the doctor pauses them.
		IsAvailable: true,
	}
	if err := s.Repo.Create(&d); err != nil {
		return nil, fmt.Errorf("failed to create doctor profile: %w", err)
	}

	if u.Role != models.RoleDoctor {
		u.Role = models.RoleDoctor
		if err := s.UserRepo.Update(u); err != nil {
			utils.GetLogger().Error("RegisterDoctor: failed to promote user role",
				zap.String("userID", userID), zap.Error(err))
		}
	}

	utils.GetLogger().Info("doctor registered", zap.String("doctorID", d.ID), zap.String("userID", userID))
	return &d, nil
}

// GetDoctorByID fetches a doctor profile by id.
func (s *DefaultDoctorService) GetDoctorByID(id string) (*models.Doctor, error) {
	d, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, &NotFoundError{Resource: "doctor", ID: id}
	}
	return d, nil
}

// GetDoctorByUserID fetches the profile linked to a user account.
func (s *DefaultDoctorService) GetDoctorByUserID(userID string) (*models.Doctor, error) {
	d, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, &NotFoundError{Resource: "doctor profile for user", ID: userID}
	}
	return d, nil
}

// ListDoctors returns all doctor profiles.
func (s *DefaultDoctorService) ListDoctors() ([]models.Doctor, error) {
	return s.Repo.GetAll()
}

// UpdateDoctor persists profile changes.
func (s *DefaultDoctorService) UpdateDoctor(d models.Doctor) (*models.Doctor, error) {
	if err := s.Repo.Update(&d); err != nil {
		return nil, fmt.Errorf("failed to update doctor %s: %w", d.ID, err)
	}
	return &d, nil
}

// AddCertification appends a credential to the doctor's profile.
func (s *DefaultDoctorService) AddCertification(doctorID string, cert models.Certification) (*models.Doctor, error) {
	d, err := s.GetDoctorByID(doctorID)
	if err != nil {
		return nil, err
	}
	if cert.Status == "" {
		cert.Status = "active"
	}
	d.Certifications = append(d.Certifications, cert)
	return s.UpdateDoctor(*d)
}

// SetAvailability replaces the doctor's per-weekday availability windows,
// which the scheduler consults when generating slots.
func (s *DefaultDoctorService) SetAvailability(doctorID string, windows []models.AvailabilityWindow) (*models.Doctor, error) {
	d, err := s.GetDoctorByID(doctorID)
	if err != nil {
		return nil, err
	}
	d.Availability = windows
	return s.UpdateDoctor(*d)
}
