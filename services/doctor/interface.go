package doctor

import "telecare/models"

// DoctorRegistrationInput is the payload for creating a doctor profile.
type DoctorRegistrationInput struct {
	Specialization  string   `json:"specialization" binding:"required"`
	LicenseNumber   string   `json:"licenseNumber" binding:"required"`
	PracticeAreas   []string `json:"practiceAreas"`
	ConsultationFee float64  `json:"consultationFee" binding:"required"`
}

// DoctorService defines practitioner profile operations.
type DoctorService interface {
	RegisterDoctor(userID string, input DoctorRegistrationInput) (*models.Doctor, error)
	GetDoctorByID(id string) (*models.Doctor, error)
	GetDoctorByUserID(userID string) (*models.Doctor, error)
	ListDoctors() ([]models.Doctor, error)
	UpdateDoctor(d models.Doctor) (*models.Doctor, error)
	AddCertification(doctorID string, cert models.Certification) (*models.Doctor, error)
	SetAvailability(doctorID string, windows []models.AvailabilityWindow) (*models.Doctor, error)
}
