package doctorRepo

import "telecare/models"

// DoctorRepository defines data access for doctor profiles.
type DoctorRepository interface {
	Create(doctor *models.Doctor) error
	Update(doctor *models.Doctor) error
	Delete(id string) error

	// GetByID returns (nil, nil) when no doctor with the given id exists.
	GetByID(id string) (*models.Doctor, error)
	GetByUserID(userID string) (*models.Doctor, error)
	GetAll() ([]models.Doctor, error)
}
