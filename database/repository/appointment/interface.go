package appointmentRepo

import (
	"time"

	"telecare/models"
)

// AppointmentRepository defines data access for appointments.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	Update(appt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	GetByUser(userID string) ([]models.Appointment, error)
	GetByDoctor(doctorID string) ([]models.Appointment, error)

	// FindByDoctorAndStatus returns the doctor's appointments whose status is
	// one of the given statuses, in storage retrieval order.
	FindByDoctorAndStatus(doctorID string, statuses []string) ([]models.Appointment, error)

	// FindByDoctorAndStatusInRange narrows FindByDoctorAndStatus to
	// appointments contained in [dayStart, dayEnd], sorted by start time.
	FindByDoctorAndStatusInRange(doctorID string, statuses []string, dayStart, dayEnd time.Time) ([]models.Appointment, error)
}
