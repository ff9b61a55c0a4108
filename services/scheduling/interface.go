package scheduling

import (
	"time"

	appointmentRepo "telecare/database/repository/appointment"
	doctorRepo "telecare/database/repository/doctor"
	"telecare/models"
)

// SchedulingService answers availability questions for a doctor's calendar.
// It is a pure read-and-decide component: it never writes, retries or logs
// away failures, and every call recomputes from a fresh storage read. The
// availability check is advisory only; callers that need correctness under
// concurrent booking must enforce the overlap constraint at the storage layer.
type SchedulingService interface {
	// CheckAvailability determines whether any occupying appointment for the
	// doctor overlaps the requested [start, end) interval.
	CheckAvailability(doctorID string, start, end time.Time) (*models.AvailabilityResult, error)

	// GetAvailableTimeSlots enumerates the free fixed-size slots for a doctor
	// on the given calendar date ("2006-01-02"), interpreted in the service's
	// configured location.
	GetAvailableTimeSlots(doctorID, date string) ([]models.TimeSlot, error)
}

// DefaultSchedulingService is the production scheduler. Dependencies are
// injected so tests can swap in fakes.
type DefaultSchedulingService struct {
	DoctorRepo      doctorRepo.DoctorRepository
	AppointmentRepo appointmentRepo.AppointmentRepository

	// Hours is the fallback working window when a doctor has no availability
	// configured for a weekday. The zero value means models.DefaultWorkingHours.
	Hours models.WorkingHours

	// Location fixes the timezone all calendar-day arithmetic happens in.
	// Nil means UTC.
	Location *time.Location
}

func (s *DefaultSchedulingService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.UTC
}

func (s *DefaultSchedulingService) defaultHours() models.WorkingHours {
	h := s.Hours
	if h.SlotDuration <= 0 {
		h = models.DefaultWorkingHours
	}
	return h
}
