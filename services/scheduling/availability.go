package scheduling

import (
	"fmt"
	"time"

	"telecare/models"
)

// CheckAvailability fetches the doctor's occupying appointments and tests each
// against the requested [start, end) interval. A doctor that does not exist
// yields an unavailable result rather than an error; storage failures
// propagate unchanged.
func (s *DefaultSchedulingService) CheckAvailability(doctorID string, start, end time.Time) (*models.AvailabilityResult, error) {
	if !start.Before(end) {
		return nil, &InvalidIntervalError{Detail: fmt.Sprintf("start %s must be before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339))}
	}

	doctor, err := s.DoctorRepo.GetByID(doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up doctor %s: %w", doctorID, err)
	}
	if doctor == nil {
		return &models.AvailabilityResult{
			Available: false,
			Message:   "Doctor not found",
		}, nil
	}

	appts, err := s.AppointmentRepo.FindByDoctorAndStatus(doctorID, models.OccupyingStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for doctor %s: %w", doctorID, err)
	}

	var conflicts []models.Appointment
	for _, a := range appts {
		if overlaps(a.StartTime, a.EndTime, start, end) {
			conflicts = append(conflicts, a)
		}
	}

	if len(conflicts) > 0 {
		return &models.AvailabilityResult{
			Available:               false,
			Message:                 "Doctor is not available during the requested time",
			ConflictingAppointments: conflicts,
		}, nil
	}
	return &models.AvailabilityResult{Available: true}, nil
}

// overlaps reports whether the appointment [aStart, aEnd) shares any point in
// time with the requested [start, end). The three cases: the appointment
// starts inside the window, ends inside it, or fully encloses it. Exact
// boundary touches do not count, so back-to-back appointments are allowed.
func overlaps(aStart, aEnd, start, end time.Time) bool {
	if !aStart.Before(start) && aStart.Before(end) {
		return true
	}
	if aEnd.After(start) && !aEnd.After(end) {
		return true
	}
	if !aStart.After(start) && !aEnd.Before(end) {
		return true
	}
	return false
}
