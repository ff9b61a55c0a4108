package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"telecare/models"
)

// GetAvailableTimeSlots enumerates the candidate slots for a doctor on one
// calendar day and filters out any that overlap an occupying appointment. The
// working window comes from the doctor's per-weekday availability when one is
// configured, otherwise from the service's default hours. The returned slice
// is chronological by construction.
func (s *DefaultSchedulingService) GetAvailableTimeSlots(doctorID, date string) ([]models.TimeSlot, error) {
	loc := s.location()

	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, &InvalidDateError{Date: date}
	}

	doctor, err := s.DoctorRepo.GetByID(doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up doctor %s: %w", doctorID, err)
	}
	if doctor == nil {
		return nil, &NotFoundError{Resource: "doctor", ID: doctorID}
	}
	if !doctor.IsAvailable {
		// Doctor paused all bookings.
		return []models.TimeSlot{}, nil
	}

	dayStart := day
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999_000_000, loc)

	appts, err := s.AppointmentRepo.FindByDoctorAndStatusInRange(doctorID, models.OccupyingStatuses, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for doctor %s: %w", doctorID, err)
	}

	windowStart, windowEnd, ok := s.workingWindow(doctor, day)
	if !ok {
		// Doctor explicitly marked the weekday unavailable.
		return []models.TimeSlot{}, nil
	}

	duration := s.defaultHours().SlotDuration

	slots := []models.TimeSlot{}
	for t := windowStart; !t.Add(duration).After(windowEnd); t = t.Add(duration) {
		slot := models.TimeSlot{Start: t, End: t.Add(duration)}
		if !slotConflicts(slot, appts) {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

// slotConflicts tests a candidate slot against every fetched appointment with
// the same overlap semantics the availability check uses.
func slotConflicts(slot models.TimeSlot, appts []models.Appointment) bool {
	for _, a := range appts {
		if overlaps(a.StartTime, a.EndTime, slot.Start, slot.End) {
			return true
		}
	}
	return false
}

// workingWindow resolves the bookable window for a doctor on the given day.
// ok is false when the doctor declared the weekday unavailable.
func (s *DefaultSchedulingService) workingWindow(doctor *models.Doctor, day time.Time) (start, end time.Time, ok bool) {
	hours := s.defaultHours()
	startMin := hours.StartHour * 60
	endMin := hours.EndHour * 60

	if w := doctor.WindowFor(day.Weekday()); w != nil {
		if !w.IsAvailable {
			return time.Time{}, time.Time{}, false
		}
		if m, err := parseClock(w.StartTime); err == nil {
			startMin = m
		}
		if m, err := parseClock(w.EndTime); err == nil {
			endMin = m
		}
	}

	return day.Add(time.Duration(startMin) * time.Minute), day.Add(time.Duration(endMin) * time.Minute), true
}

// parseClock parses an "HH:MM" string into minutes from midnight.
func parseClock(v string) (int, error) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", v)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", v)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", v)
	}
	return h*60 + m, nil
}
