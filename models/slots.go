package models

import "time"

// TimeSlot is a candidate fixed-duration appointment window within working
// hours. Slots are computed fresh per query and never persisted.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AvailabilityResult is the outcome of an availability check for a requested
// time range. ConflictingAppointments is populated only when the range is
// rejected because of a time conflict, in storage retrieval order.
type AvailabilityResult struct {
	Available               bool          `json:"available"`
	Message                 string        `json:"message,omitempty"`
	ConflictingAppointments []Appointment `json:"conflictingAppointments,omitempty"`
}

// WorkingHours describes the bookable window of a calendar day. StartHour and
// EndHour are hours of the day in the scheduler's location; SlotDuration is
// the fixed appointment length.
type WorkingHours struct {
	StartHour    int
	EndHour      int
	SlotDuration time.Duration
}

// DefaultWorkingHours is the fallback window when a doctor has no explicit
// availability configured for a weekday: 09:00 to 17:00, hour-long slots.
var DefaultWorkingHours = WorkingHours{
	StartHour:    9,
	EndHour:      17,
	SlotDuration: 60 * time.Minute,
}
