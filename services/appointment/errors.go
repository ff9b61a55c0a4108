package appointment

import (
	"fmt"

	"telecare/models"
)

// NotFoundError signals a missing appointment, doctor or user.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

// ConflictError signals that the requested time range is already taken.
type ConflictError struct {
	Result *models.AvailabilityResult
}

func (e *ConflictError) Error() string {
	return "doctor is not available during the requested time"
}

// InvalidTransitionError signals a status change the lifecycle does not allow.
type InvalidTransitionError struct {
	From, To string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition appointment from %s to %s", e.From, e.To)
}

// AlreadyPaidError signals a second payment attempt on a settled appointment.
type AlreadyPaidError struct {
	AppointmentID string
}

func (e *AlreadyPaidError) Error() string {
	return "appointment " + e.AppointmentID + " is already paid"
}
