package models

import "time"

// Appointment statuses.
const (
	StatusPending   = "PENDING"
	StatusAccepted  = "ACCEPTED"
	StatusDeclined  = "DECLINED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

// OccupyingStatuses are the statuses that block a doctor's time. Declined,
// cancelled and completed appointments never conflict with new bookings.
var OccupyingStatuses = []string{StatusPending, StatusAccepted}

// Appointment represents a scheduled consultation between a user and a doctor.
type Appointment struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	DoctorID  string    `bson:"doctorId" json:"doctorId"`
	StartTime time.Time `bson:"startTime" json:"startTime"`
	EndTime   time.Time `bson:"endTime" json:"endTime"`
	Status    string    `bson:"status" json:"status"`
	Message   string    `bson:"message,omitempty" json:"message,omitempty"`

	// Calendar integration.
	CalendarEventID string `bson:"calendarEventId,omitempty" json:"calendarEventId,omitempty"`
	CalendarLink    string `bson:"calendarLink,omitempty" json:"calendarLink,omitempty"`

	// Payment integration.
	Price       float64    `bson:"price" json:"price"`
	IsPaid      bool       `bson:"isPaid" json:"isPaid"`
	PaymentID   string     `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	PaymentDate *time.Time `bson:"paymentDate,omitempty" json:"paymentDate,omitempty"`

	// Notification tracking.
	ReminderSent     bool `bson:"reminderSent" json:"reminderSent"`
	ConfirmationSent bool `bson:"confirmationSent" json:"confirmationSent"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsOccupying reports whether the appointment blocks its time range.
func (a *Appointment) IsOccupying() bool {
	return a.Status == StatusPending || a.Status == StatusAccepted
}

// AppointmentRequestInput is the payload for requesting an appointment.
type AppointmentRequestInput struct {
	DoctorID  string    `json:"doctorId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Message   string    `json:"message"`
}

// AppointmentUpdateInput carries optional reschedule fields.
type AppointmentUpdateInput struct {
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Message   *string    `json:"message"`
}
