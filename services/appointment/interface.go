package appointment

import (
	"telecare/models"

	"github.com/hibiken/asynq"
)

// ReminderQueue is the enqueue side of the reminder worker. Satisfied by
// *asynq.Client.
type ReminderQueue interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AppointmentService drives the appointment lifecycle: request, doctor
// accept/decline, reschedule, cancellation, completion and payment. Side
// effects (notifications, calendar sync, reminders) are best-effort and never
// roll back the state change that triggered them.
type AppointmentService interface {
	RequestAppointment(userID, doctorID string, input models.AppointmentRequestInput) (*models.Appointment, error)
	AcceptAppointment(appointmentID string) (*models.Appointment, error)
	DeclineAppointment(appointmentID string) (*models.Appointment, error)
	CancelAppointment(appointmentID string) (*models.Appointment, error)
	CompleteAppointment(appointmentID string) (*models.Appointment, error)
	UpdateAppointment(appointmentID string, input models.AppointmentUpdateInput) (*models.Appointment, error)

	GetAppointment(id string) (*models.Appointment, error)
	ListForUser(userID string) ([]models.Appointment, error)
	ListForDoctor(doctorID string) ([]models.Appointment, error)

	CreatePaymentSession(appointmentID string) (*models.PaymentSession, error)
	ConfirmPayment(sessionID string) (*models.Appointment, error)
}
