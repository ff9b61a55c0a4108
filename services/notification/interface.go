package notification

import "telecare/models"

// Publisher is the broker side of in-app notifications. Satisfied by the MQTT
// publisher in production and by fakes in tests.
type Publisher interface {
	Publish(topic, payload string) error
}

// Mailer delivers plain-text email.
type Mailer interface {
	Send(to, subject, body string) error
}

// NotificationService pushes appointment updates to users over the broker and
// by email. Delivery failures are logged, never fatal to the caller's flow.
type NotificationService interface {
	SendAppointmentConfirmation(appt *models.Appointment, user *models.User, doctor *models.Doctor) error
	SendAppointmentReminder(appt *models.Appointment, user *models.User, doctor *models.Doctor) error
	SendStatusUpdate(appt *models.Appointment, user *models.User, doctor *models.Doctor, status string) error
}
