package payment

import "telecare/models"

// PaymentService creates and settles checkout sessions for priced
// appointments.
type PaymentService interface {
	CreateCheckoutSession(appt *models.Appointment, userEmail, doctorName string) (*models.PaymentSession, error)
	HandlePaymentSuccess(sessionID string) (*models.PaymentResult, error)
}
