package models

// PaymentSession is a Stripe Checkout Session created for an appointment.
type PaymentSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// PaymentResult is the settled outcome of a checkout session.
type PaymentResult struct {
	AppointmentID string  `json:"appointmentId"`
	PaymentID     string  `json:"paymentId"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
}
