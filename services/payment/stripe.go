package payment

import (
	"fmt"
	"math"

	"telecare/config"
	"telecare/models"
	"telecare/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// StripePaymentService implements PaymentService with Stripe Checkout
// Sessions. The global stripe.Key is set once in main.
type StripePaymentService struct {
	Currency   string
	SuccessURL string
	CancelURL  string
}

// NewStripePaymentService builds the service from the app configuration.
func NewStripePaymentService() *StripePaymentService {
	return &StripePaymentService{
		Currency:   config.AppConfig.StripeCurrency,
		SuccessURL: config.AppConfig.StripeSuccessURL,
		CancelURL:  config.AppConfig.StripeCancelURL,
	}
}

// CreateCheckoutSession opens a card checkout for the appointment fee. Stripe
// amounts are integer cents.
func (s *StripePaymentService) CreateCheckoutSession(appt *models.Appointment, userEmail, doctorName string) (*models.PaymentSession, error) {
	if appt.Price <= 0 {
		return nil, &NoChargeError{AppointmentID: appt.ID}
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(s.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("Appointment with Dr. %s", doctorName)),
						Description: stripe.String(fmt.Sprintf("Medical appointment on %s", appt.StartTime.Format("Jan 2, 2006 15:04 MST"))),
					},
					UnitAmount: stripe.Int64(int64(math.Round(appt.Price * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(s.SuccessURL + "?appointment_id=" + appt.ID),
		CancelURL:         stripe.String(s.CancelURL + "?appointment_id=" + appt.ID),
		CustomerEmail:     stripe.String(userEmail),
		ClientReferenceID: stripe.String(appt.ID),
	}
	params.AddMetadata("appointmentId", appt.ID)
	params.AddMetadata("userId", appt.UserID)
	params.AddMetadata("doctorId", appt.DoctorID)

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session for appointment %s: %w", appt.ID, err)
	}

	utils.GetLogger().Info("checkout session created",
		zap.String("appointmentID", appt.ID), zap.String("sessionID", sess.ID))
	return &models.PaymentSession{SessionID: sess.ID, URL: sess.URL}, nil
}

// HandlePaymentSuccess retrieves a completed session and reports what was
// paid for.
func (s *StripePaymentService) HandlePaymentSuccess(sessionID string) (*models.PaymentResult, error) {
	sess, err := session.Get(sessionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checkout session %s: %w", sessionID, err)
	}

	result := &models.PaymentResult{
		AppointmentID: sess.ClientReferenceID,
		Amount:        float64(sess.AmountTotal) / 100,
		Status:        string(sess.PaymentStatus),
	}
	if sess.PaymentIntent != nil {
		result.PaymentID = sess.PaymentIntent.ID
	}
	return result, nil
}

// NoChargeError signals a payment attempt on a free appointment.
type NoChargeError struct {
	AppointmentID string
}

func (e *NoChargeError) Error() string {
	return "appointment " + e.AppointmentID + " has no fee to charge"
}
