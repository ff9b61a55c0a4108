package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreatePaymentSession opens a Stripe checkout for an appointment's fee.
func (h *HandlerBundle) CreatePaymentSession(c *gin.Context) {
	appt, err := h.Appointments.GetAppointment(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if appt.UserID != c.GetString("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the booking patient can pay for an appointment"})
		return
	}

	session, err := h.Appointments.CreatePaymentSession(appt.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// PaymentSuccess is the checkout success redirect target. Stripe appends the
// session id as a query parameter.
func (h *HandlerBundle) PaymentSuccess(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'session_id' query parameter"})
		return
	}

	appt, err := h.Appointments.ConfirmPayment(sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "payment recorded",
		"appointment": appt,
	})
}
