package handlers

import (
	"net/http"

	"telecare/models"

	"github.com/gin-gonic/gin"
)

// RequestAppointment books a PENDING appointment for the authenticated
// patient.
func (h *HandlerBundle) RequestAppointment(c *gin.Context) {
	var input models.AppointmentRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Appointments.RequestAppointment(c.GetString("userID"), input.DoctorID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListMyAppointments returns the authenticated user's appointments —
// patient-side bookings, or the doctor's schedule when called by a doctor.
func (h *HandlerBundle) ListMyAppointments(c *gin.Context) {
	userID := c.GetString("userID")

	if c.GetString("role") == models.RoleDoctor {
		doc, err := h.Doctors.GetDoctorByUserID(userID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		appts, err := h.Appointments.ListForDoctor(doc.ID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, appts)
		return
	}

	appts, err := h.Appointments.ListForUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// GetAppointment returns one appointment, visible only to its participants.
func (h *HandlerBundle) GetAppointment(c *gin.Context) {
	appt, err := h.Appointments.GetAppointment(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !h.isParticipant(c, appt) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a participant of this appointment"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// AcceptAppointment lets the appointment's doctor confirm it.
func (h *HandlerBundle) AcceptAppointment(c *gin.Context) {
	if !h.authorizeDoctorAction(c) {
		return
	}
	appt, err := h.Appointments.AcceptAppointment(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// DeclineAppointment lets the appointment's doctor turn it down.
func (h *HandlerBundle) DeclineAppointment(c *gin.Context) {
	if !h.authorizeDoctorAction(c) {
		return
	}
	appt, err := h.Appointments.DeclineAppointment(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointment cancels an appointment on behalf of either participant.
func (h *HandlerBundle) CancelAppointment(c *gin.Context) {
	appt, err := h.Appointments.GetAppointment(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !h.isParticipant(c, appt) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a participant of this appointment"})
		return
	}

	cancelled, err := h.Appointments.CancelAppointment(appt.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

// CompleteAppointment lets the doctor mark a finished consultation.
func (h *HandlerBundle) CompleteAppointment(c *gin.Context) {
	if !h.authorizeDoctorAction(c) {
		return
	}
	appt, err := h.Appointments.CompleteAppointment(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateAppointment reschedules or annotates an appointment.
func (h *HandlerBundle) UpdateAppointment(c *gin.Context) {
	var input models.AppointmentUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Appointments.GetAppointment(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !h.isParticipant(c, appt) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a participant of this appointment"})
		return
	}

	updated, err := h.Appointments.UpdateAppointment(appt.ID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// isParticipant reports whether the authenticated user is the patient or the
// doctor on the appointment.
func (h *HandlerBundle) isParticipant(c *gin.Context, appt *models.Appointment) bool {
	userID := c.GetString("userID")
	if appt.UserID == userID {
		return true
	}
	doc, err := h.Doctors.GetDoctorByUserID(userID)
	return err == nil && doc != nil && doc.ID == appt.DoctorID
}

// authorizeDoctorAction checks that the authenticated doctor owns the
// appointment named in the route. On failure it writes the response itself.
func (h *HandlerBundle) authorizeDoctorAction(c *gin.Context) bool {
	appt, err := h.Appointments.GetAppointment(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return false
	}
	doc, err := h.Doctors.GetDoctorByUserID(c.GetString("userID"))
	if err != nil {
		respondServiceError(c, err)
		return false
	}
	if doc == nil || doc.ID != appt.DoctorID {
		c.JSON(http.StatusForbidden, gin.H{"error": "appointment belongs to another doctor"})
		return false
	}
	return true
}
