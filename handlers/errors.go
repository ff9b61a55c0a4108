package handlers

import (
	"errors"
	"net/http"

	appointmentSvc "telecare/services/appointment"
	calendarSvc "telecare/services/calendar"
	doctorSvc "telecare/services/doctor"
	paymentSvc "telecare/services/payment"
	schedulingSvc "telecare/services/scheduling"
	userSvc "telecare/services/user"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps typed service errors onto HTTP statuses. Anything
// unrecognized is a 500 with the error message.
func respondServiceError(c *gin.Context, err error) {
	var (
		schedNotFound   *schedulingSvc.NotFoundError
		badInterval     *schedulingSvc.InvalidIntervalError
		badDate         *schedulingSvc.InvalidDateError
		apptNotFound    *appointmentSvc.NotFoundError
		conflict        *appointmentSvc.ConflictError
		badTransition   *appointmentSvc.InvalidTransitionError
		alreadyPaid     *appointmentSvc.AlreadyPaidError
		noCharge        *paymentSvc.NoChargeError
		userNotFound    *userSvc.NotFoundError
		duplicateEmail  *userSvc.DuplicateEmailError
		badCredentials  *userSvc.InvalidCredentialsError
		doctorNotFound  *doctorSvc.NotFoundError
		profileExists   *doctorSvc.ProfileExistsError
		calNotConnected *calendarSvc.NotConnectedError
	)

	switch {
	case errors.As(err, &schedNotFound), errors.As(err, &apptNotFound),
		errors.As(err, &userNotFound), errors.As(err, &doctorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &badInterval), errors.As(err, &badDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":     err.Error(),
			"conflicts": conflict.Result.ConflictingAppointments,
		})
	case errors.As(err, &badTransition), errors.As(err, &alreadyPaid),
		errors.As(err, &noCharge), errors.As(err, &profileExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &badCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &duplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &calNotConnected):
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
