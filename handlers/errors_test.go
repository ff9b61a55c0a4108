package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"telecare/models"
	appointmentSvc "telecare/services/appointment"
	paymentSvc "telecare/services/payment"
	schedulingSvc "telecare/services/scheduling"
	userSvc "telecare/services/user"

	"github.com/gin-gonic/gin"
)

func TestRespondServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"doctor not found", &schedulingSvc.NotFoundError{Resource: "doctor", ID: "d1"}, http.StatusNotFound},
		{"inverted interval", &schedulingSvc.InvalidIntervalError{Detail: "start after end"}, http.StatusBadRequest},
		{"bad date", &schedulingSvc.InvalidDateError{Date: "20-10-2023"}, http.StatusBadRequest},
		{"booking conflict", &appointmentSvc.ConflictError{Result: &models.AvailabilityResult{}}, http.StatusConflict},
		{"invalid transition", &appointmentSvc.InvalidTransitionError{From: "CANCELLED", To: "ACCEPTED"}, http.StatusConflict},
		{"already paid", &appointmentSvc.AlreadyPaidError{AppointmentID: "a1"}, http.StatusConflict},
		{"free appointment", &paymentSvc.NoChargeError{AppointmentID: "a1"}, http.StatusConflict},
		{"bad credentials", &userSvc.InvalidCredentialsError{}, http.StatusUnauthorized},
		{"duplicate email", &userSvc.DuplicateEmailError{Email: "a@b.c"}, http.StatusConflict},
		{"wrapped typed error", fmt.Errorf("request failed: %w", &appointmentSvc.NotFoundError{Resource: "appointment", ID: "a1"}), http.StatusNotFound},
		{"unknown error", errors.New("socket closed"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			respondServiceError(c, tc.err)
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
