package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CheckDoctorAvailability answers whether the doctor is free over the
// requested interval. Start and end are RFC 3339 timestamps.
func (h *HandlerBundle) CheckDoctorAvailability(c *gin.Context) {
	doctorID := c.Param("id")

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'start': expected RFC 3339 timestamp"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'end': expected RFC 3339 timestamp"})
		return
	}

	result, err := h.Scheduler.CheckAvailability(doctorID, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetDoctorTimeSlots lists the free slots for a doctor on a calendar date
// ("2006-01-02").
func (h *HandlerBundle) GetDoctorTimeSlots(c *gin.Context) {
	doctorID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query parameter"})
		return
	}

	slots, err := h.Scheduler.GetAvailableTimeSlots(doctorID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"doctorId": doctorID,
		"date":     date,
		"slots":    slots,
	})
}
