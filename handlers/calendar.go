package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CalendarAuthURL starts the Google Calendar OAuth flow.
func (h *HandlerBundle) CalendarAuthURL(c *gin.Context) {
	state := uuid.New().String()
	c.JSON(http.StatusOK, gin.H{
		"authUrl": h.Calendar.AuthURL(state),
		"state":   state,
	})
}

// CalendarOAuthCallback finishes the OAuth flow with the authorization code.
func (h *HandlerBundle) CalendarOAuthCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'code' query parameter"})
		return
	}

	token, err := h.Calendar.Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to exchange authorization code", "details": err.Error()})
		return
	}
	h.Calendar.SetCredentials(token)

	c.JSON(http.StatusOK, gin.H{"message": "calendar connected"})
}

// CalendarStatus reports whether calendar sync is active.
func (h *HandlerBundle) CalendarStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"connected": h.Calendar.Connected()})
}

// CalendarDisconnect drops the stored calendar credentials.
func (h *HandlerBundle) CalendarDisconnect(c *gin.Context) {
	h.Calendar.SetCredentials(nil)
	c.JSON(http.StatusOK, gin.H{"message": "calendar disconnected"})
}
