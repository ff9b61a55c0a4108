package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCurrentUser returns the authenticated account.
func (h *HandlerBundle) GetCurrentUser(c *gin.Context) {
	userID := c.GetString("userID")
	user, err := h.Users.GetUserByID(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteCurrentUser removes the authenticated account.
func (h *HandlerBundle) DeleteCurrentUser(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Users.DeleteUser(userID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
