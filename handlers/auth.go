package handlers

import (
	"net/http"

	"telecare/models"

	"github.com/gin-gonic/gin"
)

// RegisterUser creates an account and returns a signed token.
func (h *HandlerBundle) RegisterUser(c *gin.Context) {
	var input models.UserRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Users.RegisterUser(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUser exchanges credentials for a token.
func (h *HandlerBundle) AuthenticateUser(c *gin.Context) {
	var input models.UserLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Users.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
