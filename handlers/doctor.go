package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"telecare/models"
	doctorSvc "telecare/services/doctor"
	"telecare/utils"

	"github.com/gin-gonic/gin"
)

// doctorListCacheKey caches the public directory; profile writes evict it.
const doctorListCacheKey = "doctors:directory"

const doctorListCacheTTL = 5 * time.Minute

// RegisterDoctor creates a doctor profile for the authenticated user and
// promotes their role.
func (h *HandlerBundle) RegisterDoctor(c *gin.Context) {
	var input doctorSvc.DoctorRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	doc, err := h.Doctors.RegisterDoctor(c.GetString("userID"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	invalidateDoctorList()
	c.JSON(http.StatusCreated, doc)
}

// ListDoctors returns all registered doctors, served from the redis cache
// when fresh.
func (h *HandlerBundle) ListDoctors(c *gin.Context) {
	ctx := context.Background()
	cache := utils.GetCacheClient()

	if cached, err := cache.Get(ctx, doctorListCacheKey).Result(); err == nil {
		var docs []models.Doctor
		if json.Unmarshal([]byte(cached), &docs) == nil {
			c.JSON(http.StatusOK, docs)
			return
		}
	}

	docs, err := h.Doctors.ListDoctors()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if data, err := json.Marshal(docs); err == nil {
		cache.Set(ctx, doctorListCacheKey, data, doctorListCacheTTL)
	}
	c.JSON(http.StatusOK, docs)
}

// GetDoctor returns one doctor profile.
func (h *HandlerBundle) GetDoctor(c *gin.Context) {
	doc, err := h.Doctors.GetDoctorByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// SetDoctorAvailability replaces the authenticated doctor's weekly
// availability windows.
func (h *HandlerBundle) SetDoctorAvailability(c *gin.Context) {
	var input struct {
		Availability []models.AvailabilityWindow `json:"availability" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	doc, err := h.Doctors.GetDoctorByUserID(c.GetString("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	updated, err := h.Doctors.SetAvailability(doc.ID, input.Availability)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	invalidateDoctorList()
	c.JSON(http.StatusOK, updated)
}

// AddDoctorCertification appends a certification to the authenticated
// doctor's profile.
func (h *HandlerBundle) AddDoctorCertification(c *gin.Context) {
	var cert models.Certification
	if err := c.ShouldBindJSON(&cert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	doc, err := h.Doctors.GetDoctorByUserID(c.GetString("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	updated, err := h.Doctors.AddCertification(doc.ID, cert)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	invalidateDoctorList()
	c.JSON(http.StatusOK, updated)
}

func invalidateDoctorList() {
	utils.GetCacheClient().Del(context.Background(), doctorListCacheKey)
}
