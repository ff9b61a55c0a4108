package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// allowedFolders defines permitted destinations for uploads.
var allowedFolders = map[string]bool{
	"documents": true,
	"images":    true,
}

// UploadFile stores a medical document or profile image and returns its
// public id.
func (h *HandlerBundle) UploadFile(c *gin.Context) {
	folder := c.Param("folder")
	if !allowedFolders[folder] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder; allowed values are 'documents' and 'images'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "details": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "details": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.Storage.UploadFile(c, tempFilePath, folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"publicId": publicID})
}

// DeleteFile removes an uploaded file.
func (h *HandlerBundle) DeleteFile(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'publicId' query parameter"})
		return
	}

	if err := h.Storage.DeleteFile(c, publicID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}

// GetDownloadURL returns a time-limited link to an uploaded file.
func (h *HandlerBundle) GetDownloadURL(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'publicId' query parameter"})
		return
	}
	resourceType := c.DefaultQuery("resourceType", "image")

	url, err := h.Storage.GetDownloadURL(c, resourceType, publicID, time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build download url", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
