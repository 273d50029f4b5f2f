package api

import (
	"errors"
	"fmt"
	"net/http"

	"alcyxob/adaptive-coach/internal/domain"
	"alcyxob/adaptive-coach/internal/repository"
	"alcyxob/adaptive-coach/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaHandler exposes form-check upload/download URL minting.
type MediaHandler struct {
	mediaService service.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

type UploadRequest struct {
	ProgramID   string `json:"programId" binding:"required"`
	WeekNumber  int    `json:"weekNumber" binding:"required,min=1"`
	WorkoutName string `json:"workoutName" binding:"required"`
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	Size        int64  `json:"size" binding:"required,min=1"`
}

// RequestUpload returns a presigned PUT URL for a form-check video.
func (h *MediaHandler) RequestUpload(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	programID, err := primitive.ObjectIDFromHex(req.ProgramID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid program ID")
		return
	}

	upload := &domain.MediaUpload{
		ProgramID:   programID,
		WeekNumber:  req.WeekNumber,
		WorkoutName: req.WorkoutName,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		Size:        req.Size,
	}

	ticket, err := h.mediaService.RequestUpload(c.Request.Context(), userID, upload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedMediaType):
			abortWithError(c, http.StatusUnsupportedMediaType, err.Error())
		case errors.Is(err, service.ErrProgramNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotProgramOwner):
			abortWithError(c, http.StatusForbidden, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create upload")
		}
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// GetDownloadURL returns a presigned GET URL for the caller's own upload.
func (h *MediaHandler) GetDownloadURL(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	uploadID := c.Param("uploadId")

	url, err := h.mediaService.GetDownloadURL(c.Request.Context(), userID, uploadID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			abortWithError(c, http.StatusNotFound, "Upload not found")
		case errors.Is(err, service.ErrNotUploadOwner):
			abortWithError(c, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrInvalidID):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create download URL")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": url})
}
