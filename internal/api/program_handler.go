package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"alcyxob/adaptive-coach/internal/domain"
	"alcyxob/adaptive-coach/internal/engine"
	"alcyxob/adaptive-coach/internal/repository"
	"alcyxob/adaptive-coach/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgramHandler exposes the training-program lifecycle over HTTP.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// --- Request/Response Structs ---

type StartProgramRequest struct {
	Mode domain.GenerationMode `json:"mode" binding:"required,oneof=progressive full_plan"`
}

type CompletionRequest struct {
	WeekNumber      int    `json:"weekNumber" binding:"required,min=1"`
	WorkoutName     string `json:"workoutName" binding:"required"`
	Completed       bool   `json:"completed"`
	Skipped         bool   `json:"skipped"`
	SkipReason      string `json:"skipReason"`
	RPE             int    `json:"rpe" binding:"omitempty,min=1,max=10"`
	Rating          int    `json:"rating" binding:"omitempty,min=1,max=5"`
	DurationMinutes int    `json:"durationMinutes"`
	DayOfWeek       int    `json:"dayOfWeek" binding:"omitempty,min=1,max=7"`
	MediaUploadID   string `json:"mediaUploadId"`
}

type WeekStatusRequest struct {
	Completed bool `json:"completed"`
	Abandoned bool `json:"abandoned"`
}

// --- Handler Methods ---

// StartProgram selects a template for the athlete's profile and creates a
// program from it.
func (h *ProgramHandler) StartProgram(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req StartProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	program, err := h.programService.StartProgram(c.Request.Context(), userID, req.Mode)
	if err != nil {
		var noTemplate *engine.NoTemplateError
		switch {
		case errors.Is(err, service.ErrProfileRequired):
			abortWithError(c, http.StatusPreconditionFailed, err.Error())
		case errors.As(err, &noTemplate):
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to start program")
		}
		return
	}

	c.JSON(http.StatusCreated, program)
}

// GetActiveProgram returns the athlete's most recent program.
func (h *ProgramHandler) GetActiveProgram(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	program, err := h.programService.GetActiveProgram(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, "No active program")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load program")
		return
	}
	c.JSON(http.StatusOK, program)
}

// GenerateNextWeek produces the next training week, subject to the
// prerequisite gate.
func (h *ProgramHandler) GenerateNextWeek(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	programID := c.Param("programId")

	week, err := h.programService.GenerateNextWeek(c.Request.Context(), userID, programID)
	if err != nil {
		h.handleGenerationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, week)
}

// MaterializeWeek details a framework week (full_plan mode).
func (h *ProgramHandler) MaterializeWeek(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	programID := c.Param("programId")
	weekNumber, err := strconv.Atoi(c.Param("weekNumber"))
	if err != nil || weekNumber < 1 {
		abortWithError(c, http.StatusBadRequest, "Invalid week number")
		return
	}

	week, err := h.programService.MaterializeWeek(c.Request.Context(), userID, programID, weekNumber)
	if err != nil {
		h.handleGenerationError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// RecordCompletion logs one workout's outcome.
func (h *ProgramHandler) RecordCompletion(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	programID, err := primitive.ObjectIDFromHex(c.Param("programId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid program ID")
		return
	}

	var req CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	completion := &domain.WorkoutCompletion{
		ProgramID:       programID,
		WeekNumber:      req.WeekNumber,
		WorkoutName:     req.WorkoutName,
		Completed:       req.Completed,
		Skipped:         req.Skipped,
		SkipReason:      req.SkipReason,
		RPE:             req.RPE,
		Rating:          req.Rating,
		DurationMinutes: req.DurationMinutes,
		DayOfWeek:       req.DayOfWeek,
	}
	if req.MediaUploadID != "" {
		mediaID, err := primitive.ObjectIDFromHex(req.MediaUploadID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid media upload ID")
			return
		}
		completion.MediaUploadID = &mediaID
	}

	if err := h.programService.RecordCompletion(c.Request.Context(), userID, completion); err != nil {
		switch {
		case errors.Is(err, service.ErrProgramNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotProgramOwner):
			abortWithError(c, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrWeekNotGenerated):
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
		default:
			abortWithError(c, http.StatusBadRequest, err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, completion)
}

// SetWeekStatus marks a week completed or abandoned.
func (h *ProgramHandler) SetWeekStatus(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	programID := c.Param("programId")
	weekNumber, err := strconv.Atoi(c.Param("weekNumber"))
	if err != nil || weekNumber < 1 {
		abortWithError(c, http.StatusBadRequest, "Invalid week number")
		return
	}

	var req WeekStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.programService.SetWeekStatus(c.Request.Context(), userID, programID, weekNumber, req.Completed, req.Abandoned); err != nil {
		h.handleOwnershipError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetWeekAnalysis returns the completion analysis for one generated week.
func (h *ProgramHandler) GetWeekAnalysis(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	programID := c.Param("programId")
	weekNumber, err := strconv.Atoi(c.Param("weekNumber"))
	if err != nil || weekNumber < 1 {
		abortWithError(c, http.StatusBadRequest, "Invalid week number")
		return
	}

	analysis, err := h.programService.AnalyzeWeek(c.Request.Context(), userID, programID, weekNumber)
	if err != nil {
		h.handleOwnershipError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// CheckPrerequisites reports whether the next week may be generated.
func (h *ProgramHandler) CheckPrerequisites(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	programID := c.Param("programId")

	result, err := h.programService.CheckPrerequisites(c.Request.Context(), userID, programID)
	if err != nil {
		h.handleOwnershipError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetInsight returns the coaching message for the current week.
func (h *ProgramHandler) GetInsight(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	programID := c.Param("programId")

	insight, err := h.programService.GetInsight(c.Request.Context(), userID, programID)
	if err != nil {
		h.handleOwnershipError(c, err)
		return
	}
	c.JSON(http.StatusOK, insight)
}

// handleGenerationError maps engine and repository errors from the generation
// flow to HTTP statuses. Gate rejections carry the full result so the client
// can render blockers.
func (h *ProgramHandler) handleGenerationError(c *gin.Context, err error) {
	if gr, ok := engine.IsGateRejection(err); ok {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error": gr.Error(),
			"gate":  gr.Result,
		})
		return
	}
	switch {
	case errors.Is(err, service.ErrProgramNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotProgramOwner):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, engine.ErrProgramComplete):
		abortWithError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, engine.ErrWeekOutOfRange), errors.Is(err, engine.ErrNonSequentialWeek):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrWeekConflict):
		abortWithError(c, http.StatusConflict, "Another generation request won; reload the program")
	case errors.Is(err, service.ErrInvalidID):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to generate week")
	}
}

func (h *ProgramHandler) handleOwnershipError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProgramNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotProgramOwner):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrWeekNotGenerated):
		abortWithError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrInvalidID):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Request failed")
	}
}
