package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/certivo/certivo/internal/app/models/dto"
	"github.com/certivo/certivo/internal/app/services"
	"github.com/certivo/certivo/internal/middleware"
)

// ParticipantController handles participant-related operations
type ParticipantController struct {
	participantService *services.ParticipantService
}

// NewParticipantController creates a new ParticipantController
func NewParticipantController(participantService *services.ParticipantService) *ParticipantController {
	return &ParticipantController{
		participantService: participantService,
	}
}

// CreateParticipant handles participant registration
// @Summary Register a new participant
// @Description Creates a participant and assigns a unique public participant identifier
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateParticipantRequest true "Participant information"
// @Success 201 {object} dto.APIResponse{data=models.Participant} "Participant created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /participants [post]
func (c *ParticipantController) CreateParticipant(ctx *gin.Context) {
	var req dto.CreateParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid participant data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	participant, err := c.participantService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(participant))
}

// GetParticipantByID retrieves a participant by internal ID
// @Summary Get participant details
// @Description Retrieves a participant by its internal ID
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Participant ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Participant} "Participant retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid participant ID format"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.APIResponse "Participant not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /participants/{id} [get]
func (c *ParticipantController) GetParticipantByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid participant ID")
		errorDetail = errorDetail.WithDetails("Participant ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	participant, err := c.participantService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(participant))
}

// GetAllParticipants retrieves participants with optional search
// @Summary List participants
// @Description Retrieves all participants, optionally filtered by name, public identifier or organization
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring filter on name, participant ID or organization"
// @Success 200 {object} dto.APIResponse{data=[]models.Participant} "Participants retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /participants [get]
func (c *ParticipantController) GetAllParticipants(ctx *gin.Context) {
	participants, err := c.participantService.GetAll(ctx, ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(participants))
}

// UpdateParticipant updates an existing participant
// @Summary Update a participant
// @Description Updates a participant in place. The public participant identifier is never changed.
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Participant ID" Format(int64) minimum(1)
// @Param request body dto.UpdateParticipantRequest true "Updated participant information"
// @Success 200 {object} dto.APIResponse{data=models.Participant} "Participant updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.APIResponse "Participant not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /participants/{id} [put]
func (c *ParticipantController) UpdateParticipant(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid participant ID")
		errorDetail = errorDetail.WithDetails("Participant ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid participant data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	participant, err := c.participantService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(participant))
}

// DeleteParticipant deletes a participant
// @Summary Delete a participant
// @Description Deletes a participant. Credentials referencing the participant are removed by cascade.
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Participant ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.DeletedResponse} "Participant deleted successfully"
// @Failure 400 {object} dto.APIResponse "Invalid participant ID format"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.APIResponse "Participant not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /participants/{id} [delete]
func (c *ParticipantController) DeleteParticipant(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid participant ID")
		errorDetail = errorDetail.WithDetails("Participant ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	participant, err := c.participantService.Delete(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.DeletedResponse{
		Message: "Participant deleted",
		Deleted: participant,
	}))
}
