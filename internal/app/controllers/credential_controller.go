package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/certivo/certivo/internal/app/models/dto"
	"github.com/certivo/certivo/internal/app/services"
	"github.com/certivo/certivo/internal/middleware"
	"github.com/certivo/certivo/internal/pkg/apperrors"
	"github.com/certivo/certivo/internal/pkg/logger"
)

// CredentialController handles credential issuance, certificates and validation
type CredentialController struct {
	credentialService *services.CredentialService
}

// NewCredentialController creates a new CredentialController
func NewCredentialController(credentialService *services.CredentialService) *CredentialController {
	return &CredentialController{
		credentialService: credentialService,
	}
}

// IssueCredential issues a credential for a participant and course
// @Summary Issue a credential
// @Description Generates a unique public credential identifier and persists the credential
// @Tags credentials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.IssueCredentialRequest true "Participant and course references"
// @Success 201 {object} dto.APIResponse{data=models.Credential} "Credential issued successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.APIResponse "Participant or course not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /credentials [post]
func (c *CredentialController) IssueCredential(ctx *gin.Context) {
	var req dto.IssueCredentialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid credential data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	credential, err := c.credentialService.Issue(ctx, req.ParticipantID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(credential))
}

// GetCredentialByID retrieves a credential by internal ID
// @Summary Get credential details
// @Description Retrieves a credential joined with its participant and course
// @Tags credentials
// @Produce json
// @Security BearerAuth
// @Param id path int true "Credential ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Credential} "Credential retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid credential ID format"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.APIResponse "Credential not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /credentials/{id} [get]
func (c *CredentialController) GetCredentialByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid credential ID")
		errorDetail = errorDetail.WithDetails("Credential ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	credential, err := c.credentialService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(credential))
}

// GetAllCredentials lists all credentials
// @Summary List credentials
// @Description Retrieves all credentials joined with participant and course data
// @Tags credentials
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Credential} "Credentials retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /credentials [get]
func (c *CredentialController) GetAllCredentials(ctx *gin.Context) {
	credentials, err := c.credentialService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(credentials))
}

// GenerateCertificate renders the credential's certificate as a PDF
// @Summary Download a certificate PDF
// @Description Fills the course template with credential data and renders it to a PDF document
// @Tags credentials
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Credential ID" Format(int64) minimum(1)
// @Success 200 {file} binary "Certificate PDF"
// @Failure 400 {object} dto.APIResponse "Invalid credential ID format"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.APIResponse "Credential not found"
// @Failure 500 {object} dto.APIResponse "Certificate rendering failed"
// @Router /credentials/{id}/certificate [get]
func (c *CredentialController) GenerateCertificate(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid credential ID")
		errorDetail = errorDetail.WithDetails("Credential ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	pdf, credential, err := c.credentialService.GenerateCertificate(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename := fmt.Sprintf("certificate-%s.pdf", credential.CredentialID)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}

// ValidateCredential is the public verification endpoint
// @Summary Validate a credential
// @Description Looks up a credential by its public identifier. Lookup failures and missing
// @Description credentials are both reported as not valid with a generic message.
// @Tags validation
// @Produce json
// @Param credentialId path string true "Public credential identifier"
// @Success 200 {object} dto.ValidationResponse "Credential is valid"
// @Failure 404 {object} dto.ValidationResponse "Credential not found or invalid"
// @Router /validate/{credentialId} [get]
func (c *CredentialController) ValidateCredential(ctx *gin.Context) {
	credential, err := c.credentialService.Validate(ctx, ctx.Param("credentialId"))
	if err != nil {
		if !errors.Is(err, apperrors.ErrCredentialNotFound) {
			logger.Error().Err(err).Msg("Credential validation lookup failed")
		}
		ctx.JSON(http.StatusNotFound, dto.ValidationResponse{
			Valid: false,
			Error: "Credential not found or invalid",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ValidationResponse{
		Valid:      true,
		Credential: credential,
	})
}

// DeleteCredential deletes a credential
// @Summary Delete a credential
// @Description Deletes a credential by its internal ID
// @Tags credentials
// @Produce json
// @Security BearerAuth
// @Param id path int true "Credential ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.DeletedResponse} "Credential deleted successfully"
// @Failure 400 {object} dto.APIResponse "Invalid credential ID format"
// @Failure 401 {object} dto.APIResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.APIResponse "Credential not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /credentials/{id} [delete]
func (c *CredentialController) DeleteCredential(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid credential ID")
		errorDetail = errorDetail.WithDetails("Credential ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	credential, err := c.credentialService.Delete(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.DeletedResponse{
		Message: "Credential deleted",
		Deleted: credential,
	}))
}
