package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hagwon-app/hagwon/internal/app/models"
	"github.com/hagwon-app/hagwon/internal/app/models/dto"
	"github.com/hagwon-app/hagwon/internal/app/services"
	"github.com/hagwon-app/hagwon/internal/middleware"
)

// RegistrationController handles academy and user registration endpoints
type RegistrationController struct {
	registrationService services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
	}
}

// RegisterAcademy handles academy self-registration
// @Summary Register a new academy
// @Description Registers an academy in pending status and returns its generated invite key
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body dto.RegisterAcademyRequest true "Academy information"
// @Success 201 {object} dto.APIResponse{data=models.Academy} "Academy registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Academy ID or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academies [post]
func (c *RegistrationController) RegisterAcademy(ctx *gin.Context) {
	var req dto.RegisterAcademyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	academy, err := c.registrationService.RegisterAcademy(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Message:   "Academy registered, awaiting review",
		Data:      academy,
		Timestamp: time.Now(),
	})
}

// RegisterUser handles a join request against an academy invite key
// @Summary File a join request
// @Description Files a pending join request for a teacher or student; a student's family-linked parent is mirrored automatically
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "Join request"
// @Success 201 {object} dto.APIResponse{data=dto.RegistrationResponse} "Join request filed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Academy or user not found"
// @Failure 409 {object} dto.ErrorResponse "Registration already requested"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations [post]
func (c *RegistrationController) RegisterUser(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	result, err := c.registrationService.RegisterUser(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Message:   "Join request filed",
		Data:      result,
		Timestamp: time.Now(),
	})
}

// DecideRegistration approves or rejects a pending join request
// @Summary Decide a join request
// @Description Approves or rejects a join request; deciding a student cascades to the family-linked parent at the same academy
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DecideRegistrationRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=models.Registration} "Decision applied"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/decide [post]
func (c *RegistrationController) DecideRegistration(ctx *gin.Context) {
	var req dto.DecideRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	registration, err := c.registrationService.DecideRegistration(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Decision applied",
		Data:      registration,
		Timestamp: time.Now(),
	})
}

// ListPendingUsers returns an academy's pending registrants for one role
// @Summary List pending registrants
// @Description Lists pending join requests of an academy for a role, joined with registrant profiles
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param academy_id query string true "Academy ID"
// @Param role query string true "Role (TEACHER or STUDENT)"
// @Success 200 {object} dto.APIResponse{data=[]models.PendingRegistrant} "Pending registrants"
// @Failure 400 {object} dto.ErrorResponse "Invalid role"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Academy not found or no matching users"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/users [get]
func (c *RegistrationController) ListPendingUsers(ctx *gin.Context) {
	academyID := ctx.Query("academy_id")
	role := models.Role(ctx.Query("role"))

	registrants, err := c.registrationService.ListPendingUsers(ctx, academyID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      registrants,
		Timestamp: time.Now(),
	})
}

// ListPendingAcademies returns all academies awaiting review
// @Summary List pending academies
// @Description Lists all academies whose registration has not been decided yet
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Academy} "Pending academies"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "No pending academies"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations/academies [get]
func (c *RegistrationController) ListPendingAcademies(ctx *gin.Context) {
	academies, err := c.registrationService.ListPendingAcademies(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      academies,
		Timestamp: time.Now(),
	})
}
