package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hagwon-app/hagwon/internal/app/models/dto"
	"github.com/hagwon-app/hagwon/internal/app/services"
	"github.com/hagwon-app/hagwon/internal/middleware"
)

// StudentController handles student roster endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// RemoveStudent detaches a student from their academy
// @Summary Remove a student
// @Description Clears the student's academy binding and deletes their registration
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "Student user ID"
// @Success 200 {object} dto.APIResponse "Student removed"
// @Failure 400 {object} dto.ErrorResponse "Missing user ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{user_id} [delete]
func (c *StudentController) RemoveStudent(ctx *gin.Context) {
	userID := strings.TrimSpace(ctx.Param("user_id"))
	if userID == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "User ID is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studentService.RemoveStudent(ctx, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Student removed",
		Timestamp: time.Now(),
	})
}

// ListStudents returns the approved students of an academy
// @Summary List students
// @Description Lists the approved students bound to an academy
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param academy_id query string true "Academy ID"
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Students"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Academy not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx, ctx.Query("academy_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// GetStudentLectures returns the lectures a student attends
// @Summary Get a student's lectures
// @Description Lists the lectures the student is enrolled in
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "Student user ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Lecture} "Lectures"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{user_id}/lectures [get]
func (c *StudentController) GetStudentLectures(ctx *gin.Context) {
	lectures, err := c.studentService.GetStudentLectures(ctx, ctx.Param("user_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      lectures,
		Timestamp: time.Now(),
	})
}
