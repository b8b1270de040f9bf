package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hagwon-app/hagwon/internal/app/models/dto"
	"github.com/hagwon-app/hagwon/internal/app/services"
	"github.com/hagwon-app/hagwon/internal/middleware"
)

// LectureController handles lecture, enrolment, exam and score endpoints
type LectureController struct {
	lectureService services.LectureService
}

// NewLectureController creates a new LectureController
func NewLectureController(lectureService services.LectureService) *LectureController {
	return &LectureController{
		lectureService: lectureService,
	}
}

// CreateLecture creates a lecture
// @Summary Create a lecture
// @Tags lectures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLectureRequest true "Lecture"
// @Success 201 {object} dto.APIResponse{data=models.Lecture} "Lecture created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Academy not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures [post]
func (c *LectureController) CreateLecture(ctx *gin.Context) {
	var req dto.CreateLectureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	lecture, err := c.lectureService.CreateLecture(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Message:   "Lecture created",
		Data:      lecture,
		Timestamp: time.Now(),
	})
}

// ListLectures returns the lectures of an academy
// @Summary List lectures
// @Tags lectures
// @Produce json
// @Security BearerAuth
// @Param academy_id query string true "Academy ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Lecture} "Lectures"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Academy not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures [get]
func (c *LectureController) ListLectures(ctx *gin.Context) {
	lectures, err := c.lectureService.ListLectures(ctx, ctx.Query("academy_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      lectures,
		Timestamp: time.Now(),
	})
}

// UpdateLecture modifies a lecture
// @Summary Update a lecture
// @Tags lectures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Param request body dto.UpdateLectureRequest true "Lecture fields"
// @Success 200 {object} dto.APIResponse{data=models.Lecture} "Lecture updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Lecture not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id} [put]
func (c *LectureController) UpdateLecture(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid lecture ID")
	if !ok {
		return
	}

	var req dto.UpdateLectureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	lecture, err := c.lectureService.UpdateLecture(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Lecture updated",
		Data:      lecture,
		Timestamp: time.Now(),
	})
}

// DeleteLecture removes a lecture
// @Summary Delete a lecture
// @Tags lectures
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Success 200 {object} dto.APIResponse "Lecture deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid lecture ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Lecture not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id} [delete]
func (c *LectureController) DeleteLecture(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid lecture ID")
	if !ok {
		return
	}

	if err := c.lectureService.DeleteLecture(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Lecture deleted",
		Timestamp: time.Now(),
	})
}

// AddStudent enrols a student into a lecture
// @Summary Enrol a student
// @Tags lectures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Param request body dto.LectureStudentRequest true "Student"
// @Success 201 {object} dto.APIResponse "Student enrolled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Lecture or user not found"
// @Failure 409 {object} dto.ErrorResponse "Student already enrolled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id}/students [post]
func (c *LectureController) AddStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid lecture ID")
	if !ok {
		return
	}

	var req dto.LectureStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.lectureService.AddStudent(ctx, id, req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Message:   "Student enrolled",
		Timestamp: time.Now(),
	})
}

// RemoveStudent drops a student from a lecture
// @Summary Drop a student
// @Tags lectures
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Param user_id path string true "Student user ID"
// @Success 200 {object} dto.APIResponse "Student dropped"
// @Failure 400 {object} dto.ErrorResponse "Invalid lecture ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Lecture or enrolment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id}/students/{user_id} [delete]
func (c *LectureController) RemoveStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid lecture ID")
	if !ok {
		return
	}

	if err := c.lectureService.RemoveStudent(ctx, id, ctx.Param("user_id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Student dropped",
		Timestamp: time.Now(),
	})
}

// ListStudents returns the students enrolled in a lecture
// @Summary List enrolled students
// @Tags lectures
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Students"
// @Failure 400 {object} dto.ErrorResponse "Invalid lecture ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Lecture not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id}/students [get]
func (c *LectureController) ListStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid lecture ID")
	if !ok {
		return
	}

	students, err := c.lectureService.ListStudents(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// CreateExamType adds an exam category to a lecture
// @Summary Create an exam type
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Param request body dto.CreateExamTypeRequest true "Exam type"
// @Success 201 {object} dto.APIResponse{data=models.ExamType} "Exam type created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Lecture not found"
// @Failure 409 {object} dto.ErrorResponse "Exam type already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id}/exam-types [post]
func (c *LectureController) CreateExamType(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid lecture ID")
	if !ok {
		return
	}

	var req dto.CreateExamTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	examType, err := c.lectureService.CreateExamType(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Message:   "Exam type created",
		Data:      examType,
		Timestamp: time.Now(),
	})
}

// ListExamTypes returns the exam categories of a lecture
// @Summary List exam types
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ExamType} "Exam types"
// @Failure 400 {object} dto.ErrorResponse "Invalid lecture ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Lecture not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id}/exam-types [get]
func (c *LectureController) ListExamTypes(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid lecture ID")
	if !ok {
		return
	}

	examTypes, err := c.lectureService.ListExamTypes(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      examTypes,
		Timestamp: time.Now(),
	})
}

// DeleteExamType removes an exam category from a lecture
// @Summary Delete an exam type
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Param typeId path int true "Exam type ID"
// @Success 200 {object} dto.APIResponse "Exam type deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Lecture or exam type not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id}/exam-types/{typeId} [delete]
func (c *LectureController) DeleteExamType(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid lecture ID")
	if !ok {
		return
	}
	typeID, ok := parseIDParam(ctx, "typeId", "Invalid exam type ID")
	if !ok {
		return
	}

	if err := c.lectureService.DeleteExamType(ctx, id, typeID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Exam type deleted",
		Timestamp: time.Now(),
	})
}

// CreateExam creates an exam under a lecture
// @Summary Create an exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Param request body dto.CreateExamRequest true "Exam"
// @Success 201 {object} dto.APIResponse{data=models.Exam} "Exam created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Lecture not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id}/exams [post]
func (c *LectureController) CreateExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid lecture ID")
	if !ok {
		return
	}

	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	exam, err := c.lectureService.CreateExam(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Message:   "Exam created",
		Data:      exam,
		Timestamp: time.Now(),
	})
}

// ListExams returns the exams of a lecture
// @Summary List exams
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Exam} "Exams"
// @Failure 400 {object} dto.ErrorResponse "Invalid lecture ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Lecture not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id}/exams [get]
func (c *LectureController) ListExams(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid lecture ID")
	if !ok {
		return
	}

	exams, err := c.lectureService.ListExams(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      exams,
		Timestamp: time.Now(),
	})
}

// DeleteExam removes an exam from a lecture
// @Summary Delete an exam
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Param examId path int true "Exam ID"
// @Success 200 {object} dto.APIResponse "Exam deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Lecture or exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id}/exams/{examId} [delete]
func (c *LectureController) DeleteExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid lecture ID")
	if !ok {
		return
	}
	examID, ok := parseIDParam(ctx, "examId", "Invalid exam ID")
	if !ok {
		return
	}

	if err := c.lectureService.DeleteExam(ctx, id, examID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Exam deleted",
		Timestamp: time.Now(),
	})
}

// CreateScores records exam scores
// @Summary Record scores
// @Description Records exam scores and refreshes the exam's aggregate statistics
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Param examId path int true "Exam ID"
// @Param request body dto.CreateScoresRequest true "Scores"
// @Success 201 {object} dto.APIResponse "Scores recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Lecture or exam not found"
// @Failure 409 {object} dto.ErrorResponse "Score already recorded"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id}/exams/{examId}/scores [post]
func (c *LectureController) CreateScores(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid lecture ID")
	if !ok {
		return
	}
	examID, ok := parseIDParam(ctx, "examId", "Invalid exam ID")
	if !ok {
		return
	}

	var req dto.CreateScoresRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.lectureService.CreateScores(ctx, id, examID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Message:   "Scores recorded",
		Timestamp: time.Now(),
	})
}

// UpdateScores overwrites recorded exam scores
// @Summary Update scores
// @Description Overwrites previously recorded scores and refreshes the exam's aggregate statistics
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Param examId path int true "Exam ID"
// @Param request body dto.CreateScoresRequest true "Scores"
// @Success 200 {object} dto.APIResponse "Scores updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Lecture, exam or score not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id}/exams/{examId}/scores [put]
func (c *LectureController) UpdateScores(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid lecture ID")
	if !ok {
		return
	}
	examID, ok := parseIDParam(ctx, "examId", "Invalid exam ID")
	if !ok {
		return
	}

	var req dto.CreateScoresRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.lectureService.UpdateScores(ctx, id, examID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Scores updated",
		Timestamp: time.Now(),
	})
}

// ListScores returns the recorded scores of an exam
// @Summary List scores
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Param examId path int true "Exam ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Score} "Scores"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Lecture or exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id}/exams/{examId}/scores [get]
func (c *LectureController) ListScores(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid lecture ID")
	if !ok {
		return
	}
	examID, ok := parseIDParam(ctx, "examId", "Invalid exam ID")
	if !ok {
		return
	}

	scores, err := c.lectureService.ListScores(ctx, id, examID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      scores,
		Timestamp: time.Now(),
	})
}
