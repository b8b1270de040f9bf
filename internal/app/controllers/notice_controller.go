package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hagwon-app/hagwon/internal/app/models/dto"
	"github.com/hagwon-app/hagwon/internal/app/services"
	"github.com/hagwon-app/hagwon/internal/middleware"
	"github.com/hagwon-app/hagwon/internal/pkg/helpers"
)

// NoticeController handles notice board endpoints
type NoticeController struct {
	noticeService services.NoticeService
}

// NewNoticeController creates a new NoticeController
func NewNoticeController(noticeService services.NoticeService) *NoticeController {
	return &NoticeController{
		noticeService: noticeService,
	}
}

// CreateNotice posts a notice
// @Summary Create a notice
// @Description Posts a notice to an academy or a single lecture (lecture_id 0 targets the whole academy)
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNoticeRequest true "Notice"
// @Success 201 {object} dto.APIResponse{data=models.Notice} "Notice created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Academy not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notices [post]
func (c *NoticeController) CreateNotice(ctx *gin.Context) {
	var req dto.CreateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	authorID := ctx.GetString(middleware.ContextUserIDKey)
	notice, err := c.noticeService.CreateNotice(ctx, authorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Message:   "Notice created",
		Data:      notice,
		Timestamp: time.Now(),
	})
}

// ListNotices returns a page of notices
// @Summary List notices
// @Description Lists notices of an academy and lecture, newest first
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Param academy_id query string true "Academy ID"
// @Param lecture_id query int false "Lecture ID (0 for academy-wide)"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Notices"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notices [get]
func (c *NoticeController) ListNotices(ctx *gin.Context) {
	lectureID, err := strconv.ParseInt(ctx.DefaultQuery("lecture_id", "0"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid lecture ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	result, err := c.noticeService.ListNotices(ctx, ctx.Query("academy_id"), lectureID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// GetNotice returns a single notice
// @Summary Get a notice
// @Description Returns one notice and increments its view counter
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notice ID"
// @Success 200 {object} dto.APIResponse{data=models.Notice} "Notice"
// @Failure 400 {object} dto.ErrorResponse "Invalid notice ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notices/{id} [get]
func (c *NoticeController) GetNotice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid notice ID")
	if !ok {
		return
	}

	notice, err := c.noticeService.GetNotice(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      notice,
		Timestamp: time.Now(),
	})
}

// UpdateNotice edits a notice
// @Summary Update a notice
// @Description Replaces a notice's title and content
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notice ID"
// @Param request body dto.UpdateNoticeRequest true "New title and content"
// @Success 200 {object} dto.APIResponse{data=models.Notice} "Notice updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notices/{id} [put]
func (c *NoticeController) UpdateNotice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid notice ID")
	if !ok {
		return
	}

	var req dto.UpdateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	notice, err := c.noticeService.UpdateNotice(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Notice updated",
		Data:      notice,
		Timestamp: time.Now(),
	})
}

// DeleteNotice removes a notice
// @Summary Delete a notice
// @Description Deletes a notice
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notice ID"
// @Success 200 {object} dto.APIResponse "Notice deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid notice ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notices/{id} [delete]
func (c *NoticeController) DeleteNotice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid notice ID")
	if !ok {
		return
	}

	if err := c.noticeService.DeleteNotice(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Notice deleted",
		Timestamp: time.Now(),
	})
}

// parseIDParam parses a numeric path parameter and responds 400 on failure
func parseIDParam(ctx *gin.Context, name, message string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
