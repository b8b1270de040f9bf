package dto

// CreateNoticeRequest is the payload for creating a notice.
// LectureID 0 targets the whole academy.
type CreateNoticeRequest struct {
	AcademyID string `json:"academy_id" binding:"required" example:"seoul_math_01"`
	LectureID *int64 `json:"lecture_id" binding:"required" example:"0"`
	Title     string `json:"title" binding:"required" example:"Schedule change"`
	Content   string `json:"content" binding:"required" example:"Classes are moved to 15:00 this week."`
}

// UpdateNoticeRequest is the payload for editing a notice
type UpdateNoticeRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}
