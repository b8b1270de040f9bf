package dto

import "time"

// CreateLectureRequest is the payload for creating a lecture
type CreateLectureRequest struct {
	AcademyID   string `json:"academy_id" binding:"required" example:"seoul_math_01"`
	LectureName string `json:"lecture_name" binding:"required" example:"Calculus I"`
	TeacherID   string `json:"teacher_id" binding:"required" example:"teacher_lee"`
	Days        string `json:"days" binding:"required" example:"MON,WED,FRI"`
	StartTime   string `json:"start_time" binding:"required" example:"16:00"`
	EndTime     string `json:"end_time" binding:"required" example:"18:00"`
}

// UpdateLectureRequest is the payload for updating a lecture
type UpdateLectureRequest struct {
	LectureName string `json:"lecture_name" binding:"required"`
	TeacherID   string `json:"teacher_id" binding:"required"`
	Days        string `json:"days" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
}

// LectureStudentRequest identifies a student to add to or remove from a lecture
type LectureStudentRequest struct {
	UserID string `json:"user_id" binding:"required" example:"student_kim"`
}

// CreateExamTypeRequest is the payload for creating an exam type under a lecture
type CreateExamTypeRequest struct {
	ExamTypeName string `json:"exam_type_name" binding:"required" example:"MIDTERM"`
}

// CreateExamRequest is the payload for creating an exam under a lecture
type CreateExamRequest struct {
	ExamName   string    `json:"exam_name" binding:"required" example:"Midterm Week 1"`
	ExamDate   time.Time `json:"exam_date" binding:"required" example:"2025-05-10T10:00:00Z"`
	ExamTypeID int64     `json:"exam_type_id" binding:"required" example:"1"`
	TotalScore int       `json:"total_score" binding:"required" example:"100"`
}

// ScoreEntry is one student's score within a score submission
type ScoreEntry struct {
	UserID string `json:"user_id" binding:"required" example:"student_kim"`
	Score  int    `json:"score" binding:"min=0" example:"92"`
}

// CreateScoresRequest is the payload for recording exam scores
type CreateScoresRequest struct {
	Scores []ScoreEntry `json:"scores" binding:"required,min=1,dive"`
}
