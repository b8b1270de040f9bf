package models

import "time"

// ExamType defines an exam category within a lecture based on the 'exam_types' table
type ExamType struct {
	ID           int64  `json:"id" db:"id"`
	LectureID    int64  `json:"lecture_id" db:"lecture_id"`
	ExamTypeName string `json:"exam_type_name" db:"exam_type_name"`
}

// Exam defines the exam model based on the 'exams' table
type Exam struct {
	ID           int64     `json:"id" db:"id"`
	LectureID    int64     `json:"lecture_id" db:"lecture_id"`
	ExamName     string    `json:"exam_name" db:"exam_name"`
	ExamDate     time.Time `json:"exam_date" db:"exam_date"`
	ExamTypeID   int64     `json:"exam_type_id" db:"exam_type_id"`
	HighScore    int       `json:"high_score" db:"high_score"`
	LowScore     int       `json:"low_score" db:"low_score"`
	AverageScore float64   `json:"average_score" db:"average_score"`
	TotalScore   int       `json:"total_score" db:"total_score"`
}

// Score defines a student's score for an exam based on the 'scores' table
type Score struct {
	ExamID int64  `json:"exam_id" db:"exam_id"`
	UserID string `json:"user_id" db:"user_id"`
	Score  int    `json:"score" db:"score"`
}
