package models

import "time"

// Notice defines the notice model based on the 'notices' table.
// LectureID 0 marks an academy-wide notice.
type Notice struct {
	ID        int64     `json:"id" db:"id"`
	AcademyID string    `json:"academy_id" db:"academy_id"`
	LectureID int64     `json:"lecture_id" db:"lecture_id"`
	UserID    string    `json:"user_id" db:"user_id"` // author
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Views     int       `json:"views" db:"views"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
