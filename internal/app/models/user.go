package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	UserID      string    `json:"user_id" db:"user_id" example:"student_kim"`
	Password    string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	UserName    string    `json:"user_name" db:"user_name" example:"Kim Minjun"`
	Email       string    `json:"email" db:"email" example:"minjun@example.com"`
	PhoneNumber string    `json:"phone_number" db:"phone_number" example:"010-1234-5678"`
	Role        Role      `json:"role" db:"role" example:"STUDENT"`
	AcademyID   *string   `json:"academy_id,omitempty" db:"academy_id"` // nil until approved into an academy
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Family links a student to a parent based on the 'families' table
type Family struct {
	ID        int64  `json:"id" db:"id"`
	StudentID string `json:"student_id" db:"student_id"`
	ParentID  string `json:"parent_id" db:"parent_id"`
}
