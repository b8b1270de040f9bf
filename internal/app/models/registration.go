package models

import "time"

// Registration defines a join request based on the 'academy_user_registrations' table.
// At most one row exists per (academy, user) pair and per (user, role) pair;
// the unique constraints are the backstop against concurrent duplicates.
type Registration struct {
	ID        int64              `json:"id" db:"id"`
	AcademyID string             `json:"academy_id" db:"academy_id" example:"seoul_math_01"`
	UserID    string             `json:"user_id" db:"user_id" example:"student_kim"`
	Role      Role               `json:"role" db:"role" example:"STUDENT"`
	Status    RegistrationStatus `json:"status" db:"status" example:"PENDING"`
	CreatedAt time.Time          `json:"created_at" db:"created_at"`
}

// PendingRegistrant is a registration row joined with the user's profile,
// returned when a chief reviews pending join requests.
type PendingRegistrant struct {
	AcademyID string             `json:"academy_id"`
	Role      Role               `json:"role"`
	Status    RegistrationStatus `json:"status"`
	User      RegistrantProfile  `json:"user"`
}

// RegistrantProfile carries the profile fields shown alongside a pending registration
type RegistrantProfile struct {
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}
