package models

import "time"

// Academy defines the academy model based on the 'academies' table
type Academy struct {
	AcademyID    string        `json:"academy_id" db:"academy_id" example:"seoul_math_01"`
	AcademyKey   string        `json:"academy_key" db:"academy_key" example:"a3f1c2d4e5b6978811223344556677ff"` // Invite key, surfaced once at creation
	AcademyName  string        `json:"academy_name" db:"academy_name" example:"Seoul Math Academy"`
	AcademyEmail string        `json:"academy_email" db:"academy_email" example:"info@seoulmath.kr"`
	Address      string        `json:"address" db:"address" example:"12 Gangnam-daero, Seoul"`
	PhoneNumber  string        `json:"phone_number" db:"phone_number" example:"02-1234-5678"`
	Status       AcademyStatus `json:"status" db:"status" example:"PENDING"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
}
