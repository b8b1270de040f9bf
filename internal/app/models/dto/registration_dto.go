package dto

import "github.com/hagwon-app/hagwon/internal/app/models"

// RegisterAcademyRequest is the payload for academy self-registration
type RegisterAcademyRequest struct {
	AcademyID    string `json:"academy_id" binding:"required" example:"seoul_math_01"`
	AcademyName  string `json:"academy_name" binding:"required" example:"Seoul Math Academy"`
	AcademyEmail string `json:"academy_email" binding:"required,email" example:"info@seoulmath.kr"`
	Address      string `json:"address" binding:"required" example:"12 Gangnam-daero, Seoul"`
	PhoneNumber  string `json:"phone_number" binding:"required" example:"02-1234-5678"`
}

// RegisterUserRequest is the payload for a join request against an invite key
type RegisterUserRequest struct {
	UserID     string      `json:"user_id" binding:"required" example:"student_kim"`
	AcademyKey string      `json:"academy_key" binding:"required,len=32,hexadecimal" example:"a3f1c2d4e5b6978811223344556677ff"`
	Role       models.Role `json:"role" binding:"required,oneof=TEACHER STUDENT" example:"STUDENT"`
}

// DecideRegistrationRequest is the payload for approving or rejecting a join request
type DecideRegistrationRequest struct {
	AcademyID string `json:"academy_id" binding:"required" example:"seoul_math_01"`
	UserID    string `json:"user_id" binding:"required" example:"student_kim"`
	Agreed    *bool  `json:"agreed" binding:"required" example:"true"`
}

// RegistrationResponse couples a registration with the cascaded parent, if any.
// ParentID is null when the registrant has no linked parent or the parent was
// already registered at the academy.
type RegistrationResponse struct {
	Registration *models.Registration `json:"registration"`
	ParentID     *string              `json:"parent_id"`
}
