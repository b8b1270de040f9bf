package dto

import "github.com/hagwon-app/hagwon/internal/app/models"

// SignUpRequest is the payload for user signup
type SignUpRequest struct {
	UserID      string      `json:"user_id" binding:"required" example:"student_kim"`
	Password    string      `json:"password" binding:"required,min=8" example:"s3cret-pw!"`
	UserName    string      `json:"user_name" binding:"required" example:"Kim Minjun"`
	Email       string      `json:"email" binding:"required,email" example:"minjun@example.com"`
	PhoneNumber string      `json:"phone_number" binding:"required" example:"010-1234-5678"`
	Role        models.Role `json:"role" binding:"required,oneof=STUDENT TEACHER PARENT CHIEF" example:"STUDENT"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	UserID   string `json:"user_id" binding:"required" example:"student_kim"`
	Password string `json:"password" binding:"required" example:"s3cret-pw!"`
}

// RefreshTokenRequest is the payload for rotating a refresh token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required,uuid"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type" example:"Bearer"`
	ExpiresIn    int    `json:"expires_in" example:"3600"`
}
