package dto

import (
	"time"

	"github.com/google/uuid"

	"forumlk_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	FullName  *string   `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type UserProfileDTO struct {
	UserDTO
	Bio        *string `json:"bio"`
	AvatarURL  *string `json:"avatar_url"`
	Location   *string `json:"location"`
	WebsiteURL *string `json:"website_url"`
}

// ============================
// Update Request DTO
// ============================
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

type UpdateMeRequest struct {
	UserName   *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	FullName   *string `json:"full_name" validate:"omitempty,max=100"`
	Bio        *string `json:"bio" validate:"omitempty,max=2000"`
	Location   *string `json:"location" validate:"omitempty,max=100"`
	WebsiteURL *string `json:"website_url" validate:"omitempty,url"`
}

// ============================
// Converters
// ============================
func ToUserDTO(u model.UserModel) UserDTO {
	return UserDTO{
		ID:        u.ID,
		UserName:  u.UserName,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func ToUserProfileDTO(u model.UserModel, p *model.UsersProfileModel) UserProfileDTO {
	out := UserProfileDTO{UserDTO: ToUserDTO(u)}
	if p != nil {
		out.Bio = p.Bio
		out.AvatarURL = p.AvatarURL
		out.Location = p.Location
		out.WebsiteURL = p.WebsiteURL
	}
	return out
}
