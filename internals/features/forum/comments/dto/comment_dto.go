package dto

import (
	"time"

	"forumlk_backend/internals/features/forum/comments/model"
)

// ============================
// Response DTO
// ============================
type CommentDTO struct {
	CommentID       string     `json:"comment_id"`
	CommentPostID   string     `json:"comment_post_id"`
	CommentUserID   string     `json:"comment_user_id"`
	CommentParentID *string    `json:"comment_parent_id"`
	CommentContent  string     `json:"comment_content"`
	CommentUserName *string    `json:"comment_user_name,omitempty"`
	CommentCreatedAt time.Time `json:"comment_created_at"`
	CommentUpdatedAt time.Time `json:"comment_updated_at"`
}

// ============================
// Create / Update Request DTO
// ============================
type CreateCommentRequest struct {
	CommentParentID *string `json:"comment_parent_id" validate:"omitempty,uuid"`
	CommentContent  string  `json:"comment_content" validate:"required,min=1,max=5000"`
}

type UpdateCommentRequest struct {
	CommentContent string `json:"comment_content" validate:"required,min=1,max=5000"`
}

// ============================
// Converter
// ============================
func ToCommentDTO(m model.CommentModel) CommentDTO {
	out := CommentDTO{
		CommentID:        m.CommentID,
		CommentPostID:    m.CommentPostID,
		CommentUserID:    m.CommentUserID,
		CommentParentID:  m.CommentParentID,
		CommentContent:   m.CommentContent,
		CommentCreatedAt: m.CommentCreatedAt,
		CommentUpdatedAt: m.CommentUpdatedAt,
	}
	if m.User != nil {
		out.CommentUserName = &m.User.UserName
	}
	return out
}
