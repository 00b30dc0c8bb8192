package dto

import (
	"time"

	"forumlk_backend/internals/features/forum/posts/model"
)

// ============================
// Response DTO
// ============================
type PostDTO struct {
	PostID          string     `json:"post_id"`
	PostTitle       string     `json:"post_title"`
	PostSlug        string     `json:"post_slug"`
	PostContent     string     `json:"post_content"`
	PostImageURL    *string    `json:"post_image_url"`
	PostIsPublished bool       `json:"post_is_published"`
	PostType        string     `json:"post_type"`
	PostUserID      *string    `json:"post_user_id"`
	PostCreatedAt   time.Time  `json:"post_created_at"`
	PostUpdatedAt   time.Time  `json:"post_updated_at"`
	PostDeletedAt   *time.Time `json:"post_deleted_at"`

	VoteScore    int64 `json:"vote_score"`
	CommentCount int64 `json:"comment_count"`
}

// ============================
// Create / Update Request DTO
// ============================
type CreatePostRequest struct {
	PostTitle       string  `json:"post_title" validate:"required,min=3,max=255"`
	PostContent     string  `json:"post_content" validate:"required"`
	PostImageURL    *string `json:"post_image_url" validate:"omitempty,url"`
	PostIsPublished bool    `json:"post_is_published"`
	PostType        string  `json:"post_type" validate:"omitempty,oneof=text image link"`
}

type UpdatePostRequest struct {
	PostTitle       *string `json:"post_title" validate:"omitempty,min=3,max=255"`
	PostContent     *string `json:"post_content"`
	PostImageURL    *string `json:"post_image_url" validate:"omitempty,url"`
	PostIsPublished *bool   `json:"post_is_published"`
	PostType        *string `json:"post_type" validate:"omitempty,oneof=text image link"`
}

// ============================
// Converter
// ============================
func ToPostDTO(m model.PostModel, voteScore, commentCount int64) PostDTO {
	return PostDTO{
		PostID:          m.PostID,
		PostTitle:       m.PostTitle,
		PostSlug:        m.PostSlug,
		PostContent:     m.PostContent,
		PostImageURL:    m.PostImageURL,
		PostIsPublished: m.PostIsPublished,
		PostType:        m.PostType,
		PostUserID:      m.PostUserID,
		PostCreatedAt:   m.PostCreatedAt,
		PostUpdatedAt:   m.PostUpdatedAt,
		PostDeletedAt:   m.PostDeletedAt,
		VoteScore:       voteScore,
		CommentCount:    commentCount,
	}
}
