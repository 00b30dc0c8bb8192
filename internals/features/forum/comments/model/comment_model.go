package model

import (
	"time"

	UserModel "forumlk_backend/internals/features/users/user/model"
)

type CommentModel struct {
	CommentID      string  `gorm:"column:comment_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	CommentPostID  string  `gorm:"column:comment_post_id;type:uuid;not null;index"`
	CommentUserID  string  `gorm:"column:comment_user_id;type:uuid;not null"`
	CommentParentID *string `gorm:"column:comment_parent_id;type:uuid"` // threaded replies
	CommentContent string  `gorm:"column:comment_content;type:text;not null"`

	CommentCreatedAt time.Time  `gorm:"column:comment_created_at;autoCreateTime"`
	CommentUpdatedAt time.Time  `gorm:"column:comment_updated_at;autoUpdateTime"`
	CommentDeletedAt *time.Time `gorm:"column:comment_deleted_at"`

	// Relations
	User *UserModel.UserModel `gorm:"foreignKey:CommentUserID"`
}

func (CommentModel) TableName() string {
	return "post_comments"
}
