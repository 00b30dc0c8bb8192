package model

import (
	"time"

	UserModel "forumlk_backend/internals/features/users/user/model"
)

type PostModel struct {
	PostID          string  `gorm:"column:post_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	PostTitle       string  `gorm:"column:post_title;type:varchar(255);not null"`
	PostSlug        string  `gorm:"column:post_slug;type:varchar(255);uniqueIndex;not null"`
	PostContent     string  `gorm:"column:post_content;type:text;not null"`
	PostImageURL    *string `gorm:"column:post_image_url;type:text"`
	PostIsPublished bool    `gorm:"column:post_is_published;default:false"`
	PostType        string  `gorm:"column:post_type;type:varchar(50);default:'text'"`

	PostUserID *string `gorm:"column:post_user_id;type:uuid"`

	PostCreatedAt time.Time  `gorm:"column:post_created_at;autoCreateTime"`
	PostUpdatedAt time.Time  `gorm:"column:post_updated_at;autoUpdateTime"`
	PostDeletedAt *time.Time `gorm:"column:post_deleted_at"`

	// Relations
	User *UserModel.UserModel `gorm:"foreignKey:PostUserID"`
}

func (PostModel) TableName() string {
	return "posts"
}
