package model

import (
	"time"

	"github.com/google/uuid"
)

type UsersProfileModel struct {
	ID         uuid.UUID  `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID  `gorm:"column:user_id;type:uuid;uniqueIndex;not null" json:"user_id"`
	Bio        *string    `gorm:"column:bio;type:text" json:"bio"`
	AvatarURL  *string    `gorm:"column:avatar_url;type:text" json:"avatar_url"`
	Location   *string    `gorm:"column:location;type:varchar(100)" json:"location"`
	WebsiteURL *string    `gorm:"column:website_url;type:text" json:"website_url"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt  *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`

	User *UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (UsersProfileModel) TableName() string {
	return "users_profiles"
}
