package model

import (
	"time"
)

// One row per (post, user); value is +1 or -1.
type PostVoteModel struct {
	PostVoteID     string `gorm:"column:post_vote_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	PostVotePostID string `gorm:"column:post_vote_post_id;type:uuid;not null;uniqueIndex:idx_post_votes_post_user"`
	PostVoteUserID string `gorm:"column:post_vote_user_id;type:uuid;not null;uniqueIndex:idx_post_votes_post_user"`
	PostVoteValue  int    `gorm:"column:post_vote_value;not null"`

	PostVoteCreatedAt time.Time `gorm:"column:post_vote_created_at;autoCreateTime"`
	PostVoteUpdatedAt time.Time `gorm:"column:post_vote_updated_at;autoUpdateTime"`
}

func (PostVoteModel) TableName() string {
	return "post_votes"
}
