package dto

// ============================
// Request DTO
// ============================
type CastVoteRequest struct {
	VoteValue int `json:"vote_value" validate:"required,oneof=1 -1"`
}

// ============================
// Response DTO
// ============================
type VoteResultDTO struct {
	PostID    string `json:"post_id"`
	VoteScore int64  `json:"vote_score"`
	MyVote    int    `json:"my_vote"` // 0 when the caller has no vote
}
