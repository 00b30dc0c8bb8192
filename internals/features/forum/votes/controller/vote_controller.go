package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	postModel "forumlk_backend/internals/features/forum/posts/model"
	"forumlk_backend/internals/features/forum/votes/dto"
	"forumlk_backend/internals/features/forum/votes/model"
	helper "forumlk_backend/internals/helpers"
)

type VoteController struct {
	DB *gorm.DB
}

func NewVoteController(db *gorm.DB) *VoteController {
	return &VoteController{DB: db}
}

func (ctrl *VoteController) scoreFor(postID string) int64 {
	var score int64
	ctrl.DB.Model(&model.PostVoteModel{}).
		Where("post_vote_post_id = ?", postID).
		Select("COALESCE(SUM(post_vote_value), 0)").
		Scan(&score)
	return score
}

// 👍👎 Cast or change a vote. One row per (post, user); casting again overwrites.
func (ctrl *VoteController) CastVote(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	postID := c.Params("post_id")

	var body dto.CastVoteRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var post postModel.PostModel
	if err := ctrl.DB.First(&post, "post_id = ? AND post_is_published = true AND post_deleted_at IS NULL", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load post")
	}

	vote := model.PostVoteModel{
		PostVotePostID: post.PostID,
		PostVoteUserID: userID.String(),
		PostVoteValue:  body.VoteValue,
	}

	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_vote_post_id"}, {Name: "post_vote_user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"post_vote_value": body.VoteValue}),
	}).Create(&vote).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save vote")
	}

	return helper.JsonOK(c, "Vote saved", dto.VoteResultDTO{
		PostID:    post.PostID,
		VoteScore: ctrl.scoreFor(post.PostID),
		MyVote:    body.VoteValue,
	})
}

// 🗑️ Remove own vote (hard delete, the score simply drops)
func (ctrl *VoteController) RemoveVote(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	postID := c.Params("post_id")

	result := ctrl.DB.
		Where("post_vote_post_id = ? AND post_vote_user_id = ?", postID, userID.String()).
		Delete(&model.PostVoteModel{})
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove vote")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No vote to remove")
	}

	return helper.JsonOK(c, "Vote removed", dto.VoteResultDTO{
		PostID:    postID,
		VoteScore: ctrl.scoreFor(postID),
		MyVote:    0,
	})
}
