package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"forumlk_backend/internals/features/forum/comments/dto"
	"forumlk_backend/internals/features/forum/comments/model"
	postModel "forumlk_backend/internals/features/forum/posts/model"
	helper "forumlk_backend/internals/helpers"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// ➕ Comment on a post (optionally threaded under a parent comment)
func (ctrl *CommentController) CreateComment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	postID := c.Params("post_id")

	var body dto.CreateCommentRequest
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

	// Parent must belong to the same post
	if body.CommentParentID != nil {
		var parent model.CommentModel
		if err := ctrl.DB.First(&parent, "comment_id = ? AND comment_deleted_at IS NULL", *body.CommentParentID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parent comment not found")
		}
		if parent.CommentPostID != post.PostID {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parent comment belongs to a different post")
		}
	}

	comment := model.CommentModel{
		CommentPostID:   post.PostID,
		CommentUserID:   userID.String(),
		CommentParentID: body.CommentParentID,
		CommentContent:  body.CommentContent,
	}

	if err := ctrl.DB.Create(&comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create comment")
	}

	return helper.JsonCreated(c, "Comment created", dto.ToCommentDTO(comment))
}

// 📄 Comments for a post (public, pagination: ?page=1&per_page=50)
func (ctrl *CommentController) GetCommentsByPost(c *fiber.Ctx) error {
	postID := c.Params("post_id")
	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := ctrl.DB.Model(&model.CommentModel{}).
		Where("comment_post_id = ? AND comment_deleted_at IS NULL", postID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count comments")
	}

	var comments []model.CommentModel
	if err := ctrl.DB.
		Where("comment_post_id = ? AND comment_deleted_at IS NULL", postID).
		Preload("User").
		Order("comment_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&comments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve comments")
	}

	result := make([]dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		result = append(result, dto.ToCommentDTO(comment))
	}

	return helper.JsonList(c, "", result, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🔄 Edit own comment
func (ctrl *CommentController) UpdateComment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.UpdateCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var comment model.CommentModel
	if err := ctrl.DB.First(&comment, "comment_id = ? AND comment_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Comment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load comment")
	}

	if comment.CommentUserID != userID.String() {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author can edit this comment")
	}

	comment.CommentContent = body.CommentContent
	if err := ctrl.DB.Save(&comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update comment")
	}

	return helper.JsonUpdated(c, "Comment updated", dto.ToCommentDTO(comment))
}

// 🗑️ Soft-delete comment (author or admin)
func (ctrl *CommentController) DeleteComment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var comment model.CommentModel
	if err := ctrl.DB.First(&comment, "comment_id = ? AND comment_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Comment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete comment")
	}

	isAuthor := comment.CommentUserID == userID.String()
	isAdmin := strings.EqualFold(helper.GetRoleFromToken(c), "admin")
	if !isAuthor && !isAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author or an admin can delete this comment")
	}

	if err := ctrl.DB.Model(&model.CommentModel{}).
		Where("comment_id = ?", comment.CommentID).
		Update("comment_deleted_at", gorm.Expr("now()")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete comment")
	}

	return helper.JsonDeleted(c, "Comment deleted", fiber.Map{"id": comment.CommentID})
}
