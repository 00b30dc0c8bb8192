package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	commentModel "forumlk_backend/internals/features/forum/comments/model"
	"forumlk_backend/internals/features/forum/posts/dto"
	"forumlk_backend/internals/features/forum/posts/model"
	voteModel "forumlk_backend/internals/features/forum/votes/model"
	helper "forumlk_backend/internals/helpers"
	"forumlk_backend/internals/helpers/storage"
)

type PostController struct {
	DB *gorm.DB
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{DB: db}
}

func (ctrl *PostController) voteScore(postID string) int64 {
	var score int64
	ctrl.DB.Model(&voteModel.PostVoteModel{}).
		Where("post_vote_post_id = ?", postID).
		Select("COALESCE(SUM(post_vote_value), 0)").
		Scan(&score)
	return score
}

func (ctrl *PostController) commentCount(postID string) int64 {
	var count int64
	ctrl.DB.Model(&commentModel.CommentModel{}).
		Where("comment_post_id = ? AND comment_deleted_at IS NULL", postID).
		Count(&count)
	return count
}

// ➕ Create post
func (ctrl *PostController) CreatePost(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	title := strings.TrimSpace(c.FormValue("post_title"))
	content := strings.TrimSpace(c.FormValue("post_content"))
	postType := c.FormValue("post_type", "text")
	isPublished := c.FormValue("post_is_published") == "true"

	if title == "" || content == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title and content are required")
	}

	var imageURL *string
	if file, err := c.FormFile("post_image"); err == nil && file != nil {
		url, err := storage.UploadImage("posts", file)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload image")
		}
		imageURL = &url
	} else if val := c.FormValue("post_image_url"); val != "" {
		imageURL = &val
	}

	base := helper.GenerateSlug(title)
	slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "posts", "post_slug")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	uid := userID.String()
	post := model.PostModel{
		PostTitle:       title,
		PostSlug:        slug,
		PostContent:     content,
		PostImageURL:    imageURL,
		PostIsPublished: isPublished,
		PostType:        postType,
		PostUserID:      &uid,
	}

	if err := ctrl.DB.Create(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create post")
	}

	return helper.JsonCreated(c, "Post created", dto.ToPostDTO(post, 0, 0))
}

// 🔄 Update post (author only)
func (ctrl *PostController) UpdatePost(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var post model.PostModel
	if err := ctrl.DB.First(&post, "post_id = ? AND post_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load post")
	}

	if post.PostUserID == nil || *post.PostUserID != userID.String() {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author can edit this post")
	}

	if val := strings.TrimSpace(c.FormValue("post_title")); val != "" {
		post.PostTitle = val
	}
	if val := strings.TrimSpace(c.FormValue("post_content")); val != "" {
		post.PostContent = val
	}
	if val := c.FormValue("post_type"); val != "" {
		post.PostType = val
	}
	if val := c.FormValue("post_is_published"); val != "" {
		post.PostIsPublished = val == "true"
	}

	// Replace image: drop the old object first when there is one
	if file, err := c.FormFile("post_image"); err == nil && file != nil {
		if post.PostImageURL != nil {
			if bucket, object, ok := storage.ObjectPathFromPublicURL(*post.PostImageURL); ok {
				_ = storage.DeleteObject(bucket, object)
			}
		}
		newURL, err := storage.UploadImage("posts", file)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload new image")
		}
		post.PostImageURL = &newURL
	}

	if err := ctrl.DB.Save(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update post")
	}

	return helper.JsonUpdated(c, "Post updated", dto.ToPostDTO(post, ctrl.voteScore(post.PostID), ctrl.commentCount(post.PostID)))
}

// 📄 All published posts (public, pagination: ?page=1&per_page=20)
func (ctrl *PostController) GetAllPosts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.PostModel{}).
		Where("post_is_published = true AND post_deleted_at IS NULL").
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count posts")
	}

	var posts []model.PostModel
	if err := ctrl.DB.
		Where("post_is_published = true AND post_deleted_at IS NULL").
		Preload("User").
		Order("post_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve posts")
	}

	result := make([]dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		result = append(result, dto.ToPostDTO(post, ctrl.voteScore(post.PostID), ctrl.commentCount(post.PostID)))
	}

	return helper.JsonList(c, "", result, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🔍 Post detail by slug (public)
func (ctrl *PostController) GetPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var post model.PostModel
	if err := ctrl.DB.Preload("User").
		First(&post, "post_slug = ? AND post_deleted_at IS NULL", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load post")
	}

	return helper.JsonOK(c, "", dto.ToPostDTO(post, ctrl.voteScore(post.PostID), ctrl.commentCount(post.PostID)))
}

// 📄 My posts (user, drafts included)
func (ctrl *PostController) GetMyPosts(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var posts []model.PostModel
	if err := ctrl.DB.
		Where("post_user_id = ? AND post_deleted_at IS NULL", userID.String()).
		Order("post_created_at DESC").
		Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve posts")
	}

	result := make([]dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		result = append(result, dto.ToPostDTO(post, ctrl.voteScore(post.PostID), ctrl.commentCount(post.PostID)))
	}

	return helper.JsonOK(c, "", result)
}

// 🗑️ Soft-delete post (author or admin)
func (ctrl *PostController) DeletePost(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var post model.PostModel
	if err := ctrl.DB.First(&post, "post_id = ? AND post_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete post")
	}

	isAuthor := post.PostUserID != nil && *post.PostUserID == userID.String()
	isAdmin := strings.EqualFold(helper.GetRoleFromToken(c), "admin")
	if !isAuthor && !isAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author or an admin can delete this post")
	}

	if err := ctrl.DB.Model(&model.PostModel{}).
		Where("post_id = ?", post.PostID).
		Update("post_deleted_at", gorm.Expr("now()")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete post")
	}

	return helper.JsonDeleted(c, "Post deleted", fiber.Map{"id": post.PostID})
}
