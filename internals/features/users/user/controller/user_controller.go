package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"forumlk_backend/internals/features/users/user/dto"
	"forumlk_backend/internals/features/users/user/model"
	helper "forumlk_backend/internals/helpers"
	"forumlk_backend/internals/helpers/storage"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func (ctrl *UserController) loadProfile(userID string) *model.UsersProfileModel {
	var profile model.UsersProfileModel
	if err := ctrl.DB.First(&profile, "user_id = ? AND deleted_at IS NULL", userID).Error; err != nil {
		return nil
	}
	return &profile
}

// 👤 Current user with profile
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ? AND deleted_at IS NULL", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	return helper.JsonOK(c, "", dto.ToUserProfileDTO(user, ctrl.loadProfile(userID.String())))
}

// 🔄 Update own account and profile fields
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.UpdateMeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ? AND deleted_at IS NULL", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	if body.UserName != nil {
		user.UserName = strings.TrimSpace(*body.UserName)
	}
	if body.FullName != nil {
		user.FullName = body.FullName
	}
	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	profile := ctrl.loadProfile(userID.String())
	if profile == nil {
		profile = &model.UsersProfileModel{UserID: userID}
	}
	if body.Bio != nil {
		profile.Bio = body.Bio
	}
	if body.Location != nil {
		profile.Location = body.Location
	}
	if body.WebsiteURL != nil {
		profile.WebsiteURL = body.WebsiteURL
	}
	if err := ctrl.DB.Save(profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.JsonUpdated(c, "Profile updated", dto.ToUserProfileDTO(user, profile))
}

// 🔑 Change own password (current password required)
func (ctrl *UserController) ChangeMyPassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.ChangePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ? AND deleted_at IS NULL", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	if !user.CheckPassword(body.CurrentPassword) {
		return helper.JsonError(c, fiber.StatusForbidden, "Current password is incorrect")
	}
	if err := user.SetPassword(body.NewPassword); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Update("password", user.Password).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password updated", fiber.Map{"id": user.ID})
}

// 🖼️ Replace own avatar (multipart field: avatar)
func (ctrl *UserController) UpdateMyAvatar(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("avatar")
	if err != nil || file == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Avatar file is required")
	}

	profile := ctrl.loadProfile(userID.String())
	if profile == nil {
		profile = &model.UsersProfileModel{UserID: userID}
	}

	if profile.AvatarURL != nil {
		if bucket, object, ok := storage.ObjectPathFromPublicURL(*profile.AvatarURL); ok {
			_ = storage.DeleteObject(bucket, object)
		}
	}

	url, err := storage.UploadImage("avatars", file)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload avatar")
	}
	profile.AvatarURL = &url

	if err := ctrl.DB.Save(profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save avatar")
	}

	return helper.JsonUpdated(c, "Avatar updated", fiber.Map{"avatar_url": url})
}

// 📄 All users (admin, pagination + optional ?search= on name/email)
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&model.UserModel{}).Where("deleted_at IS NULL")
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(user_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := query.
		Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	result := make([]dto.UserDTO, 0, len(users))
	for _, user := range users {
		result = append(result, dto.ToUserDTO(user))
	}

	return helper.JsonList(c, "", result, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🚫 Toggle a user's active flag (admin)
func (ctrl *UserController) SetUserActive(c *fiber.Ctx) error {
	id := c.Params("id")

	var body struct {
		IsActive *bool `json:"is_active" validate:"required"`
	}
	if err := c.BodyParser(&body); err != nil || body.IsActive == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "is_active is required")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ? AND deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	user.IsActive = *body.IsActive
	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	return helper.JsonUpdated(c, "User updated", dto.ToUserDTO(user))
}
