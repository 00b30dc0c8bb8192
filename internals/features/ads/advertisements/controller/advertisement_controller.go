package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"forumlk_backend/internals/features/ads/advertisements/dto"
	"forumlk_backend/internals/features/ads/advertisements/model"
	"forumlk_backend/internals/features/competitions/registrations/service"
	helper "forumlk_backend/internals/helpers"
	"forumlk_backend/internals/helpers/storage"
)

type AdvertisementController struct {
	DB *gorm.DB
}

func NewAdvertisementController(db *gorm.DB) *AdvertisementController {
	return &AdvertisementController{DB: db}
}

// ➕ Create advertisement (admin, multipart: fields + ad_image file)
func (ctrl *AdvertisementController) CreateAdvertisement(c *fiber.Ctx) error {
	body := dto.CreateAdvertisementRequest{
		AdTitle:     strings.TrimSpace(c.FormValue("ad_title")),
		AdTargetURL: c.FormValue("ad_target_url"),
		AdPlacement: c.FormValue("ad_placement"),
		AdStartsOn:  c.FormValue("ad_starts_on"),
		AdEndsOn:    c.FormValue("ad_ends_on"),
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	startsOn, err := service.ParseColomboDate(body.AdStartsOn)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ad_starts_on must be YYYY-MM-DD")
	}
	endsOn, err := service.ParseColomboDate(body.AdEndsOn)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ad_ends_on must be YYYY-MM-DD")
	}
	if service.CompareCalendarDays(endsOn, startsOn) < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ad_ends_on must not be before ad_starts_on")
	}

	file, err := c.FormFile("ad_image")
	if err != nil || file == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ad_image file is required")
	}
	imageURL, err := storage.UploadImage("ads", file)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload ad image")
	}

	ad := model.AdvertisementModel{
		AdTitle:     body.AdTitle,
		AdImageURL:  imageURL,
		AdTargetURL: body.AdTargetURL,
		AdPlacement: body.AdPlacement,
		AdIsActive:  true,
		AdStartsOn:  startsOn,
		AdEndsOn:    endsOn,
	}

	if err := ctrl.DB.Create(&ad).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create advertisement")
	}

	return helper.JsonCreated(c, "Advertisement created", dto.ToAdvertisementDTO(ad))
}

// 🔄 Update advertisement (admin)
func (ctrl *AdvertisementController) UpdateAdvertisement(c *fiber.Ctx) error {
	id := c.Params("id")

	var ad model.AdvertisementModel
	if err := ctrl.DB.First(&ad, "ad_id = ? AND ad_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Advertisement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load advertisement")
	}

	var body dto.UpdateAdvertisementRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	if body.AdTitle != nil {
		ad.AdTitle = strings.TrimSpace(*body.AdTitle)
	}
	if body.AdTargetURL != nil {
		ad.AdTargetURL = *body.AdTargetURL
	}
	if body.AdPlacement != nil {
		ad.AdPlacement = *body.AdPlacement
	}
	if body.AdIsActive != nil {
		ad.AdIsActive = *body.AdIsActive
	}
	if body.AdStartsOn != nil {
		t, err := service.ParseColomboDate(*body.AdStartsOn)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "ad_starts_on must be YYYY-MM-DD")
		}
		ad.AdStartsOn = t
	}
	if body.AdEndsOn != nil {
		t, err := service.ParseColomboDate(*body.AdEndsOn)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "ad_ends_on must be YYYY-MM-DD")
		}
		ad.AdEndsOn = t
	}
	if service.CompareCalendarDays(ad.AdEndsOn, ad.AdStartsOn) < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ad_ends_on must not be before ad_starts_on")
	}

	if err := ctrl.DB.Save(&ad).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update advertisement")
	}

	return helper.JsonUpdated(c, "Advertisement updated", dto.ToAdvertisementDTO(ad))
}

// 📄 All advertisements (admin, counters included)
func (ctrl *AdvertisementController) GetAllAdvertisements(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.AdvertisementModel{}).
		Where("ad_deleted_at IS NULL").
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count advertisements")
	}

	var ads []model.AdvertisementModel
	if err := ctrl.DB.
		Where("ad_deleted_at IS NULL").
		Order("ad_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&ads).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve advertisements")
	}

	result := make([]dto.AdvertisementDTO, 0, len(ads))
	for _, ad := range ads {
		result = append(result, dto.ToAdvertisementDTO(ad))
	}

	return helper.JsonList(c, "", result, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 📣 Active ads for a placement (public). Serving counts as an impression.
func (ctrl *AdvertisementController) GetActiveAdvertisements(c *fiber.Ctx) error {
	placement := c.Query("placement")

	query := ctrl.DB.Where("ad_is_active = true AND ad_deleted_at IS NULL")
	if placement != "" {
		query = query.Where("ad_placement = ?", placement)
	}

	var ads []model.AdvertisementModel
	if err := query.Order("ad_created_at DESC").Find(&ads).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve advertisements")
	}

	// The window is a Colombo calendar-day range, so filter here rather than in SQL
	now := service.NowInColombo()
	active := make([]model.AdvertisementModel, 0, len(ads))
	servedIDs := make([]string, 0, len(ads))
	for _, ad := range ads {
		if ad.WithinWindow(now) {
			active = append(active, ad)
			servedIDs = append(servedIDs, ad.AdID)
		}
	}

	if len(servedIDs) > 0 {
		ctrl.DB.Model(&model.AdvertisementModel{}).
			Where("ad_id IN ?", servedIDs).
			UpdateColumn("ad_impression_count", gorm.Expr("ad_impression_count + 1"))
	}

	result := make([]dto.PublicAdvertisementDTO, 0, len(active))
	for _, ad := range active {
		result = append(result, dto.ToPublicAdvertisementDTO(ad))
	}

	return helper.JsonOK(c, "", result)
}

// 🖱️ Record a click and hand back the target URL (public)
func (ctrl *AdvertisementController) TrackClick(c *fiber.Ctx) error {
	id := c.Params("id")

	var ad model.AdvertisementModel
	if err := ctrl.DB.First(&ad, "ad_id = ? AND ad_is_active = true AND ad_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Advertisement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load advertisement")
	}

	if err := ctrl.DB.Model(&model.AdvertisementModel{}).
		Where("ad_id = ?", ad.AdID).
		UpdateColumn("ad_click_count", gorm.Expr("ad_click_count + 1")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record click")
	}

	return helper.JsonOK(c, "", fiber.Map{"ad_target_url": ad.AdTargetURL})
}

// 🗑️ Soft-delete advertisement (admin); the stored image is removed too
func (ctrl *AdvertisementController) DeleteAdvertisement(c *fiber.Ctx) error {
	id := c.Params("id")

	var ad model.AdvertisementModel
	if err := ctrl.DB.First(&ad, "ad_id = ? AND ad_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Advertisement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete advertisement")
	}

	if bucket, object, ok := storage.ObjectPathFromPublicURL(ad.AdImageURL); ok {
		_ = storage.DeleteObject(bucket, object)
	}

	if err := ctrl.DB.Model(&model.AdvertisementModel{}).
		Where("ad_id = ?", ad.AdID).
		Update("ad_deleted_at", gorm.Expr("now()")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete advertisement")
	}

	return helper.JsonDeleted(c, "Advertisement deleted", fiber.Map{"id": ad.AdID})
}
