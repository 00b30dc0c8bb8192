package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"forumlk_backend/internals/features/competitions/competitions/dto"
	"forumlk_backend/internals/features/competitions/competitions/model"
	"forumlk_backend/internals/features/competitions/registrations/service"
	helper "forumlk_backend/internals/helpers"
)

type CompetitionController struct {
	DB *gorm.DB
}

func NewCompetitionController(db *gorm.DB) *CompetitionController {
	return &CompetitionController{DB: db}
}

// parseBoundaries validates and parses the six window dates.
func parseBoundaries(req dto.CreateCompetitionRequest, m *model.CompetitionModel) map[string][]string {
	fieldErrs := map[string][]string{}
	parse := func(field, value string) (parsed bool) {
		t, err := service.ParseColomboDate(value)
		if err != nil {
			fieldErrs[field] = append(fieldErrs[field], "must be a YYYY-MM-DD date")
			return false
		}
		switch field {
		case "competition_early_bird_start":
			m.CompetitionEarlyBirdStart = t
		case "competition_early_bird_end":
			m.CompetitionEarlyBirdEnd = t
		case "competition_standard_start":
			m.CompetitionStandardStart = t
		case "competition_standard_end":
			m.CompetitionStandardEnd = t
		case "competition_late_start":
			m.CompetitionLateStart = t
		case "competition_late_end":
			m.CompetitionLateEnd = t
		}
		return true
	}

	parse("competition_early_bird_start", req.CompetitionEarlyBirdStart)
	parse("competition_early_bird_end", req.CompetitionEarlyBirdEnd)
	parse("competition_standard_start", req.CompetitionStandardStart)
	parse("competition_standard_end", req.CompetitionStandardEnd)
	parse("competition_late_start", req.CompetitionLateStart)
	parse("competition_late_end", req.CompetitionLateEnd)

	if len(fieldErrs) == 0 {
		return nil
	}
	return fieldErrs
}

// ➕ Create competition (admin)
func (ctrl *CompetitionController) CreateCompetition(c *fiber.Ctx) error {
	var req dto.CreateCompetitionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	comp := model.CompetitionModel{
		CompetitionName:        strings.TrimSpace(req.CompetitionName),
		CompetitionDescription: req.CompetitionDescription,
		CompetitionYear:        req.CompetitionYear,
		CompetitionIsOpen:      true,
	}
	if fieldErrs := parseBoundaries(req, &comp); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	base := helper.GenerateSlug(comp.CompetitionName)
	slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "competitions", "competition_slug")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}
	comp.CompetitionSlug = slug

	if err := ctrl.DB.Create(&comp).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create competition")
	}

	return helper.JsonCreated(c, "Competition created", dto.ToCompetitionDTO(comp))
}

// 🔄 Update competition (admin)
func (ctrl *CompetitionController) UpdateCompetition(c *fiber.Ctx) error {
	id := c.Params("id")

	var comp model.CompetitionModel
	if err := ctrl.DB.First(&comp, "competition_id = ? AND competition_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Competition not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load competition")
	}

	var req dto.UpdateCompetitionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	if req.CompetitionName != nil {
		comp.CompetitionName = strings.TrimSpace(*req.CompetitionName)
	}
	if req.CompetitionDescription != nil {
		comp.CompetitionDescription = req.CompetitionDescription
	}
	if req.CompetitionIsOpen != nil {
		comp.CompetitionIsOpen = *req.CompetitionIsOpen
	}

	fieldErrs := map[string][]string{}
	updateBoundary := func(field string, value *string, dst *time.Time) {
		if value == nil {
			return
		}
		t, err := service.ParseColomboDate(*value)
		if err != nil {
			fieldErrs[field] = append(fieldErrs[field], "must be a YYYY-MM-DD date")
			return
		}
		*dst = t
	}
	updateBoundary("competition_early_bird_start", req.CompetitionEarlyBirdStart, &comp.CompetitionEarlyBirdStart)
	updateBoundary("competition_early_bird_end", req.CompetitionEarlyBirdEnd, &comp.CompetitionEarlyBirdEnd)
	updateBoundary("competition_standard_start", req.CompetitionStandardStart, &comp.CompetitionStandardStart)
	updateBoundary("competition_standard_end", req.CompetitionStandardEnd, &comp.CompetitionStandardEnd)
	updateBoundary("competition_late_start", req.CompetitionLateStart, &comp.CompetitionLateStart)
	updateBoundary("competition_late_end", req.CompetitionLateEnd, &comp.CompetitionLateEnd)

	if len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, fieldErrs)
	}

	if err := ctrl.DB.Save(&comp).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update competition")
	}

	return helper.JsonUpdated(c, "Competition updated", dto.ToCompetitionDTO(comp))
}

// 📄 List competitions (public, paginated)
func (ctrl *CompetitionController) GetAllCompetitions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.CompetitionModel{}).
		Where("competition_deleted_at IS NULL").
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count competitions")
	}

	var comps []model.CompetitionModel
	if err := ctrl.DB.
		Where("competition_deleted_at IS NULL").
		Order("competition_year DESC, competition_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&comps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve competitions")
	}

	result := make([]dto.CompetitionDTO, 0, len(comps))
	for _, comp := range comps {
		result = append(result, dto.ToCompetitionDTO(comp))
	}

	return helper.JsonList(c, "", result, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🔍 Competition detail by slug (public) with "as of now" pricing
func (ctrl *CompetitionController) GetCompetitionBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var comp model.CompetitionModel
	if err := ctrl.DB.First(&comp, "competition_slug = ? AND competition_deleted_at IS NULL", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Competition not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load competition")
	}

	return helper.JsonOK(c, "", dto.ToCompetitionDetailDTO(comp))
}

// 🗑️ Soft-delete competition (admin)
func (ctrl *CompetitionController) DeleteCompetition(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Model(&model.CompetitionModel{}).
		Where("competition_id = ? AND competition_deleted_at IS NULL", id).
		Update("competition_deleted_at", gorm.Expr("now()"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete competition")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Competition not found")
	}

	return helper.JsonDeleted(c, "Competition deleted", fiber.Map{"id": id})
}
