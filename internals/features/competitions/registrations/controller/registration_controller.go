package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	competitionModel "forumlk_backend/internals/features/competitions/competitions/model"
	"forumlk_backend/internals/features/competitions/registrations/dto"
	"forumlk_backend/internals/features/competitions/registrations/model"
	"forumlk_backend/internals/features/competitions/registrations/service"
	helper "forumlk_backend/internals/helpers"
)

type RegistrationController struct {
	DB    *gorm.DB
	Store service.IdentifierStore
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{
		DB:    db,
		Store: model.NewIdentifierStore(db),
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// ➕ Create registration (user)
func (ctrl *RegistrationController) CreateRegistration(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	regType, ok := service.ParseRegistrationType(req.RegistrationType)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown registration type")
	}

	var comp competitionModel.CompetitionModel
	if err := ctrl.DB.First(&comp, "competition_id = ? AND competition_deleted_at IS NULL", req.CompetitionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Competition not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load competition")
	}
	if !comp.CompetitionIsOpen {
		return helper.JsonError(c, fiber.StatusConflict, "Registration is closed for this competition")
	}

	// Snapshot period and price at creation time
	period := service.CurrentRegistrationPeriod(comp.PeriodBoundaries())
	price := service.CalculateRegistrationPrice(regType, period)

	ctx := c.UserContext()
	number, err := service.GenerateUniqueRegistrationNumber(ctx, ctrl.Store, service.DefaultMaxRetries)
	if err != nil {
		if errors.Is(err, service.ErrRetriesExhausted) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Could not allocate a registration number, please retry")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate registration number")
	}

	displayCode, err := service.GenerateUniqueDisplayCode(ctx, ctrl.Store, comp.CompetitionYear, service.DefaultMaxRetries)
	if err != nil {
		if errors.Is(err, service.ErrRetriesExhausted) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Could not allocate a display code, please retry")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate display code")
	}

	uid := userID.String()
	reg := model.RegistrationModel{
		RegistrationNumber:        number,
		RegistrationDisplayCode:   displayCode,
		RegistrationCompetitionID: comp.CompetitionID,
		RegistrationUserID:        &uid,
		RegistrationType:          string(regType),
		RegistrationPeriod:        string(period),
		RegistrationPrice:         price,
		RegistrationFullName:      strings.TrimSpace(req.RegistrationFullName),
		RegistrationEmail:         strings.ToLower(strings.TrimSpace(req.RegistrationEmail)),
		RegistrationPhone:         req.RegistrationPhone,
		RegistrationTeamName:      req.RegistrationTeamName,
		RegistrationPaymentStatus: model.PaymentStatusPending,
	}

	if err := ctrl.DB.WithContext(ctx).Create(&reg).Error; err != nil {
		// the unique index can still fire when two requests draw the same
		// number between the existence check and the insert
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Registration number collision, please retry")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create registration")
	}

	return helper.JsonCreated(c, "Registration created", dto.ToRegistrationDTO(reg))
}

// 🔍 Public lookup by registration number (anonymized)
func (ctrl *RegistrationController) GetRegistrationByNumber(c *fiber.Ctx) error {
	number := strings.ToUpper(strings.TrimSpace(c.Params("number")))

	var reg model.RegistrationModel
	if err := ctrl.DB.First(&reg, "registration_number = ? AND registration_deleted_at IS NULL", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load registration")
	}

	return helper.JsonOK(c, "", dto.ToPublicRegistrationDTO(reg))
}

// 📄 My registrations (user)
func (ctrl *RegistrationController) GetMyRegistrations(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var regs []model.RegistrationModel
	if err := ctrl.DB.
		Where("registration_user_id = ? AND registration_deleted_at IS NULL", userID.String()).
		Order("registration_created_at DESC").
		Find(&regs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve registrations")
	}

	result := make([]dto.RegistrationDTO, 0, len(regs))
	for _, reg := range regs {
		result = append(result, dto.ToRegistrationDTO(reg))
	}

	return helper.JsonOK(c, "", result)
}

// 📄 All registrations (admin, paginated, optional competition filter)
func (ctrl *RegistrationController) GetAllRegistrations(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.RegistrationModel{}).
		Where("registration_deleted_at IS NULL")
	if compID := strings.TrimSpace(c.Query("competition_id")); compID != "" {
		q = q.Where("registration_competition_id = ?", compID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count registrations")
	}

	var regs []model.RegistrationModel
	if err := q.
		Order("registration_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&regs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve registrations")
	}

	result := make([]dto.RegistrationDTO, 0, len(regs))
	for _, reg := range regs {
		result = append(result, dto.ToRegistrationDTO(reg))
	}

	return helper.JsonList(c, "", result, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
