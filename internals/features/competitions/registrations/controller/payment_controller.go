package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"forumlk_backend/internals/configs"
	"forumlk_backend/internals/features/competitions/registrations/dto"
	"forumlk_backend/internals/features/competitions/registrations/model"
	"forumlk_backend/internals/features/competitions/registrations/service"
	helper "forumlk_backend/internals/helpers"
)

type PaymentController struct {
	DB    *gorm.DB
	Store service.IdentifierStore
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:    db,
		Store: model.NewIdentifierStore(db),
	}
}

// ownsRegistration: checkout is owner-only; anonymous registrations
// (nil user) cannot be paid through the user surface at all.
func ownsRegistration(reg model.RegistrationModel, userID string) bool {
	return reg.RegistrationUserID != nil && *reg.RegistrationUserID == userID
}

// 💳 Create checkout for a pending registration (user)
func (ctrl *PaymentController) CreateCheckout(c *fiber.Ctx) error {
	if configs.PayHereMerchantID == "" || configs.PayHereMerchantSecret == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Payments are not configured")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	number := strings.ToUpper(strings.TrimSpace(c.Params("number")))

	var reg model.RegistrationModel
	if err := ctrl.DB.Preload("Competition").
		First(&reg, "registration_number = ? AND registration_deleted_at IS NULL", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load registration")
	}
	if !ownsRegistration(reg, userID.String()) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the registration owner can open a checkout")
	}
	if reg.RegistrationPaymentStatus == model.PaymentStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "Registration is already paid")
	}

	year := 0
	if reg.Competition != nil {
		year = reg.Competition.CompetitionYear
	}

	ctx := c.UserContext()
	orderCode, err := service.NextOrderID(ctx, ctrl.Store, year)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to allocate order ID")
	}

	order := model.OrderModel{
		OrderCode:           orderCode,
		OrderRegistrationID: reg.RegistrationID,
		OrderAmount:         reg.RegistrationPrice,
		OrderCurrency:       "LKR",
		OrderStatus:         model.OrderStatusPending,
	}
	if err := ctrl.DB.WithContext(ctx).Create(&order).Error; err != nil {
		// sequence race lost despite the timestamp suffix
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Order ID collision, please retry")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create order")
	}

	amount := service.FormatAmount(order.OrderAmount)
	checkout := dto.CheckoutDTO{
		MerchantID: configs.PayHereMerchantID,
		OrderID:    order.OrderCode,
		Items:      fmt.Sprintf("Registration %s", reg.RegistrationNumber),
		Amount:     amount,
		Currency:   order.OrderCurrency,
		Hash: service.GeneratePayHereHash(
			configs.PayHereMerchantID,
			order.OrderCode,
			amount,
			order.OrderCurrency,
			configs.PayHereMerchantSecret,
		),
	}

	return helper.JsonCreated(c, "Checkout created", checkout)
}

// 🔔 PayHere notify webhook (public, signature-verified)
func (ctrl *PaymentController) PayHereNotify(c *fiber.Ctx) error {
	merchantID := c.FormValue("merchant_id")
	orderCode := c.FormValue("order_id")
	amount := c.FormValue("payhere_amount")
	currency := c.FormValue("payhere_currency")
	statusCode := c.FormValue("status_code")
	md5sig := c.FormValue("md5sig")

	if orderCode == "" || statusCode == "" || md5sig == "" {
		log.Printf("[ERROR] payhere notify: incomplete payload order=%q status=%q", orderCode, statusCode)
		return helper.JsonError(c, fiber.StatusBadRequest, "Incomplete notification")
	}

	// false means reject the payment, not retry
	if !service.VerifyPayHereSignature(merchantID, orderCode, amount, currency, statusCode, configs.PayHereMerchantSecret, md5sig) {
		log.Printf("[ERROR] payhere notify: bad signature order=%s", orderCode)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid signature")
	}

	var order model.OrderModel
	if err := ctrl.DB.First(&order, "order_code = ?", orderCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Order not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load order")
	}

	// keep the raw payload for dispute handling
	payload := map[string]string{
		"merchant_id":      merchantID,
		"order_id":         orderCode,
		"payment_id":       c.FormValue("payment_id"),
		"payhere_amount":   amount,
		"payhere_currency": currency,
		"status_code":      statusCode,
		"status_message":   c.FormValue("status_message"),
		"method":           c.FormValue("method"),
	}
	if raw, err := sonic.Marshal(payload); err == nil {
		order.OrderRawPayload = raw
	}

	regStatus := ""
	switch statusCode {
	case service.PayHereStatusSuccess:
		now := time.Now()
		order.OrderStatus = model.OrderStatusPaid
		order.OrderPaidAt = &now
		regStatus = model.PaymentStatusPaid
	case service.PayHereStatusPending:
		order.OrderStatus = model.OrderStatusPending
	case service.PayHereStatusCanceled:
		order.OrderStatus = model.OrderStatusCanceled
		regStatus = model.PaymentStatusCanceled
	case service.PayHereStatusFailed:
		order.OrderStatus = model.OrderStatusFailed
	case service.PayHereStatusChargedback:
		order.OrderStatus = model.OrderStatusChargedback
	default:
		log.Printf("[INFO] payhere notify: unhandled status %s for order %s", statusCode, orderCode)
	}

	if err := ctrl.DB.Save(&order).Error; err != nil {
		log.Printf("[ERROR] payhere notify: failed to save order %s: %v", orderCode, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record payment status")
	}

	if regStatus != "" {
		if err := ctrl.DB.Model(&model.RegistrationModel{}).
			Where("registration_id = ?", order.OrderRegistrationID).
			Update("registration_payment_status", regStatus).Error; err != nil {
			log.Printf("[ERROR] payhere notify: failed to update registration %s: %v", order.OrderRegistrationID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update registration")
		}
	}

	return helper.JsonOK(c, "Notification processed", fiber.Map{"order_id": orderCode, "status": order.OrderStatus})
}
