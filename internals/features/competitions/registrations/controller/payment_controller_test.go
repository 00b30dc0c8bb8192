package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forumlk_backend/internals/configs"
	"forumlk_backend/internals/features/competitions/registrations/model"
)

func TestOwnsRegistration(t *testing.T) {
	owner := "b7f4a0e2-3c1d-4e5f-9a6b-8c7d0e1f2a3b"
	other := "11111111-2222-3333-4444-555555555555"

	reg := model.RegistrationModel{RegistrationUserID: &owner}
	assert.True(t, ownsRegistration(reg, owner))
	assert.False(t, ownsRegistration(reg, other))

	anonymous := model.RegistrationModel{RegistrationUserID: nil}
	assert.False(t, ownsRegistration(anonymous, owner), "anonymous registrations cannot be checked out")
}

func TestCreateCheckoutRequiresLogin(t *testing.T) {
	prevID, prevSecret := configs.PayHereMerchantID, configs.PayHereMerchantSecret
	configs.PayHereMerchantID = "1211149"
	configs.PayHereMerchantSecret = "secret"
	defer func() {
		configs.PayHereMerchantID, configs.PayHereMerchantSecret = prevID, prevSecret
	}()

	app := fiber.New()
	ctrl := &PaymentController{} // never reaches the DB without a token
	app.Post("/registrations/:number/checkout", ctrl.CreateCheckout)

	req := httptest.NewRequest(fiber.MethodPost, "/registrations/AB23CD/checkout", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
