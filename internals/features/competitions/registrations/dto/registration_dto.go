package dto

import (
	"time"

	"forumlk_backend/internals/features/competitions/registrations/model"
)

// ============================
// Response DTO
// ============================
type RegistrationDTO struct {
	RegistrationID            string  `json:"registration_id"`
	RegistrationNumber        string  `json:"registration_number"`
	RegistrationDisplayCode   string  `json:"registration_display_code"`
	RegistrationCompetitionID string  `json:"registration_competition_id"`
	RegistrationType          string  `json:"registration_type"`
	RegistrationPeriod        string  `json:"registration_period"`
	RegistrationPrice         int     `json:"registration_price"`
	RegistrationFullName      string  `json:"registration_full_name"`
	RegistrationEmail         string  `json:"registration_email"`
	RegistrationPhone         *string `json:"registration_phone"`
	RegistrationTeamName      *string `json:"registration_team_name"`
	RegistrationPaymentStatus string  `json:"registration_payment_status"`

	RegistrationCreatedAt time.Time `json:"registration_created_at"`
}

// PublicRegistrationDTO hides contact details; shown on the public lookup.
type PublicRegistrationDTO struct {
	RegistrationNumber        string `json:"registration_number"`
	RegistrationDisplayCode   string `json:"registration_display_code"`
	RegistrationType          string `json:"registration_type"`
	RegistrationPaymentStatus string `json:"registration_payment_status"`
}

// ============================
// Create Request DTO
// ============================
type CreateRegistrationRequest struct {
	CompetitionID        string  `json:"competition_id" validate:"required,uuid"`
	RegistrationType     string  `json:"registration_type" validate:"required,oneof=individual team company student kids"`
	RegistrationFullName string  `json:"registration_full_name" validate:"required,min=2,max=255"`
	RegistrationEmail    string  `json:"registration_email" validate:"required,email"`
	RegistrationPhone    *string `json:"registration_phone" validate:"omitempty,min=7,max=30"`
	RegistrationTeamName *string `json:"registration_team_name" validate:"omitempty,min=2,max=255"`
}

// ============================
// Checkout / payment DTO
// ============================

// CheckoutDTO carries the fields the PayHere checkout form needs.
// Field order and amount formatting follow the gateway's wire contract.
type CheckoutDTO struct {
	MerchantID string `json:"merchant_id"`
	OrderID    string `json:"order_id"`
	Items      string `json:"items"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	Hash       string `json:"hash"`
}

// ============================
// Converter
// ============================
func ToRegistrationDTO(m model.RegistrationModel) RegistrationDTO {
	return RegistrationDTO{
		RegistrationID:            m.RegistrationID,
		RegistrationNumber:        m.RegistrationNumber,
		RegistrationDisplayCode:   m.RegistrationDisplayCode,
		RegistrationCompetitionID: m.RegistrationCompetitionID,
		RegistrationType:          m.RegistrationType,
		RegistrationPeriod:        m.RegistrationPeriod,
		RegistrationPrice:         m.RegistrationPrice,
		RegistrationFullName:      m.RegistrationFullName,
		RegistrationEmail:         m.RegistrationEmail,
		RegistrationPhone:         m.RegistrationPhone,
		RegistrationTeamName:      m.RegistrationTeamName,
		RegistrationPaymentStatus: m.RegistrationPaymentStatus,
		RegistrationCreatedAt:     m.RegistrationCreatedAt,
	}
}

func ToPublicRegistrationDTO(m model.RegistrationModel) PublicRegistrationDTO {
	return PublicRegistrationDTO{
		RegistrationNumber:        m.RegistrationNumber,
		RegistrationDisplayCode:   m.RegistrationDisplayCode,
		RegistrationType:          m.RegistrationType,
		RegistrationPaymentStatus: m.RegistrationPaymentStatus,
	}
}
