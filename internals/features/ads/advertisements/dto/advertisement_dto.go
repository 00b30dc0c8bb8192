package dto

import (
	"time"

	"forumlk_backend/internals/features/ads/advertisements/model"
)

// ============================
// Response DTO
// ============================
type AdvertisementDTO struct {
	AdID        string `json:"ad_id"`
	AdTitle     string `json:"ad_title"`
	AdImageURL  string `json:"ad_image_url"`
	AdTargetURL string `json:"ad_target_url"`
	AdPlacement string `json:"ad_placement"`
	AdIsActive  bool   `json:"ad_is_active"`
	AdStartsOn  string `json:"ad_starts_on"`
	AdEndsOn    string `json:"ad_ends_on"`

	AdClickCount      int64 `json:"ad_click_count"`
	AdImpressionCount int64 `json:"ad_impression_count"`

	AdCreatedAt time.Time `json:"ad_created_at"`
	AdUpdatedAt time.Time `json:"ad_updated_at"`
}

// Public shape: no counters, just what the page needs to render.
type PublicAdvertisementDTO struct {
	AdID        string `json:"ad_id"`
	AdTitle     string `json:"ad_title"`
	AdImageURL  string `json:"ad_image_url"`
	AdTargetURL string `json:"ad_target_url"`
	AdPlacement string `json:"ad_placement"`
}

// ============================
// Create / Update Request DTO
// ============================
type CreateAdvertisementRequest struct {
	AdTitle     string `json:"ad_title" validate:"required,min=3,max=255"`
	AdTargetURL string `json:"ad_target_url" validate:"required,url"`
	AdPlacement string `json:"ad_placement" validate:"required,oneof=home sidebar banner footer"`
	AdStartsOn  string `json:"ad_starts_on" validate:"required"` // YYYY-MM-DD
	AdEndsOn    string `json:"ad_ends_on" validate:"required"`   // YYYY-MM-DD
}

type UpdateAdvertisementRequest struct {
	AdTitle     *string `json:"ad_title" validate:"omitempty,min=3,max=255"`
	AdTargetURL *string `json:"ad_target_url" validate:"omitempty,url"`
	AdPlacement *string `json:"ad_placement" validate:"omitempty,oneof=home sidebar banner footer"`
	AdIsActive  *bool   `json:"ad_is_active"`
	AdStartsOn  *string `json:"ad_starts_on"`
	AdEndsOn    *string `json:"ad_ends_on"`
}

// ============================
// Converters
// ============================
func ToAdvertisementDTO(m model.AdvertisementModel) AdvertisementDTO {
	return AdvertisementDTO{
		AdID:              m.AdID,
		AdTitle:           m.AdTitle,
		AdImageURL:        m.AdImageURL,
		AdTargetURL:       m.AdTargetURL,
		AdPlacement:       m.AdPlacement,
		AdIsActive:        m.AdIsActive,
		AdStartsOn:        m.AdStartsOn.Format("2006-01-02"),
		AdEndsOn:          m.AdEndsOn.Format("2006-01-02"),
		AdClickCount:      m.AdClickCount,
		AdImpressionCount: m.AdImpressionCount,
		AdCreatedAt:       m.AdCreatedAt,
		AdUpdatedAt:       m.AdUpdatedAt,
	}
}

func ToPublicAdvertisementDTO(m model.AdvertisementModel) PublicAdvertisementDTO {
	return PublicAdvertisementDTO{
		AdID:        m.AdID,
		AdTitle:     m.AdTitle,
		AdImageURL:  m.AdImageURL,
		AdTargetURL: m.AdTargetURL,
		AdPlacement: m.AdPlacement,
	}
}
