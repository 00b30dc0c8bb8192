package model

import (
	"time"

	"forumlk_backend/internals/features/competitions/registrations/service"
)

type AdvertisementModel struct {
	AdID        string  `gorm:"column:ad_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	AdTitle     string  `gorm:"column:ad_title;type:varchar(255);not null"`
	AdImageURL  string  `gorm:"column:ad_image_url;type:text;not null"`
	AdTargetURL string  `gorm:"column:ad_target_url;type:text;not null"`
	AdPlacement string  `gorm:"column:ad_placement;type:varchar(50);not null;index"`
	AdIsActive  bool    `gorm:"column:ad_is_active;default:true"`

	// Display window, compared by Colombo calendar day (inclusive on both ends)
	AdStartsOn time.Time `gorm:"column:ad_starts_on;type:date;not null"`
	AdEndsOn   time.Time `gorm:"column:ad_ends_on;type:date;not null"`

	AdClickCount      int64 `gorm:"column:ad_click_count;default:0"`
	AdImpressionCount int64 `gorm:"column:ad_impression_count;default:0"`

	AdCreatedAt time.Time  `gorm:"column:ad_created_at;autoCreateTime"`
	AdUpdatedAt time.Time  `gorm:"column:ad_updated_at;autoUpdateTime"`
	AdDeletedAt *time.Time `gorm:"column:ad_deleted_at"`
}

func (AdvertisementModel) TableName() string {
	return "advertisements"
}

// WithinWindow reports whether t falls inside the display window,
// comparing Colombo calendar days only.
func (m AdvertisementModel) WithinWindow(t time.Time) bool {
	return service.CompareCalendarDays(t, m.AdStartsOn) >= 0 &&
		service.CompareCalendarDays(t, m.AdEndsOn) <= 0
}
