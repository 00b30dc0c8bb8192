package model

import (
	"time"

	"forumlk_backend/internals/features/competitions/registrations/service"
)

type CompetitionModel struct {
	CompetitionID          string  `gorm:"column:competition_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	CompetitionName        string  `gorm:"column:competition_name;type:varchar(255);not null"`
	CompetitionSlug        string  `gorm:"column:competition_slug;type:varchar(255);uniqueIndex;not null"`
	CompetitionDescription *string `gorm:"column:competition_description;type:text"`
	CompetitionYear        int     `gorm:"column:competition_year;not null"`
	CompetitionIsOpen      bool    `gorm:"column:competition_is_open;default:true"`

	// Period boundaries are configuration, stored per competition.
	CompetitionEarlyBirdStart time.Time `gorm:"column:competition_early_bird_start;type:date"`
	CompetitionEarlyBirdEnd   time.Time `gorm:"column:competition_early_bird_end;type:date"`
	CompetitionStandardStart  time.Time `gorm:"column:competition_standard_start;type:date"`
	CompetitionStandardEnd    time.Time `gorm:"column:competition_standard_end;type:date"`
	CompetitionLateStart      time.Time `gorm:"column:competition_late_start;type:date"`
	CompetitionLateEnd        time.Time `gorm:"column:competition_late_end;type:date"`

	CompetitionCreatedAt time.Time  `gorm:"column:competition_created_at;autoCreateTime"`
	CompetitionUpdatedAt time.Time  `gorm:"column:competition_updated_at;autoUpdateTime"`
	CompetitionDeletedAt *time.Time `gorm:"column:competition_deleted_at"`
}

func (CompetitionModel) TableName() string {
	return "competitions"
}

// PeriodBoundaries shapes the stored dates for the period resolver.
func (m CompetitionModel) PeriodBoundaries() service.PeriodBoundaries {
	return service.PeriodBoundaries{
		EarlyBirdStart: m.CompetitionEarlyBirdStart,
		EarlyBirdEnd:   m.CompetitionEarlyBirdEnd,
		StandardStart:  m.CompetitionStandardStart,
		StandardEnd:    m.CompetitionStandardEnd,
		LateStart:      m.CompetitionLateStart,
		LateEnd:        m.CompetitionLateEnd,
	}
}
