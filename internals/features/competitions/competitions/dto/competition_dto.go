package dto

import (
	"time"

	"forumlk_backend/internals/features/competitions/competitions/model"
	"forumlk_backend/internals/features/competitions/registrations/service"
)

// ============================
// Response DTO
// ============================
type CompetitionDTO struct {
	CompetitionID          string  `json:"competition_id"`
	CompetitionName        string  `json:"competition_name"`
	CompetitionSlug        string  `json:"competition_slug"`
	CompetitionDescription *string `json:"competition_description"`
	CompetitionYear        int     `json:"competition_year"`
	CompetitionIsOpen      bool    `json:"competition_is_open"`

	CompetitionEarlyBirdStart string `json:"competition_early_bird_start"`
	CompetitionEarlyBirdEnd   string `json:"competition_early_bird_end"`
	CompetitionStandardStart  string `json:"competition_standard_start"`
	CompetitionStandardEnd    string `json:"competition_standard_end"`
	CompetitionLateStart      string `json:"competition_late_start"`
	CompetitionLateEnd        string `json:"competition_late_end"`

	CompetitionCreatedAt time.Time `json:"competition_created_at"`
	CompetitionUpdatedAt time.Time `json:"competition_updated_at"`
}

// CompetitionDetailDTO adds the resolved "as of now" pricing view.
type CompetitionDetailDTO struct {
	CompetitionDTO
	CurrentPeriod service.RegistrationPeriod `json:"current_period"`
	CurrentFees   map[string]int             `json:"current_fees"`
}

// ============================
// Create / Update Request DTO
// ============================
type CreateCompetitionRequest struct {
	CompetitionName        string  `json:"competition_name" validate:"required,min=3,max=255"`
	CompetitionDescription *string `json:"competition_description"`
	CompetitionYear        int     `json:"competition_year" validate:"required,min=2020,max=2100"`

	CompetitionEarlyBirdStart string `json:"competition_early_bird_start" validate:"required"`
	CompetitionEarlyBirdEnd   string `json:"competition_early_bird_end" validate:"required"`
	CompetitionStandardStart  string `json:"competition_standard_start" validate:"required"`
	CompetitionStandardEnd    string `json:"competition_standard_end" validate:"required"`
	CompetitionLateStart      string `json:"competition_late_start" validate:"required"`
	CompetitionLateEnd        string `json:"competition_late_end" validate:"required"`
}

type UpdateCompetitionRequest struct {
	CompetitionName        *string `json:"competition_name" validate:"omitempty,min=3,max=255"`
	CompetitionDescription *string `json:"competition_description"`
	CompetitionIsOpen      *bool   `json:"competition_is_open"`

	CompetitionEarlyBirdStart *string `json:"competition_early_bird_start"`
	CompetitionEarlyBirdEnd   *string `json:"competition_early_bird_end"`
	CompetitionStandardStart  *string `json:"competition_standard_start"`
	CompetitionStandardEnd    *string `json:"competition_standard_end"`
	CompetitionLateStart      *string `json:"competition_late_start"`
	CompetitionLateEnd        *string `json:"competition_late_end"`
}

// ============================
// Converter
// ============================
const boundaryDateFormat = "2006-01-02"

func ToCompetitionDTO(m model.CompetitionModel) CompetitionDTO {
	return CompetitionDTO{
		CompetitionID:          m.CompetitionID,
		CompetitionName:        m.CompetitionName,
		CompetitionSlug:        m.CompetitionSlug,
		CompetitionDescription: m.CompetitionDescription,
		CompetitionYear:        m.CompetitionYear,
		CompetitionIsOpen:      m.CompetitionIsOpen,

		CompetitionEarlyBirdStart: m.CompetitionEarlyBirdStart.Format(boundaryDateFormat),
		CompetitionEarlyBirdEnd:   m.CompetitionEarlyBirdEnd.Format(boundaryDateFormat),
		CompetitionStandardStart:  m.CompetitionStandardStart.Format(boundaryDateFormat),
		CompetitionStandardEnd:    m.CompetitionStandardEnd.Format(boundaryDateFormat),
		CompetitionLateStart:      m.CompetitionLateStart.Format(boundaryDateFormat),
		CompetitionLateEnd:        m.CompetitionLateEnd.Format(boundaryDateFormat),

		CompetitionCreatedAt: m.CompetitionCreatedAt,
		CompetitionUpdatedAt: m.CompetitionUpdatedAt,
	}
}

func ToCompetitionDetailDTO(m model.CompetitionModel) CompetitionDetailDTO {
	period := service.CurrentRegistrationPeriod(m.PeriodBoundaries())
	fees := map[string]int{
		string(service.TypeIndividual): service.CalculateRegistrationPrice(service.TypeIndividual, period),
		string(service.TypeTeam):       service.CalculateRegistrationPrice(service.TypeTeam, period),
		string(service.TypeCompany):    service.CalculateRegistrationPrice(service.TypeCompany, period),
		string(service.TypeStudent):    service.CalculateRegistrationPrice(service.TypeStudent, period),
		string(service.TypeKids):       service.CalculateRegistrationPrice(service.TypeKids, period),
	}
	return CompetitionDetailDTO{
		CompetitionDTO: ToCompetitionDTO(m),
		CurrentPeriod:  period,
		CurrentFees:    fees,
	}
}
