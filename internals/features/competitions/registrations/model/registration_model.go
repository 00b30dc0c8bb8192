package model

import (
	"time"

	CompetitionModel "forumlk_backend/internals/features/competitions/competitions/model"
)

// Payment status lifecycle for a registration.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusExpired  = "expired"
	PaymentStatusCanceled = "canceled"
)

type RegistrationModel struct {
	RegistrationID            string `gorm:"column:registration_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	RegistrationNumber        string `gorm:"column:registration_number;type:varchar(6);uniqueIndex;not null"`
	RegistrationDisplayCode   string `gorm:"column:registration_display_code;type:varchar(20);uniqueIndex;not null"`
	RegistrationCompetitionID string `gorm:"column:registration_competition_id;type:uuid;not null"`
	RegistrationUserID        *string `gorm:"column:registration_user_id;type:uuid"`

	RegistrationType   string `gorm:"column:registration_type;type:varchar(20);not null"`
	// Period and price are snapshots taken at creation; re-evaluating the
	// same registration later may yield a different current price.
	RegistrationPeriod string `gorm:"column:registration_period;type:varchar(20);not null"`
	RegistrationPrice  int    `gorm:"column:registration_price;not null"`

	RegistrationFullName string  `gorm:"column:registration_full_name;type:varchar(255);not null"`
	RegistrationEmail    string  `gorm:"column:registration_email;type:varchar(255);not null"`
	RegistrationPhone    *string `gorm:"column:registration_phone;type:varchar(30)"`
	RegistrationTeamName *string `gorm:"column:registration_team_name;type:varchar(255)"`

	RegistrationPaymentStatus string `gorm:"column:registration_payment_status;type:varchar(20);default:'pending'"`

	RegistrationCreatedAt time.Time  `gorm:"column:registration_created_at;autoCreateTime"`
	RegistrationUpdatedAt time.Time  `gorm:"column:registration_updated_at;autoUpdateTime"`
	RegistrationDeletedAt *time.Time `gorm:"column:registration_deleted_at"`

	// Relations
	Competition *CompetitionModel.CompetitionModel `gorm:"foreignKey:RegistrationCompetitionID"`
}

func (RegistrationModel) TableName() string {
	return "competition_registrations"
}
