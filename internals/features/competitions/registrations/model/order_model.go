package model

import (
	"time"

	"gorm.io/datatypes"
)

// Order status values, mapped from PayHere notify status codes.
const (
	OrderStatusPending     = "pending"
	OrderStatusPaid        = "paid"
	OrderStatusCanceled    = "canceled"
	OrderStatusFailed      = "failed"
	OrderStatusChargedback = "chargedback"
)

type OrderModel struct {
	OrderID             string `gorm:"column:order_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderCode           string `gorm:"column:order_code;type:varchar(40);uniqueIndex;not null"`
	OrderRegistrationID string `gorm:"column:order_registration_id;type:uuid;not null"`

	OrderAmount   int    `gorm:"column:order_amount;not null"`
	OrderCurrency string `gorm:"column:order_currency;type:varchar(3);default:'LKR'"`
	OrderStatus   string `gorm:"column:order_status;type:varchar(20);default:'pending'"`

	// Last raw notify payload from the gateway, kept for dispute handling.
	OrderRawPayload datatypes.JSON `gorm:"column:order_raw_payload;type:jsonb"`

	OrderPaidAt    *time.Time `gorm:"column:order_paid_at"`
	OrderCreatedAt time.Time  `gorm:"column:order_created_at;autoCreateTime"`
	OrderUpdatedAt time.Time  `gorm:"column:order_updated_at;autoUpdateTime"`

	// Relations
	Registration *RegistrationModel `gorm:"foreignKey:OrderRegistrationID"`
}

func (OrderModel) TableName() string {
	return "competition_orders"
}
