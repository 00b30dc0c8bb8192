package model

import (
	"context"

	"gorm.io/gorm"
)

// GormIdentifierStore backs the identifier generators' existence checks with
// the registrations and orders tables. It implements the narrow store
// interface in the service package so the generators stay ORM-free.
type GormIdentifierStore struct {
	DB *gorm.DB
}

func NewIdentifierStore(db *gorm.DB) *GormIdentifierStore {
	return &GormIdentifierStore{DB: db}
}

func (s *GormIdentifierStore) RegistrationNumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&RegistrationModel{}).
		Where("registration_number = ?", number).
		Count(&count).Error
	return count > 0, err
}

func (s *GormIdentifierStore) DisplayCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&RegistrationModel{}).
		Where("registration_display_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

// OrderCountForPrefix counts year-scoped orders. Callers derive the next
// sequence from this count, which is a read-then-write race; the timestamp
// suffix on the generated order ID keeps collisions unlikely, and the
// unique index on order_code catches the rest.
func (s *GormIdentifierStore) OrderCountForPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&OrderModel{}).
		Where("order_code LIKE ?", prefix+"%").
		Count(&count).Error
	return count, err
}
