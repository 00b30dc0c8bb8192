package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserModel struct {
	ID       uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserName string    `gorm:"column:user_name;type:varchar(50);not null" json:"user_name"`
	FullName *string   `gorm:"column:full_name;type:varchar(100)" json:"full_name"`
	Email    string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Role     string    `gorm:"column:role;type:varchar(20);default:'user';not null" json:"role"`
	IsActive bool      `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetPassword hashes and stores the plaintext password.
func (u *UserModel) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword compares a plaintext password against the stored hash.
func (u *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
