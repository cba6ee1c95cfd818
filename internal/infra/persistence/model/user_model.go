package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username  string    `gorm:"type:varchar(100);unique;not null"`
	Password  string    `gorm:"type:varchar(255);not null"` // bcrypt hash
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     *string   `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Devices         []DeviceModel         `gorm:"foreignKey:UserID"`
	CompanySettings *CompanySettingsModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
