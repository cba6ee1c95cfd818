package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanySettingsModel mirrors the 'company_settings' table, one row per user.
type CompanySettingsModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName string    `gorm:"type:varchar(150);not null"`
	OwnerName   string    `gorm:"type:varchar(100);not null"`
	Street      string    `gorm:"type:varchar(150);not null"`
	HouseNumber string    `gorm:"type:varchar(20);not null"`
	PostalCode  string    `gorm:"type:varchar(20);not null"`
	City        string    `gorm:"type:varchar(100);not null"`
	Country     string    `gorm:"type:varchar(100);not null"`
	VatID       *string   `gorm:"type:varchar(50)"`
	TaxID       *string   `gorm:"type:varchar(50)"`
	Email       string    `gorm:"type:varchar(255);not null"`
	Phone       *string   `gorm:"type:varchar(50)"`
	LogoPath    *string   `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanySettingsModel) TableName() string {
	return "company_settings"
}
