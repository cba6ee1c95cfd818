package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table. The
// primary key is the caller-supplied device id; the IMEI carries its own
// unique index across all users.
type DeviceModel struct {
	ID        string    `gorm:"type:varchar(64);primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Model     string    `gorm:"type:varchar(100);not null"`
	Storage   string    `gorm:"type:varchar(50);not null"`
	Color     string    `gorm:"type:varchar(50);not null"`
	Condition string    `gorm:"type:varchar(50);not null"`
	Status    string    `gorm:"type:varchar(10);not null;index"`
	IMEI      *string   `gorm:"type:varchar(20);uniqueIndex:idx_devices_imei"`

	PurchaseDate    time.Time `gorm:"not null"`
	PurchasePrice   float64   `gorm:"not null"`
	ShippingBuy     float64   `gorm:"not null;default:0"`
	ShippingBuyDate *time.Time

	RepairCost float64 `gorm:"not null;default:0"`
	RepairDate *time.Time

	SalePrice           *float64
	SalesFees           float64    `gorm:"not null;default:0"`
	SaleDate            *time.Time `gorm:"index"`
	ShippingSell        float64    `gorm:"not null;default:0"`
	ShippingSellDate    *time.Time
	BuyerName           *string `gorm:"type:varchar(100)"`
	PlatformOrderNumber *string `gorm:"type:varchar(100)"`
	SaleInvoiceNumber   *string `gorm:"type:varchar(100)"`

	// No column default here: GORM would swap an explicit false for a
	// parseable default on insert. The usecase applies the default instead.
	IsDiffTax bool    `gorm:"not null"`
	Defects   *string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Documents []DocumentModel `gorm:"foreignKey:DeviceID"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// DocumentModel mirrors the 'documents' table, file metadata attached to a device.
type DocumentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID  string    `gorm:"type:varchar(64);not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Path      string    `gorm:"type:varchar(512);not null"`
	MimeType  string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "documents"
}
