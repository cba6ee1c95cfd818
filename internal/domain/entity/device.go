package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceStatus is the lifecycle state of a device.
// Transitions are unrestricted; there is no terminal state. A sold device
// can return to stock, its sale date is never cleared automatically.
type DeviceStatus string

const (
	StatusStock  DeviceStatus = "STOCK"
	StatusRepair DeviceStatus = "REPAIR"
	StatusSold   DeviceStatus = "SOLD"
)

// Valid reports whether s is one of the known statuses.
func (s DeviceStatus) Valid() bool {
	switch s {
	case StatusStock, StatusRepair, StatusSold:
		return true
	}

	return false
}

// Device is a tracked inventory unit (phone) with purchase, repair and sale
// lifecycle fields. The ID is caller-supplied and globally unique, as is the
// IMEI when present. Every device belongs to exactly one user.
type Device struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Model     string    `json:"model"`
	Storage   string    `json:"storage"`
	Color     string    `json:"color"`
	Condition string    `json:"condition"`

	Status DeviceStatus `json:"status"`
	IMEI   *string      `json:"imei"`

	PurchaseDate    time.Time  `json:"purchase_date"`
	PurchasePrice   float64    `json:"purchase_price"`
	ShippingBuy     float64    `json:"shipping_buy"`
	ShippingBuyDate *time.Time `json:"shipping_buy_date"`

	RepairCost float64    `json:"repair_cost"`
	RepairDate *time.Time `json:"repair_date"`

	SalePrice           *float64   `json:"sale_price"`
	SalesFees           float64    `json:"sales_fees"`
	SaleDate            *time.Time `json:"sale_date"`
	ShippingSell        float64    `json:"shipping_sell"`
	ShippingSellDate    *time.Time `json:"shipping_sell_date"`
	BuyerName           *string    `json:"buyer_name"`
	PlatformOrderNumber *string    `json:"platform_order_number"`
	SaleInvoiceNumber   *string    `json:"sale_invoice_number"`

	// IsDiffTax marks the device as sold under differential taxation (§25a UStG).
	IsDiffTax bool    `json:"is_diff_tax"`
	Defects   *string `json:"defects"`

	Documents []Document `json:"documents,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Document is a file attached to a device, e.g. a purchase or sale invoice.
// Only the metadata lives here; blob storage is outside the core.
type Document struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  string    `json:"device_id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
}

// DeviceStats are per-user device counts grouped by status.
type DeviceStats struct {
	Total  int64 `json:"total"`
	Stock  int64 `json:"stock"`
	Repair int64 `json:"repair"`
	Sold   int64 `json:"sold"`
}
