// Package usecase defines the application's business operation contracts.
package usecase

import (
	"context"
	"time"

	"github.com/hatzenkracher/ipurchase/internal/domain/entity"
	"github.com/hatzenkracher/ipurchase/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateDeviceInput carries the fields accepted when registering a device.
// Repair and sale details may be supplied up front, so a device that was
// already repaired or sold can be entered after the fact in one call.
type CreateDeviceInput struct {
	ID              string               `json:"id" validate:"required,max=64"`
	Model           string               `json:"model" validate:"required,max=100"`
	Storage         string               `json:"storage" validate:"required,max=50"`
	Color           string               `json:"color" validate:"required,max=50"`
	Condition       string               `json:"condition" validate:"required,max=50"`
	Status          *entity.DeviceStatus `json:"status"`
	IMEI            *string              `json:"imei" validate:"omitempty,max=50"`
	PurchaseDate    time.Time            `json:"purchase_date" validate:"required"`
	PurchasePrice   float64              `json:"purchase_price" validate:"gte=0"`
	ShippingBuy     *float64             `json:"shipping_buy" validate:"omitempty,gte=0"`
	ShippingBuyDate *time.Time           `json:"shipping_buy_date"`

	RepairCost *float64   `json:"repair_cost" validate:"omitempty,gte=0"`
	RepairDate *time.Time `json:"repair_date"`

	SalePrice           *float64   `json:"sale_price" validate:"omitempty,gte=0"`
	SalesFees           *float64   `json:"sales_fees" validate:"omitempty,gte=0"`
	SaleDate            *time.Time `json:"sale_date"`
	ShippingSell        *float64   `json:"shipping_sell" validate:"omitempty,gte=0"`
	ShippingSellDate    *time.Time `json:"shipping_sell_date"`
	BuyerName           *string    `json:"buyer_name" validate:"omitempty,max=100"`
	PlatformOrderNumber *string    `json:"platform_order_number" validate:"omitempty,max=100"`
	SaleInvoiceNumber   *string    `json:"sale_invoice_number" validate:"omitempty,max=100"`

	IsDiffTax *bool   `json:"is_diff_tax"`
	Defects   *string `json:"defects"`
}

// DeviceUsecase defines the inventory operations. Every operation is scoped
// to the acting user; a device owned by someone else behaves as nonexistent.
type DeviceUsecase interface {
	// ListDevices returns the user's devices, optionally filtered.
	ListDevices(ctx context.Context, userID uuid.UUID, filters *repository.DeviceFilters) ([]*entity.Device, error)

	// GetDevice returns a single device with its documents.
	GetDevice(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.Device, error)

	// CreateDevice registers a new device in the user's inventory.
	CreateDevice(ctx context.Context, userID uuid.UUID, input *CreateDeviceInput) (*entity.Device, error)

	// UpdateDevice applies a merge patch to a device.
	UpdateDevice(ctx context.Context, userID uuid.UUID, deviceID string, patch *entity.DevicePatch) (*entity.Device, error)

	// UpdateStatus moves a device to a new lifecycle status.
	UpdateStatus(ctx context.Context, userID uuid.UUID, deviceID string, status entity.DeviceStatus) (*entity.Device, error)

	// DeleteDevice removes a device and its documents.
	DeleteDevice(ctx context.Context, userID uuid.UUID, deviceID string) error

	// GetStats returns per-status counts for the user's inventory.
	GetStats(ctx context.Context, userID uuid.UUID) (*entity.DeviceStats, error)

	// GenerateLabel renders a printable QR label for a device.
	GenerateLabel(ctx context.Context, userID uuid.UUID, deviceID string) ([]byte, error)
}
