// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"github.com/hatzenkracher/ipurchase/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device does not exist or is not
	// owned by the requesting user. The two cases are deliberately
	// indistinguishable so foreign device ids cannot be enumerated.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDeviceID is returned when the caller-supplied device id is taken.
	ErrDuplicateDeviceID = errors.New("device id already exists")
	// ErrDuplicateIMEI is returned when the IMEI is already registered.
	ErrDuplicateIMEI = errors.New("imei already exists")
)

// DateField selects which date column a range filter applies to.
type DateField string

const (
	DateFieldPurchase DateField = "purchaseDate"
	DateFieldSale     DateField = "saleDate"
)

// DeviceFilters narrows FindAll results. The date range is inclusive; DateTo
// covers the full given day (through 23:59:59.999). Filtering on the sale
// date excludes devices that have none.
type DeviceFilters struct {
	DateFrom *time.Time
	DateTo   *time.Time
	DateType DateField
	Status   *entity.DeviceStatus
}

// DeviceRepository defines the interface for device persistence. Every
// operation is scoped to the owning user, except IDExists which backs the
// global uniqueness check at creation.
type DeviceRepository interface {
	// FindAll returns the user's devices, newest created first.
	FindAll(ctx context.Context, userID uuid.UUID, filters *DeviceFilters) ([]*entity.Device, error)

	// FindByID returns the device with its documents, or ErrDeviceNotFound.
	FindByID(ctx context.Context, deviceID string, userID uuid.UUID) (*entity.Device, error)

	// Create inserts a new device row owned by device.UserID.
	Create(ctx context.Context, device *entity.Device) error

	// UpdateFields re-verifies ownership, applies only the set patch fields
	// and returns the updated device.
	UpdateFields(ctx context.Context, deviceID string, userID uuid.UUID, patch *entity.DevicePatch) (*entity.Device, error)

	// Delete removes the device after the same ownership re-check.
	Delete(ctx context.Context, deviceID string, userID uuid.UUID) error

	// IDExists checks device id existence across all users.
	IDExists(ctx context.Context, id string) (bool, error)

	// CountByStatus counts the user's devices in the given status.
	CountByStatus(ctx context.Context, userID uuid.UUID, status entity.DeviceStatus) (int64, error)
}
