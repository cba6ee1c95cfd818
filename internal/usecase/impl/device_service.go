// Package impl contains the concrete usecase implementations. This layer is
// the single point where repository errors become application errors.
package impl

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/hatzenkracher/ipurchase/internal/domain/entity"
	domainerrors "github.com/hatzenkracher/ipurchase/internal/domain/errors"
	"github.com/hatzenkracher/ipurchase/internal/domain/repository"
	"github.com/hatzenkracher/ipurchase/internal/domain/service"
	"github.com/hatzenkracher/ipurchase/internal/errors"
	"github.com/hatzenkracher/ipurchase/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo   repository.DeviceRepository
	labelService service.LabelService
	logger       *slog.Logger
	now          func() time.Time
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	labelService service.LabelService,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo:   deviceRepo,
		labelService: labelService,
		logger:       logger,
		now:          time.Now,
	}
}

// ListDevices returns the user's devices, optionally filtered by date range
// and status.
func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID, filters *repository.DeviceFilters) ([]*entity.Device, error) {
	if filters != nil && filters.Status != nil && !filters.Status.Valid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	devices, err := s.deviceRepo.FindAll(ctx, userID, filters)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list devices",
			slog.String("userID", userID.String()),
			slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "Fehler beim Laden der Geräte")
	}

	return devices, nil
}

// GetDevice returns a single device with its documents.
func (s *deviceService) GetDevice(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.Device, error) {
	device, err := s.deviceRepo.FindByID(ctx, deviceID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		s.logger.ErrorContext(ctx, "failed to load device",
			slog.String("deviceID", deviceID),
			slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "Fehler beim Laden des Geräts")
	}

	return device, nil
}

// CreateDevice registers a new device. The device id must be unique across
// all users since it doubles as the printed label identifier.
func (s *deviceService) CreateDevice(ctx context.Context, userID uuid.UUID, input *usecase.CreateDeviceInput) (*entity.Device, error) {
	status := entity.StatusStock
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, domainerrors.ErrInvalidStatus
		}
		status = *input.Status
	}

	exists, err := s.deviceRepo.IDExists(ctx, input.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check device id",
			slog.String("deviceID", input.ID),
			slog.Any("error", err))

		return nil, domainerrors.ErrDeviceCreateFailed
	}
	if exists {
		return nil, domainerrors.ErrDeviceIDExists
	}

	device := &entity.Device{
		ID:                  input.ID,
		UserID:              userID,
		Model:               input.Model,
		Storage:             input.Storage,
		Color:               input.Color,
		Condition:           input.Condition,
		Status:              status,
		IMEI:                normalizeIMEI(input.IMEI),
		PurchaseDate:        input.PurchaseDate,
		PurchasePrice:       input.PurchasePrice,
		ShippingBuy:         valueOrZero(input.ShippingBuy),
		ShippingBuyDate:     input.ShippingBuyDate,
		RepairCost:          valueOrZero(input.RepairCost),
		RepairDate:          input.RepairDate,
		SalePrice:           input.SalePrice,
		SalesFees:           valueOrZero(input.SalesFees),
		SaleDate:            input.SaleDate,
		ShippingSell:        valueOrZero(input.ShippingSell),
		ShippingSellDate:    input.ShippingSellDate,
		BuyerName:           input.BuyerName,
		PlatformOrderNumber: input.PlatformOrderNumber,
		SaleInvoiceNumber:   input.SaleInvoiceNumber,
		IsDiffTax:           input.IsDiffTax == nil || *input.IsDiffTax,
		Defects:             input.Defects,
	}

	if err := s.deviceRepo.Create(ctx, device); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateIMEI):
			return nil, domainerrors.ErrIMEIExists
		case errors.Is(err, repository.ErrDuplicateDeviceID):
			// The pre-check raced a concurrent insert.
			return nil, domainerrors.ErrDeviceIDExists
		default:
			s.logger.ErrorContext(ctx, "failed to create device",
				slog.String("deviceID", input.ID),
				slog.Any("error", err))

			return nil, domainerrors.ErrDeviceCreateFailed
		}
	}

	s.logger.InfoContext(ctx, "device created",
		slog.String("deviceID", device.ID),
		slog.String("userID", userID.String()),
		slog.String("status", string(device.Status)))

	return device, nil
}

// UpdateDevice applies a merge patch. Moving a device into SOLD stamps the
// sale date with the current time unless the device already has one or the
// patch sets it explicitly.
func (s *deviceService) UpdateDevice(ctx context.Context, userID uuid.UUID, deviceID string, patch *entity.DevicePatch) (*entity.Device, error) {
	if status, ok := patch.Status.Get(); ok && !status.Valid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	if imei, ok := patch.IMEI.Get(); ok {
		patch.IMEI = entity.Set(normalizeIMEI(imei))
	}

	current, err := s.deviceRepo.FindByID(ctx, deviceID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		s.logger.ErrorContext(ctx, "failed to load device for update",
			slog.String("deviceID", deviceID),
			slog.Any("error", err))

		return nil, domainerrors.ErrDeviceUpdateFailed
	}

	if status, ok := patch.Status.Get(); ok &&
		status == entity.StatusSold &&
		current.Status != entity.StatusSold &&
		current.SaleDate == nil &&
		!patch.SaleDate.IsSet() {
		now := s.now()
		patch.SaleDate = entity.Set(&now)
	}

	updated, err := s.deviceRepo.UpdateFields(ctx, deviceID, userID, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDeviceNotFound):
			return nil, domainerrors.ErrDeviceNotFound
		case errors.Is(err, repository.ErrDuplicateIMEI):
			return nil, domainerrors.ErrIMEIExists
		default:
			s.logger.ErrorContext(ctx, "failed to update device",
				slog.String("deviceID", deviceID),
				slog.Any("error", err))

			return nil, domainerrors.ErrDeviceUpdateFailed
		}
	}

	return updated, nil
}

// UpdateStatus moves a device to a new status. Unlike UpdateDevice this
// stamps the sale date on any move to SOLD where none is recorded, even when
// the device was already SOLD.
func (s *deviceService) UpdateStatus(ctx context.Context, userID uuid.UUID, deviceID string, status entity.DeviceStatus) (*entity.Device, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	current, err := s.deviceRepo.FindByID(ctx, deviceID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		s.logger.ErrorContext(ctx, "failed to load device for status update",
			slog.String("deviceID", deviceID),
			slog.Any("error", err))

		return nil, domainerrors.ErrStatusUpdateFailed
	}

	patch := &entity.DevicePatch{Status: entity.Set(status)}
	if status == entity.StatusSold && current.SaleDate == nil {
		now := s.now()
		patch.SaleDate = entity.Set(&now)
	}

	updated, err := s.deviceRepo.UpdateFields(ctx, deviceID, userID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		s.logger.ErrorContext(ctx, "failed to update device status",
			slog.String("deviceID", deviceID),
			slog.String("status", string(status)),
			slog.Any("error", err))

		return nil, domainerrors.ErrStatusUpdateFailed
	}

	s.logger.InfoContext(ctx, "device status updated",
		slog.String("deviceID", deviceID),
		slog.String("status", string(status)))

	return updated, nil
}

// DeleteDevice removes a device and its documents.
func (s *deviceService) DeleteDevice(ctx context.Context, userID uuid.UUID, deviceID string) error {
	if err := s.deviceRepo.Delete(ctx, deviceID, userID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		s.logger.ErrorContext(ctx, "failed to delete device",
			slog.String("deviceID", deviceID),
			slog.Any("error", err))

		return domainerrors.ErrDeviceDeleteFailed
	}

	s.logger.InfoContext(ctx, "device deleted",
		slog.String("deviceID", deviceID),
		slog.String("userID", userID.String()))

	return nil
}

// GetStats returns per-status counts for the user's inventory.
func (s *deviceService) GetStats(ctx context.Context, userID uuid.UUID) (*entity.DeviceStats, error) {
	stats := &entity.DeviceStats{}

	counts := []struct {
		status entity.DeviceStatus
		target *int64
	}{
		{entity.StatusStock, &stats.Stock},
		{entity.StatusRepair, &stats.Repair},
		{entity.StatusSold, &stats.Sold},
	}

	for _, c := range counts {
		count, err := s.deviceRepo.CountByStatus(ctx, userID, c.status)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to count devices",
				slog.String("status", string(c.status)),
				slog.Any("error", err))

			return nil, domainerrors.NewDatabaseExecuteError(err, "Fehler beim Laden der Statistik")
		}
		*c.target = count
	}

	stats.Total = stats.Stock + stats.Repair + stats.Sold

	return stats, nil
}

// GenerateLabel renders the device's QR label as PNG.
func (s *deviceService) GenerateLabel(ctx context.Context, userID uuid.UUID, deviceID string) ([]byte, error) {
	device, err := s.GetDevice(ctx, userID, deviceID)
	if err != nil {
		return nil, err
	}

	png, err := s.labelService.GenerateDeviceLabel(device)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to generate device label",
			slog.String("deviceID", deviceID),
			slog.Any("error", err))

		return nil, domainerrors.NewBaseError(http.StatusInternalServerError,
			"LABEL_GENERATION_FAILED", "Fehler beim Erstellen des Etiketts", err.Error())
	}

	return png, nil
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}

// normalizeIMEI treats an empty string as no IMEI at all. Storing "" would
// occupy the unique index and block every later device without an IMEI.
func normalizeIMEI(imei *string) *string {
	if imei == nil || *imei == "" {
		return nil
	}

	return imei
}
