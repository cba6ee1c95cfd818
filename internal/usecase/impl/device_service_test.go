package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hatzenkracher/ipurchase/internal/domain/entity"
	domainerrors "github.com/hatzenkracher/ipurchase/internal/domain/errors"
	"github.com/hatzenkracher/ipurchase/internal/domain/repository"
	mocksrepo "github.com/hatzenkracher/ipurchase/internal/mocks/repository"
	mocksservice "github.com/hatzenkracher/ipurchase/internal/mocks/service"
	"github.com/hatzenkracher/ipurchase/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func newTestDeviceService(t *testing.T) (*deviceService, *mocksrepo.MockDeviceRepository, *mocksservice.MockLabelService) {
	t.Helper()

	deviceRepo := mocksrepo.NewMockDeviceRepository(t)
	labelService := mocksservice.NewMockLabelService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := &deviceService{
		deviceRepo:   deviceRepo,
		labelService: labelService,
		logger:       logger,
		now:          func() time.Time { return testNow },
	}

	return svc, deviceRepo, labelService
}

func stockDevice(userID uuid.UUID) *entity.Device {
	return &entity.Device{
		ID:            "IP13-0001",
		UserID:        userID,
		Model:         "iPhone 13",
		Storage:       "128GB",
		Color:         "Mitternacht",
		Condition:     "Gut",
		Status:        entity.StatusStock,
		PurchaseDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PurchasePrice: 320,
		IsDiffTax:     true,
	}
}

func TestCreateDevice(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)

		deviceRepo.EXPECT().IDExists(mock.Anything, "IP13-0001").Return(false, nil)
		deviceRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(d *entity.Device) bool {
			return d.Status == entity.StatusStock &&
				d.IsDiffTax &&
				d.ShippingBuy == 0 &&
				d.RepairCost == 0 &&
				d.SalesFees == 0 &&
				d.ShippingSell == 0 &&
				d.UserID == userID
		})).Return(nil)

		device, err := svc.CreateDevice(context.Background(), userID, &usecase.CreateDeviceInput{
			ID:            "IP13-0001",
			Model:         "iPhone 13",
			Storage:       "128GB",
			Color:         "Mitternacht",
			Condition:     "Gut",
			PurchaseDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			PurchasePrice: 320,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusStock, device.Status)
		assert.True(t, device.IsDiffTax)
	})

	t.Run("keeps explicit is_diff_tax false", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)

		isDiffTax := false
		deviceRepo.EXPECT().IDExists(mock.Anything, "IP13-0002").Return(false, nil)
		deviceRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(d *entity.Device) bool {
			return !d.IsDiffTax
		})).Return(nil)

		device, err := svc.CreateDevice(context.Background(), userID, &usecase.CreateDeviceInput{
			ID:           "IP13-0002",
			Model:        "iPhone 13",
			Storage:      "128GB",
			Color:        "Blau",
			Condition:    "Gut",
			PurchaseDate: testNow,
			IsDiffTax:    &isDiffTax,
		})

		require.NoError(t, err)
		assert.False(t, device.IsDiffTax)
	})

	t.Run("accepts sale and repair details up front", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)

		sold := entity.StatusSold
		salePrice := 549.0
		salesFees := 27.45
		shippingSell := 5.99
		saleDate := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
		repairDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		buyer := "Max Mustermann"
		orderNumber := "EBAY-4711"
		invoiceNumber := "RE-2025-019"

		deviceRepo.EXPECT().IDExists(mock.Anything, "IP13-0005").Return(false, nil)
		deviceRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(d *entity.Device) bool {
			return d.Status == entity.StatusSold &&
				d.SalePrice != nil && *d.SalePrice == salePrice &&
				d.SalesFees == salesFees &&
				d.ShippingSell == shippingSell &&
				d.SaleDate != nil && d.SaleDate.Equal(saleDate) &&
				d.RepairDate != nil && d.RepairDate.Equal(repairDate) &&
				d.BuyerName != nil && *d.BuyerName == buyer &&
				d.PlatformOrderNumber != nil && *d.PlatformOrderNumber == orderNumber &&
				d.SaleInvoiceNumber != nil && *d.SaleInvoiceNumber == invoiceNumber
		})).Return(nil)

		device, err := svc.CreateDevice(context.Background(), userID, &usecase.CreateDeviceInput{
			ID:                  "IP13-0005",
			Model:               "iPhone 13",
			Storage:             "128GB",
			Color:               "Mitternacht",
			Condition:           "Gut",
			Status:              &sold,
			PurchaseDate:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			PurchasePrice:       320,
			RepairDate:          &repairDate,
			SalePrice:           &salePrice,
			SalesFees:           &salesFees,
			SaleDate:            &saleDate,
			ShippingSell:        &shippingSell,
			BuyerName:           &buyer,
			PlatformOrderNumber: &orderNumber,
			SaleInvoiceNumber:   &invoiceNumber,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusSold, device.Status)
		require.NotNil(t, device.SaleDate)
		assert.True(t, device.SaleDate.Equal(saleDate))
	})

	t.Run("empty imei is stored as missing", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)

		empty := ""
		deviceRepo.EXPECT().IDExists(mock.Anything, "IP13-0006").Return(false, nil)
		deviceRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(d *entity.Device) bool {
			return d.IMEI == nil
		})).Return(nil)

		device, err := svc.CreateDevice(context.Background(), userID, &usecase.CreateDeviceInput{
			ID:           "IP13-0006",
			Model:        "iPhone 13",
			Storage:      "128GB",
			Color:        "Mitternacht",
			Condition:    "Gut",
			PurchaseDate: testNow,
			IMEI:         &empty,
		})

		require.NoError(t, err)
		assert.Nil(t, device.IMEI)
	})

	t.Run("rejects duplicate device id", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)

		deviceRepo.EXPECT().IDExists(mock.Anything, "IP13-0001").Return(true, nil)

		_, err := svc.CreateDevice(context.Background(), userID, &usecase.CreateDeviceInput{
			ID:           "IP13-0001",
			Model:        "iPhone 13",
			Storage:      "128GB",
			Color:        "Mitternacht",
			Condition:    "Gut",
			PurchaseDate: testNow,
		})

		assert.ErrorIs(t, err, domainerrors.ErrDeviceIDExists)
	})

	t.Run("duplicate id race during insert", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)

		deviceRepo.EXPECT().IDExists(mock.Anything, "IP13-0001").Return(false, nil)
		deviceRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateDeviceID)

		_, err := svc.CreateDevice(context.Background(), userID, &usecase.CreateDeviceInput{
			ID:           "IP13-0001",
			Model:        "iPhone 13",
			Storage:      "128GB",
			Color:        "Mitternacht",
			Condition:    "Gut",
			PurchaseDate: testNow,
		})

		assert.ErrorIs(t, err, domainerrors.ErrDeviceIDExists)
	})

	t.Run("rejects duplicate imei", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)

		imei := "356938035643809"
		deviceRepo.EXPECT().IDExists(mock.Anything, "IP13-0003").Return(false, nil)
		deviceRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateIMEI)

		_, err := svc.CreateDevice(context.Background(), userID, &usecase.CreateDeviceInput{
			ID:           "IP13-0003",
			Model:        "iPhone 13",
			Storage:      "128GB",
			Color:        "Mitternacht",
			Condition:    "Gut",
			PurchaseDate: testNow,
			IMEI:         &imei,
		})

		assert.ErrorIs(t, err, domainerrors.ErrIMEIExists)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestDeviceService(t)

		bogus := entity.DeviceStatus("BROKEN")
		_, err := svc.CreateDevice(context.Background(), userID, &usecase.CreateDeviceInput{
			ID:           "IP13-0004",
			Model:        "iPhone 13",
			Storage:      "128GB",
			Color:        "Mitternacht",
			Condition:    "Gut",
			PurchaseDate: testNow,
			Status:       &bogus,
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})
}

func TestUpdateDeviceSaleDateStamping(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("stamps sale date on move to sold", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)
		current := stockDevice(userID)

		deviceRepo.EXPECT().FindByID(mock.Anything, current.ID, userID).Return(current, nil)
		deviceRepo.EXPECT().UpdateFields(mock.Anything, current.ID, userID, mock.MatchedBy(func(p *entity.DevicePatch) bool {
			saleDate, ok := p.SaleDate.Get()
			return ok && saleDate != nil && saleDate.Equal(testNow)
		})).Return(current, nil)

		patch := &entity.DevicePatch{Status: entity.Set(entity.StatusSold)}
		_, err := svc.UpdateDevice(context.Background(), userID, current.ID, patch)

		require.NoError(t, err)
	})

	t.Run("explicit sale date wins", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)
		current := stockDevice(userID)
		explicit := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

		deviceRepo.EXPECT().FindByID(mock.Anything, current.ID, userID).Return(current, nil)
		deviceRepo.EXPECT().UpdateFields(mock.Anything, current.ID, userID, mock.MatchedBy(func(p *entity.DevicePatch) bool {
			saleDate, ok := p.SaleDate.Get()
			return ok && saleDate != nil && saleDate.Equal(explicit)
		})).Return(current, nil)

		patch := &entity.DevicePatch{
			Status:   entity.Set(entity.StatusSold),
			SaleDate: entity.Set(&explicit),
		}
		_, err := svc.UpdateDevice(context.Background(), userID, current.ID, patch)

		require.NoError(t, err)
	})

	t.Run("no stamp when device already sold", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)
		current := stockDevice(userID)
		current.Status = entity.StatusSold

		deviceRepo.EXPECT().FindByID(mock.Anything, current.ID, userID).Return(current, nil)
		deviceRepo.EXPECT().UpdateFields(mock.Anything, current.ID, userID, mock.MatchedBy(func(p *entity.DevicePatch) bool {
			return !p.SaleDate.IsSet()
		})).Return(current, nil)

		patch := &entity.DevicePatch{Status: entity.Set(entity.StatusSold)}
		_, err := svc.UpdateDevice(context.Background(), userID, current.ID, patch)

		require.NoError(t, err)
	})

	t.Run("no stamp when sale date already recorded", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)
		current := stockDevice(userID)
		recorded := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		current.SaleDate = &recorded

		deviceRepo.EXPECT().FindByID(mock.Anything, current.ID, userID).Return(current, nil)
		deviceRepo.EXPECT().UpdateFields(mock.Anything, current.ID, userID, mock.MatchedBy(func(p *entity.DevicePatch) bool {
			return !p.SaleDate.IsSet()
		})).Return(current, nil)

		patch := &entity.DevicePatch{Status: entity.Set(entity.StatusSold)}
		_, err := svc.UpdateDevice(context.Background(), userID, current.ID, patch)

		require.NoError(t, err)
	})

	t.Run("no stamp on non-sold status", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)
		current := stockDevice(userID)

		deviceRepo.EXPECT().FindByID(mock.Anything, current.ID, userID).Return(current, nil)
		deviceRepo.EXPECT().UpdateFields(mock.Anything, current.ID, userID, mock.MatchedBy(func(p *entity.DevicePatch) bool {
			return !p.SaleDate.IsSet()
		})).Return(current, nil)

		patch := &entity.DevicePatch{Status: entity.Set(entity.StatusRepair)}
		_, err := svc.UpdateDevice(context.Background(), userID, current.ID, patch)

		require.NoError(t, err)
	})

	t.Run("rejects invalid status without touching the repo", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestDeviceService(t)

		patch := &entity.DevicePatch{Status: entity.Set(entity.DeviceStatus("LOST"))}
		_, err := svc.UpdateDevice(context.Background(), userID, "IP13-0001", patch)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})

	t.Run("duplicate imei surfaces as conflict", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)
		current := stockDevice(userID)

		deviceRepo.EXPECT().FindByID(mock.Anything, current.ID, userID).Return(current, nil)
		deviceRepo.EXPECT().UpdateFields(mock.Anything, current.ID, userID, mock.Anything).
			Return(nil, repository.ErrDuplicateIMEI)

		imei := "356938035643809"
		patch := &entity.DevicePatch{IMEI: entity.Set(&imei)}
		_, err := svc.UpdateDevice(context.Background(), userID, current.ID, patch)

		assert.ErrorIs(t, err, domainerrors.ErrIMEIExists)
	})
}

func TestUpdateDeviceIMEINormalization(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	svc, deviceRepo, _ := newTestDeviceService(t)
	current := stockDevice(userID)

	deviceRepo.EXPECT().FindByID(mock.Anything, current.ID, userID).Return(current, nil)
	deviceRepo.EXPECT().UpdateFields(mock.Anything, current.ID, userID, mock.MatchedBy(func(p *entity.DevicePatch) bool {
		imei, ok := p.IMEI.Get()
		return ok && imei == nil
	})).Return(current, nil)

	// An emptied input field arrives as "", which must clear the IMEI
	// instead of occupying the unique index with an empty string.
	empty := ""
	patch := &entity.DevicePatch{IMEI: entity.Set(&empty)}
	_, err := svc.UpdateDevice(context.Background(), userID, current.ID, patch)

	require.NoError(t, err)
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("stamps sale date even when already sold", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)
		current := stockDevice(userID)
		current.Status = entity.StatusSold // sold but never dated

		deviceRepo.EXPECT().FindByID(mock.Anything, current.ID, userID).Return(current, nil)
		deviceRepo.EXPECT().UpdateFields(mock.Anything, current.ID, userID, mock.MatchedBy(func(p *entity.DevicePatch) bool {
			saleDate, ok := p.SaleDate.Get()
			return ok && saleDate != nil && saleDate.Equal(testNow)
		})).Return(current, nil)

		_, err := svc.UpdateStatus(context.Background(), userID, current.ID, entity.StatusSold)

		require.NoError(t, err)
	})

	t.Run("keeps recorded sale date", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)
		current := stockDevice(userID)
		recorded := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		current.SaleDate = &recorded

		deviceRepo.EXPECT().FindByID(mock.Anything, current.ID, userID).Return(current, nil)
		deviceRepo.EXPECT().UpdateFields(mock.Anything, current.ID, userID, mock.MatchedBy(func(p *entity.DevicePatch) bool {
			return !p.SaleDate.IsSet()
		})).Return(current, nil)

		_, err := svc.UpdateStatus(context.Background(), userID, current.ID, entity.StatusSold)

		require.NoError(t, err)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestDeviceService(t)

		_, err := svc.UpdateStatus(context.Background(), userID, "IP13-0001", entity.DeviceStatus("SCRAPPED"))

		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)

		deviceRepo.EXPECT().FindByID(mock.Anything, "MISSING", userID).
			Return(nil, repository.ErrDeviceNotFound)

		_, err := svc.UpdateStatus(context.Background(), userID, "MISSING", entity.StatusRepair)

		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})
}

func TestGetDevice(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("foreign device is reported as missing", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)

		// The repository scopes the lookup by owner, so a foreign device
		// and a nonexistent one surface through the same error.
		deviceRepo.EXPECT().FindByID(mock.Anything, "IP13-0001", userID).
			Return(nil, repository.ErrDeviceNotFound)

		_, err := svc.GetDevice(context.Background(), userID, "IP13-0001")

		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})
}

func TestDeleteDevice(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)

		deviceRepo.EXPECT().Delete(mock.Anything, "IP13-0001", userID).Return(nil)

		require.NoError(t, svc.DeleteDevice(context.Background(), userID, "IP13-0001"))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)

		deviceRepo.EXPECT().Delete(mock.Anything, "MISSING", userID).
			Return(repository.ErrDeviceNotFound)

		err := svc.DeleteDevice(context.Background(), userID, "MISSING")

		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("repo failure", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)

		deviceRepo.EXPECT().Delete(mock.Anything, "IP13-0001", userID).
			Return(errors.New("connection reset"))

		err := svc.DeleteDevice(context.Background(), userID, "IP13-0001")

		assert.ErrorIs(t, err, domainerrors.ErrDeviceDeleteFailed)
	})
}

func TestGetStats(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	svc, deviceRepo, _ := newTestDeviceService(t)

	deviceRepo.EXPECT().CountByStatus(mock.Anything, userID, entity.StatusStock).Return(int64(7), nil)
	deviceRepo.EXPECT().CountByStatus(mock.Anything, userID, entity.StatusRepair).Return(int64(2), nil)
	deviceRepo.EXPECT().CountByStatus(mock.Anything, userID, entity.StatusSold).Return(int64(11), nil)

	stats, err := svc.GetStats(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, int64(20), stats.Total)
	assert.Equal(t, int64(7), stats.Stock)
	assert.Equal(t, int64(2), stats.Repair)
	assert.Equal(t, int64(11), stats.Sold)
}

func TestListDevices(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("passes filters through", func(t *testing.T) {
		t.Parallel()

		svc, deviceRepo, _ := newTestDeviceService(t)

		status := entity.StatusSold
		filters := &repository.DeviceFilters{
			DateType: repository.DateFieldSale,
			Status:   &status,
		}

		deviceRepo.EXPECT().FindAll(mock.Anything, userID, filters).
			Return([]*entity.Device{stockDevice(userID)}, nil)

		devices, err := svc.ListDevices(context.Background(), userID, filters)

		require.NoError(t, err)
		assert.Len(t, devices, 1)
	})

	t.Run("rejects invalid status filter", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestDeviceService(t)

		bogus := entity.DeviceStatus("JUNK")
		_, err := svc.ListDevices(context.Background(), userID, &repository.DeviceFilters{Status: &bogus})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})
}

func TestGenerateLabel(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	svc, deviceRepo, labelService := newTestDeviceService(t)
	device := stockDevice(userID)

	deviceRepo.EXPECT().FindByID(mock.Anything, device.ID, userID).Return(device, nil)
	labelService.EXPECT().GenerateDeviceLabel(device).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := svc.GenerateLabel(context.Background(), userID, device.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
