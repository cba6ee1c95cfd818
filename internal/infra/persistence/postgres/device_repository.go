package postgres

import (
	"context"
	"time"

	"github.com/hatzenkracher/ipurchase/internal/domain/entity"
	domainerrors "github.com/hatzenkracher/ipurchase/internal/domain/errors"
	"github.com/hatzenkracher/ipurchase/internal/domain/repository"
	"github.com/hatzenkracher/ipurchase/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindAll returns the user's devices, newest created first, optionally
// narrowed by a date range and status.
func (repo *deviceRepository) FindAll(ctx context.Context, userID uuid.UUID, filters *repository.DeviceFilters) ([]*entity.Device, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID)

	if filters != nil {
		query = applyDeviceFilters(query, filters)
	}

	var deviceModels []*model.DeviceModel
	if err := query.
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// applyDeviceFilters translates the filter set into WHERE clauses. Filtering
// on the sale date excludes devices that were never sold.
func applyDeviceFilters(query *gorm.DB, filters *repository.DeviceFilters) *gorm.DB {
	if filters.DateFrom != nil || filters.DateTo != nil {
		column := "purchase_date"
		if filters.DateType == repository.DateFieldSale {
			column = "sale_date"
			query = query.Where("sale_date IS NOT NULL")
		}

		if filters.DateFrom != nil {
			query = query.Where(column+" >= ?", *filters.DateFrom)
		}
		if filters.DateTo != nil {
			query = query.Where(column+" <= ?", endOfDay(*filters.DateTo))
		}
	}

	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}

	return query
}

// endOfDay pushes the inclusive upper bound to 23:59:59.999 of the given day.
func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// FindByID retrieves a device with its documents. A device owned by another
// user is reported as not found, the two cases are indistinguishable on
// purpose.
func (repo *deviceRepository) FindByID(ctx context.Context, deviceID string, userID uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Preload("Documents").
		Where("id = ? AND user_id = ?", deviceID, userID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// Create persists a new device for a user.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueViolationOn(err, "imei") {
			return repository.ErrDuplicateIMEI
		}
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDeviceID
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	// Update the entity with generated values
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// UpdateFields re-verifies ownership, applies only the fields present in the
// patch and returns the updated device. The read-then-write ownership check
// has a known race against a concurrent delete; the store's row scoping makes
// the worst case a lost update, which is accepted.
func (repo *deviceRepository) UpdateFields(ctx context.Context, deviceID string, userID uuid.UUID, patch *entity.DevicePatch) (*entity.Device, error) {
	if _, err := repo.FindByID(ctx, deviceID, userID); err != nil {
		return nil, err
	}

	columns := patchColumns(patch)
	if len(columns) > 0 {
		if err := repo.db.WithContext(ctx).
			Model(&model.DeviceModel{}).
			Where("id = ? AND user_id = ?", deviceID, userID).
			Updates(columns).Error; err != nil {
			if isUniqueViolationOn(err, "imei") {
				return nil, repository.ErrDuplicateIMEI
			}

			return nil, errors.Wrap(err, "failed to update device fields")
		}
	}

	return repo.FindByID(ctx, deviceID, userID)
}

// patchColumns maps the set patch fields onto their column names.
func patchColumns(patch *entity.DevicePatch) map[string]any {
	columns := map[string]any{}

	if v, ok := patch.Model.Get(); ok {
		columns["model"] = v
	}
	if v, ok := patch.Storage.Get(); ok {
		columns["storage"] = v
	}
	if v, ok := patch.Color.Get(); ok {
		columns["color"] = v
	}
	if v, ok := patch.Condition.Get(); ok {
		columns["condition"] = v
	}
	if v, ok := patch.Status.Get(); ok {
		columns["status"] = string(v)
	}
	if v, ok := patch.IMEI.Get(); ok {
		columns["imei"] = v
	}
	if v, ok := patch.PurchaseDate.Get(); ok {
		columns["purchase_date"] = v
	}
	if v, ok := patch.PurchasePrice.Get(); ok {
		columns["purchase_price"] = v
	}
	if v, ok := patch.ShippingBuy.Get(); ok {
		columns["shipping_buy"] = v
	}
	if v, ok := patch.ShippingBuyDate.Get(); ok {
		columns["shipping_buy_date"] = v
	}
	if v, ok := patch.RepairCost.Get(); ok {
		columns["repair_cost"] = v
	}
	if v, ok := patch.RepairDate.Get(); ok {
		columns["repair_date"] = v
	}
	if v, ok := patch.SalePrice.Get(); ok {
		columns["sale_price"] = v
	}
	if v, ok := patch.SalesFees.Get(); ok {
		columns["sales_fees"] = v
	}
	if v, ok := patch.SaleDate.Get(); ok {
		columns["sale_date"] = v
	}
	if v, ok := patch.ShippingSell.Get(); ok {
		columns["shipping_sell"] = v
	}
	if v, ok := patch.ShippingSellDate.Get(); ok {
		columns["shipping_sell_date"] = v
	}
	if v, ok := patch.BuyerName.Get(); ok {
		columns["buyer_name"] = v
	}
	if v, ok := patch.PlatformOrderNumber.Get(); ok {
		columns["platform_order_number"] = v
	}
	if v, ok := patch.SaleInvoiceNumber.Get(); ok {
		columns["sale_invoice_number"] = v
	}
	if v, ok := patch.IsDiffTax.Get(); ok {
		columns["is_diff_tax"] = v
	}
	if v, ok := patch.Defects.Get(); ok {
		columns["defects"] = v
	}

	return columns
}

// Delete removes a device after re-verifying ownership.
func (repo *deviceRepository) Delete(ctx context.Context, deviceID string, userID uuid.UUID) error {
	if _, err := repo.FindByID(ctx, deviceID, userID); err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", deviceID, userID).
		Delete(&model.DeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// IDExists checks device id existence across all users. This is the one
// unscoped read, backing the global uniqueness pre-check at creation.
func (repo *deviceRepository) IDExists(ctx context.Context, id string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check device id existence")
	}

	return count > 0, nil
}

// CountByStatus counts the user's devices in the given status.
func (repo *deviceRepository) CountByStatus(ctx context.Context, userID uuid.UUID, status entity.DeviceStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("user_id = ? AND status = ?", userID, string(status)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count devices by status")
	}

	return count, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	documents := make([]entity.Document, 0, len(data.Documents))
	for _, docM := range data.Documents {
		documents = append(documents, entity.Document{
			ID:        docM.ID,
			DeviceID:  docM.DeviceID,
			Name:      docM.Name,
			Path:      docM.Path,
			MimeType:  docM.MimeType,
			CreatedAt: docM.CreatedAt,
		})
	}

	return &entity.Device{
		ID:                  data.ID,
		UserID:              data.UserID,
		Model:               data.Model,
		Storage:             data.Storage,
		Color:               data.Color,
		Condition:           data.Condition,
		Status:              entity.DeviceStatus(data.Status),
		IMEI:                data.IMEI,
		PurchaseDate:        data.PurchaseDate,
		PurchasePrice:       data.PurchasePrice,
		ShippingBuy:         data.ShippingBuy,
		ShippingBuyDate:     data.ShippingBuyDate,
		RepairCost:          data.RepairCost,
		RepairDate:          data.RepairDate,
		SalePrice:           data.SalePrice,
		SalesFees:           data.SalesFees,
		SaleDate:            data.SaleDate,
		ShippingSell:        data.ShippingSell,
		ShippingSellDate:    data.ShippingSellDate,
		BuyerName:           data.BuyerName,
		PlatformOrderNumber: data.PlatformOrderNumber,
		SaleInvoiceNumber:   data.SaleInvoiceNumber,
		IsDiffTax:           data.IsDiffTax,
		Defects:             data.Defects,
		Documents:           documents,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		Model:               data.Model,
		Storage:             data.Storage,
		Color:               data.Color,
		Condition:           data.Condition,
		Status:              string(data.Status),
		IMEI:                data.IMEI,
		PurchaseDate:        data.PurchaseDate,
		PurchasePrice:       data.PurchasePrice,
		ShippingBuy:         data.ShippingBuy,
		ShippingBuyDate:     data.ShippingBuyDate,
		RepairCost:          data.RepairCost,
		RepairDate:          data.RepairDate,
		SalePrice:           data.SalePrice,
		SalesFees:           data.SalesFees,
		SaleDate:            data.SaleDate,
		ShippingSell:        data.ShippingSell,
		ShippingSellDate:    data.ShippingSellDate,
		BuyerName:           data.BuyerName,
		PlatformOrderNumber: data.PlatformOrderNumber,
		SaleInvoiceNumber:   data.SaleInvoiceNumber,
		IsDiffTax:           data.IsDiffTax,
		Defects:             data.Defects,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
