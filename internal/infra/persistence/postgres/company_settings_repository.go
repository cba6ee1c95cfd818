package postgres

import (
	"context"

	"github.com/hatzenkracher/ipurchase/internal/domain/entity"
	"github.com/hatzenkracher/ipurchase/internal/domain/repository"
	"github.com/hatzenkracher/ipurchase/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// companySettingsRepository implements repository.CompanySettingsRepository.
type companySettingsRepository struct {
	db *gorm.DB
}

// NewCompanySettingsRepository is the constructor for companySettingsRepository.
func NewCompanySettingsRepository(db *gorm.DB) repository.CompanySettingsRepository {
	return &companySettingsRepository{
		db: db,
	}
}

// FindByUser retrieves the user's company settings.
func (repo *companySettingsRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.CompanySettings, error) {
	var settingsM model.CompanySettingsModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanySettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find company settings")
	}

	return toCompanySettingsDomain(&settingsM), nil
}

// Upsert creates or replaces the user's company settings. The user id is the
// primary key, so ON CONFLICT turns the insert into a full-row update.
func (repo *companySettingsRepository) Upsert(ctx context.Context, settings *entity.CompanySettings) error {
	settingsM := fromCompanySettingsDomain(settings)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"company_name", "owner_name", "street", "house_number",
				"postal_code", "city", "country", "vat_id", "tax_id",
				"email", "phone", "logo_path", "updated_at",
			}),
		}).
		Create(settingsM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert company settings")
	}

	settings.CreatedAt = settingsM.CreatedAt
	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toCompanySettingsDomain(data *model.CompanySettingsModel) *entity.CompanySettings {
	if data == nil {
		return nil
	}

	return &entity.CompanySettings{
		UserID:      data.UserID,
		CompanyName: data.CompanyName,
		OwnerName:   data.OwnerName,
		Street:      data.Street,
		HouseNumber: data.HouseNumber,
		PostalCode:  data.PostalCode,
		City:        data.City,
		Country:     data.Country,
		VatID:       data.VatID,
		TaxID:       data.TaxID,
		Email:       data.Email,
		Phone:       data.Phone,
		LogoPath:    data.LogoPath,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCompanySettingsDomain(data *entity.CompanySettings) *model.CompanySettingsModel {
	if data == nil {
		return nil
	}

	return &model.CompanySettingsModel{
		UserID:      data.UserID,
		CompanyName: data.CompanyName,
		OwnerName:   data.OwnerName,
		Street:      data.Street,
		HouseNumber: data.HouseNumber,
		PostalCode:  data.PostalCode,
		City:        data.City,
		Country:     data.Country,
		VatID:       data.VatID,
		TaxID:       data.TaxID,
		Email:       data.Email,
		Phone:       data.Phone,
		LogoPath:    data.LogoPath,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
