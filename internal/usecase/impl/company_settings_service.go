package impl

import (
	"context"
	"log/slog"

	"github.com/hatzenkracher/ipurchase/internal/domain/entity"
	domainerrors "github.com/hatzenkracher/ipurchase/internal/domain/errors"
	"github.com/hatzenkracher/ipurchase/internal/domain/repository"
	"github.com/hatzenkracher/ipurchase/internal/errors"
	"github.com/hatzenkracher/ipurchase/internal/usecase"

	"github.com/google/uuid"
)

type companySettingsService struct {
	settingsRepo repository.CompanySettingsRepository
	logger       *slog.Logger
}

// NewCompanySettingsService is the constructor for companySettingsService.
func NewCompanySettingsService(
	settingsRepo repository.CompanySettingsRepository,
	logger *slog.Logger,
) usecase.CompanySettingsUsecase {
	return &companySettingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetSettings returns the user's company profile.
func (s *companySettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.CompanySettings, error) {
	settings, err := s.settingsRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanySettingsNotFound) {
			return nil, domainerrors.ErrCompanySettingsNotFound
		}

		s.logger.ErrorContext(ctx, "failed to load company settings",
			slog.String("userID", userID.String()),
			slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "Fehler beim Laden der Firmendaten")
	}

	return settings, nil
}

// SaveSettings creates or replaces the user's company profile.
func (s *companySettingsService) SaveSettings(ctx context.Context, userID uuid.UUID, input *usecase.CompanySettingsInput) (*entity.CompanySettings, error) {
	settings := &entity.CompanySettings{
		UserID:      userID,
		CompanyName: input.CompanyName,
		OwnerName:   input.OwnerName,
		Street:      input.Street,
		HouseNumber: input.HouseNumber,
		PostalCode:  input.PostalCode,
		City:        input.City,
		Country:     input.Country,
		VatID:       input.VatID,
		TaxID:       input.TaxID,
		Email:       input.Email,
		Phone:       input.Phone,
		LogoPath:    input.LogoPath,
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		s.logger.ErrorContext(ctx, "failed to save company settings",
			slog.String("userID", userID.String()),
			slog.Any("error", err))

		return nil, domainerrors.ErrCompanySettingsSaveFailed
	}

	s.logger.InfoContext(ctx, "company settings saved",
		slog.String("userID", userID.String()))

	return settings, nil
}
