package usecase

import (
	"context"

	"github.com/hatzenkracher/ipurchase/internal/domain/entity"

	"github.com/google/uuid"
)

// CompanySettingsInput carries the full company profile; saving always
// replaces the previous one.
type CompanySettingsInput struct {
	CompanyName string  `json:"company_name" validate:"required,max=150"`
	OwnerName   string  `json:"owner_name" validate:"required,max=100"`
	Street      string  `json:"street" validate:"required,max=150"`
	HouseNumber string  `json:"house_number" validate:"required,max=20"`
	PostalCode  string  `json:"postal_code" validate:"required,max=20"`
	City        string  `json:"city" validate:"required,max=100"`
	Country     string  `json:"country" validate:"required,max=100"`
	VatID       *string `json:"vat_id" validate:"omitempty,max=50"`
	TaxID       *string `json:"tax_id" validate:"omitempty,max=50"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	LogoPath    *string `json:"logo_path" validate:"omitempty,max=512"`
}

// CompanySettingsUsecase manages the per-user company profile used on
// invoices and labels.
type CompanySettingsUsecase interface {
	// GetSettings returns the user's company profile.
	GetSettings(ctx context.Context, userID uuid.UUID) (*entity.CompanySettings, error)

	// SaveSettings creates or replaces the user's company profile.
	SaveSettings(ctx context.Context, userID uuid.UUID, input *CompanySettingsInput) (*entity.CompanySettings, error)
}
