package repository

import (
	"context"

	"github.com/hatzenkracher/ipurchase/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCompanySettingsNotFound is returned when a user has no company profile yet.
var ErrCompanySettingsNotFound = errors.New("company settings not found")

// CompanySettingsRepository defines persistence for the per-user company profile.
type CompanySettingsRepository interface {
	// FindByUser retrieves the user's company settings.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.CompanySettings, error)

	// Upsert creates or replaces the user's company settings.
	Upsert(ctx context.Context, settings *entity.CompanySettings) error
}
