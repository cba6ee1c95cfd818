package handler

import (
	"log/slog"
	"net/http"

	"github.com/hatzenkracher/ipurchase/internal/delivery/http/response"
	"github.com/hatzenkracher/ipurchase/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CompanySettingsHandler holds dependencies for the company profile handlers.
type CompanySettingsHandler struct {
	uc     usecase.CompanySettingsUsecase
	logger *slog.Logger
}

// NewCompanySettingsHandler is the constructor for CompanySettingsHandler, injected by Fx.
func NewCompanySettingsHandler(uc usecase.CompanySettingsUsecase, logger *slog.Logger) *CompanySettingsHandler {
	return &CompanySettingsHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns the user's company profile.
func (h *CompanySettingsHandler) Get(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	settings, err := h.uc.GetSettings(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "")
}

// Save creates or replaces the user's company profile.
func (h *CompanySettingsHandler) Save(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.CompanySettingsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Ungültige Firmendaten")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	settings, err := h.uc.SaveSettings(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "Firmendaten gespeichert")
}
