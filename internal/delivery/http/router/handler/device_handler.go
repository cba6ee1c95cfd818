package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hatzenkracher/ipurchase/internal/delivery/http/response"
	"github.com/hatzenkracher/ipurchase/internal/domain/entity"
	"github.com/hatzenkracher/ipurchase/internal/domain/repository"
	"github.com/hatzenkracher/ipurchase/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Query dates arrive as plain calendar days.
const dateLayout = "2006-01-02"

// DeviceHandler holds dependencies for inventory handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the user's devices, narrowed by the optional query filters
// dateFrom, dateTo, dateType and status.
func (h *DeviceHandler) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	filters, err := parseDeviceFilters(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILTER", "Ungültiger Filter")
	}

	devices, err := h.uc.ListDevices(c.Request().Context(), userID, filters)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "")
}

func parseDeviceFilters(c echo.Context) (*repository.DeviceFilters, error) {
	filters := &repository.DeviceFilters{
		DateType: repository.DateFieldPurchase,
	}
	hasFilter := false

	if raw := c.QueryParam("dateFrom"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, errors.Wrap(err, "invalid dateFrom")
		}
		filters.DateFrom = &from
		hasFilter = true
	}

	if raw := c.QueryParam("dateTo"); raw != "" {
		to, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, errors.Wrap(err, "invalid dateTo")
		}
		filters.DateTo = &to
		hasFilter = true
	}

	switch c.QueryParam("dateType") {
	case "", string(repository.DateFieldPurchase):
	case string(repository.DateFieldSale):
		filters.DateType = repository.DateFieldSale
	default:
		return nil, errors.New("invalid date_type")
	}

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.DeviceStatus(raw)
		filters.Status = &status
		hasFilter = true
	}

	if !hasFilter {
		return nil, nil
	}

	return filters, nil
}

// Get returns a single device with its documents.
func (h *DeviceHandler) Get(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	device, err := h.uc.GetDevice(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device, "")
}

// Create registers a new device.
func (h *DeviceHandler) Create(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.CreateDeviceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Ungültige Gerätedaten")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	device, err := h.uc.CreateDevice(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Gerät erstellt")
}

// Update applies a merge patch to a device. Absent body keys leave the
// stored values untouched.
func (h *DeviceHandler) Update(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var patch entity.DevicePatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Ungültige Gerätedaten")
	}

	device, err := h.uc.UpdateDevice(c.Request().Context(), userID, c.Param("id"), &patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device, "Gerät aktualisiert")
}

type updateStatusInput struct {
	Status entity.DeviceStatus `json:"status" validate:"required"`
}

// UpdateStatus moves a device to a new lifecycle status.
func (h *DeviceHandler) UpdateStatus(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input updateStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Ungültiger Status")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	device, err := h.uc.UpdateStatus(c.Request().Context(), userID, c.Param("id"), input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device, "Status aktualisiert")
}

// Delete removes a device.
func (h *DeviceHandler) Delete(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.DeleteDevice(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Gerät gelöscht")
}

// Stats returns per-status counts for the user's inventory.
func (h *DeviceHandler) Stats(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	stats, err := h.uc.GetStats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// Label streams the device's QR label as PNG.
func (h *DeviceHandler) Label(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.uc.GenerateLabel(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
