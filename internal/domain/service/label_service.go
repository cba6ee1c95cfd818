package service

import "github.com/hatzenkracher/ipurchase/internal/domain/entity"

// LabelService renders printable QR labels for inventory devices.
type LabelService interface {
	// GenerateDeviceLabel returns a PNG QR code identifying the device.
	GenerateDeviceLabel(device *entity.Device) ([]byte, error)

	// ParseDeviceLabel decodes scanned label data back into a device id.
	ParseDeviceLabel(labelData string) (string, error)
}
