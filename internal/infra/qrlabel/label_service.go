// Package qrlabel renders QR codes for printable device labels.
package qrlabel

import (
	"encoding/json"
	"fmt"

	"github.com/hatzenkracher/ipurchase/internal/domain/entity"
	"github.com/hatzenkracher/ipurchase/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type labelService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// LabelData is the payload encoded into a device label QR code.
type LabelData struct {
	DeviceID string `json:"device_id"`
	Model    string `json:"model"`
	Type     string `json:"type"`
}

const labelType = "device-label"

// NewLabelService creates a new QR label service instance
func NewLabelService(size int, errorCorrectionLevel string) service.LabelService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &labelService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateDeviceLabel generates a PNG QR code identifying the device.
func (s *labelService) GenerateDeviceLabel(device *entity.Device) ([]byte, error) {
	data := LabelData{
		DeviceID: device.ID,
		Model:    device.Model,
		Type:     labelType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal label data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseDeviceLabel parses scanned label data and returns the device id.
func (s *labelService) ParseDeviceLabel(labelData string) (string, error) {
	var data LabelData
	if err := json.Unmarshal([]byte(labelData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal label data: %w", err)
	}

	if data.Type != labelType {
		return "", fmt.Errorf("invalid label type: %s", data.Type)
	}

	if data.DeviceID == "" {
		return "", fmt.Errorf("label carries no device id")
	}

	return data.DeviceID, nil
}
