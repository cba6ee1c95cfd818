package qrlabel

import (
	"encoding/json"
	"testing"

	"github.com/hatzenkracher/ipurchase/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelService_GenerateDeviceLabel(t *testing.T) {
	svc := NewLabelService(256, "M")

	device := &entity.Device{
		ID:    "IP13-0042",
		Model: "iPhone 13",
	}

	png, err := svc.GenerateDeviceLabel(device)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestLabelService_ParseDeviceLabel(t *testing.T) {
	svc := NewLabelService(256, "M")

	payload, err := json.Marshal(LabelData{
		DeviceID: "IP13-0042",
		Model:    "iPhone 13",
		Type:     "device-label",
	})
	require.NoError(t, err)

	deviceID, err := svc.ParseDeviceLabel(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "IP13-0042", deviceID)
}

func TestLabelService_ParseDeviceLabel_InvalidType(t *testing.T) {
	svc := NewLabelService(256, "M")

	payload, _ := json.Marshal(LabelData{DeviceID: "IP13-0042", Type: "subscription"})

	_, err := svc.ParseDeviceLabel(string(payload))
	assert.ErrorContains(t, err, "invalid label type")
}

func TestLabelService_ParseDeviceLabel_Garbage(t *testing.T) {
	svc := NewLabelService(256, "M")

	_, err := svc.ParseDeviceLabel("{not json")
	assert.Error(t, err)
}

func TestLabelService_UnknownCorrectionLevelDefaultsToMedium(t *testing.T) {
	svc := NewLabelService(128, "X")

	png, err := svc.GenerateDeviceLabel(&entity.Device{ID: "A1"})
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
