package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"leafcare/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"high", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_GeneratePlantLabel(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"Small label", 128, 128},
		{"Large label", 512, 512},
		{"Default size", 0, defaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, "M")

			pngBytes, err := svc.GeneratePlantLabel(uuid.New(), "Planta X")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(pngBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.want, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_ParsePlantLabel(t *testing.T) {
	svc := New(&config.Config{QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "high"}})
	plantID := uuid.New()

	payload, err := json.Marshal(LabelData{PlantID: plantID.String(), Name: "Planta X", Type: "plant"})
	require.NoError(t, err)

	parsed, err := svc.ParsePlantLabel(string(payload))
	require.NoError(t, err)
	assert.Equal(t, plantID, parsed)
}

func TestQRCodeService_ParsePlantLabel_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"not json", "invalid json", "failed to unmarshal label data"},
		{"wrong type", `{"plantId":"` + uuid.NewString() + `","type":"subscription"}`, "invalid label type"},
		{"bad uuid", `{"plantId":"not-a-uuid","type":"plant"}`, "failed to parse plant ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParsePlantLabel(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
