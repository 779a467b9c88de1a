// Package qrcode renders the QR labels printed for plant pots.
package qrcode

import (
	"encoding/json"
	"strings"

	"leafcare/config"
	"leafcare/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	labelType   = "plant"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// LabelData is the JSON payload encoded in a plant label
type LabelData struct {
	PlantID string `json:"plantId"`
	Name    string `json:"name,omitempty"`
	Type    string `json:"type"`
}

// New builds the service from the qrcode config section
func New(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance.
// The level accepts L/M/Q/H or low/medium/high/highest; anything else means medium.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePlantLabel renders the plant's label as PNG
func (s *qrcodeService) GeneratePlantLabel(plantID uuid.UUID, plantName string) ([]byte, error) {
	payload, err := json.Marshal(LabelData{
		PlantID: plantID.String(),
		Name:    plantName,
		Type:    labelType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal label data")
	}

	code, err := qrcode.New(string(payload), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}

// ParsePlantLabel reads a scanned label payload and returns the plant ID
func (s *qrcodeService) ParsePlantLabel(payload string) (uuid.UUID, error) {
	var data LabelData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal label data")
	}

	if data.Type != labelType {
		return uuid.Nil, errors.Errorf("invalid label type: %s", data.Type)
	}

	plantID, err := uuid.Parse(data.PlantID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse plant ID")
	}

	return plantID, nil
}
