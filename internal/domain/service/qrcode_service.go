package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and reads the printable labels attached to plant pots.
type QRCodeService interface {
	// GeneratePlantLabel returns a PNG QR code identifying the plant.
	GeneratePlantLabel(plantID uuid.UUID, plantName string) ([]byte, error)

	// ParsePlantLabel decodes the label payload back to the plant ID.
	ParsePlantLabel(payload string) (uuid.UUID, error)
}
