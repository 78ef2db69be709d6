package service

import "github.com/google/uuid"

// QRCodeService generates printable asset-tag QR codes for equipment.
type QRCodeService interface {
	// GenerateAssetTag renders a PNG QR code identifying the equipment.
	GenerateAssetTag(equipmentID uuid.UUID) ([]byte, error)
}
