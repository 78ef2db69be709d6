package qrcode

import (
	"fmt"
	"strings"

	"atrium/config"
	"atrium/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	levelName := ""
	baseURL := ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		levelName = cfg.QRCode.ErrorCorrectionLevel
		baseURL = cfg.QRCode.BaseURL
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch levelName {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateAssetTag renders a PNG QR code pointing at the equipment's detail
// view, so scanning a printed tag opens the right dashboard page.
func (s *qrcodeService) GenerateAssetTag(equipmentID uuid.UUID) ([]byte, error) {
	content := fmt.Sprintf("%s/equipment/%s", s.baseURL, equipmentID.String())

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
