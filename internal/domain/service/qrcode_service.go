package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateURLQR encodes a URL into a PNG QR code
	GenerateURLQR(url string) ([]byte, error)
}
