package share

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

// DefaultSize is the QR edge length in pixels, large enough to scan from a phone
const DefaultSize = 320

// MaxSize caps the requested QR edge length
const MaxSize = 1024

// MaxURLLength is the longest URL encoded into a QR code. Medium error
// correction tops out at 2331 bytes.
const MaxURLLength = 2048

var (
	ErrEmptyURL   = errors.New("share url is empty")
	ErrURLTooLong = errors.New("share url is too long for a qr code")
)

// Service produces share links and QR codes for a source word
type Service struct {
	logger    *slog.Logger
	publicURL string
}

// New creates a new share service. A non-empty publicURL is used as the
// site root for every link instead of the one the request reports.
func New(logger *slog.Logger, publicURL string) *Service {
	return &Service{
		logger:    logger.With(slog.String("component", "share")),
		publicURL: publicURL,
	}
}

// GameURL joins the site root and the game route for a word. base is only
// used when no public URL is configured.
func (s *Service) GameURL(base, word string) string {
	if s.publicURL != "" {
		base = s.publicURL
	}
	return strings.TrimSuffix(base, "/") + "/" + url.PathEscape(word)
}

// QRCode renders target as a PNG QR code. Sizes outside (0, MaxSize] fall
// back to DefaultSize.
func (s *Service) QRCode(target string, size int) ([]byte, error) {
	if target == "" {
		return nil, ErrEmptyURL
	}
	if len(target) > MaxURLLength {
		return nil, ErrURLTooLong
	}
	if size <= 0 || size > MaxSize {
		size = DefaultSize
	}

	png, err := qrcode.Encode(target, qrcode.Medium, size)
	if err != nil {
		s.logger.Error("qr generation failed",
			slog.String("url", target),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}
