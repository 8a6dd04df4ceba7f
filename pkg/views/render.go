package views

import (
	"bytes"
	"fmt"

	"recon-landing/pkg/models"
)

// Render writes the full landing page into a byte slice
func Render(cfg PageConfig, record models.ContactFormRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := LandingPage(cfg, record).Render(&buf); err != nil {
		return nil, fmt.Errorf("error rendering landing page: %w", err)
	}
	return buf.Bytes(), nil
}
