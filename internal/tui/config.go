// Package tui renders the loan application review page: the applicant
// profile, the requested facility, the operational review trail and the
// OTP-confirmed approve/reject decision.
package tui

import (
	"github.com/jahidblackrose/mtb-loan-approver/internal/gateway"
	"github.com/jahidblackrose/mtb-loan-approver/internal/tui/themes"
)

// Config holds page configuration.
type Config struct {
	Gateway gateway.ReviewGateway
	RefID   string
	Theme   themes.Theme
	Width   int
	Height  int
}

// Option is a functional option for configuring the page.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Width:  80,
		Height: 24,
	}
}

// WithGateway sets the review gateway.
func WithGateway(gw gateway.ReviewGateway) Option {
	return func(c *Config) {
		c.Gateway = gw
	}
}

// WithRef sets the application reference the page reviews.
func WithRef(refID string) Option {
	return func(c *Config) {
		c.RefID = refID
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
