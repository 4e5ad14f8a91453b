package localefixture

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/dmitrymomot/localefixture/pkg/logger"
)

// Format identifies a snapshot document encoding.
type Format string

// Supported snapshot formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat converts a format name or file extension ("yaml", ".yml", "json")
// into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// formatFromPath picks the format from the file extension.
func formatFromPath(name string) (Format, error) {
	return ParseFormat(path.Ext(name))
}

// Option configures snapshot loading.
type Option func(*loadConfig) error

type loadConfig struct {
	logger *slog.Logger
	format Format
}

func newLoadConfig(opts []Option) (*loadConfig, error) {
	cfg := &loadConfig{logger: logger.NewNope()}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithFormat forces the snapshot format instead of detecting it from the file name.
// Parse defaults to FormatYAML.
func WithFormat(f Format) Option {
	return func(c *loadConfig) error {
		parsed, err := ParseFormat(string(f))
		if err != nil {
			return err
		}
		c.format = parsed
		return nil
	}
}

// WithLogger sets the logger used to report loaded snapshots.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(c *loadConfig) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}
