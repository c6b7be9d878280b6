package merge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads and validates merge configuration from a YAML or JSON location
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read merge config %s: %w", URL, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load merge config %s: %w", URL, err)
	}
	return cfg, nil
}

// ParseConfig decodes configuration, JSON input is accepted as a YAML subset. Unknown options are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("failed to decode: %v", err)}
	}
	if err := cfg.validateSources(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
