// Package catalog provides the rate catalog: the compiled-in defaults, an
// optional YAML override read with viper, and startup validation.
package catalog

import (
	"fmt"
	"strings"

	"bidright/internal/domain/entities"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Load returns the catalog from path, or the defaults when path is empty.
// The result is always validated.
func Load(path string, log *zap.Logger) (*entities.RateCatalog, error) {
	if log == nil {
		log = zap.NewNop()
	}

	path = strings.TrimSpace(path)
	if path == "" {
		c := Default()
		if err := Validate(c); err != nil {
			return nil, fmt.Errorf("default catalog: %w", err)
		}
		log.Info("rate catalog loaded", zap.String("source", "builtin"), zap.Int("industries", len(c.Industries)))
		return c, nil
	}

	c, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	log.Info("rate catalog loaded", zap.String("source", path), zap.Int("industries", len(c.Industries)))
	return c, nil
}

// LoadFile decodes a catalog file. The format follows the file extension
// (yml, yaml, json, toml).
func LoadFile(path string) (*entities.RateCatalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var c entities.RateCatalog
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return &c, nil
}
