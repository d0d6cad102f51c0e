// Package settings loads the initial site content used to seed an empty database.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/stpnv0/ResortDesk/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadSeed reads site settings from a YAML file. A missing file is not an
// error: it returns nil settings so the caller can skip seeding.
func LoadSeed(path string) (*domain.SiteSettings, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var s domain.SiteSettings
	if err = yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	return &s, nil
}
