package iraster

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadConfig reads a JSON config file. Fields missing from the file keep
// their DefaultConfig values; unknown fields are an error. The result is
// not validated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("iraster: open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("iraster: decode config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as indented JSON.
func SaveConfig(path string, cfg Config) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("iraster: create config: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		_ = f.Close()
		return fmt.Errorf("iraster: encode config: %w", err)
	}
	return f.Close()
}
