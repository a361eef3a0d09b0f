package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads a pipeline config file on top of DefaultConfig. The format is
// chosen by extension: .yaml/.yml, .toml or .json. Unknown keys are
// rejected.
//
// Relative paths in the file resolve against the file's directory unless
// work_dir says otherwise; a relative work_dir is itself taken relative to
// that directory.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	case ".toml":
		err = decodeTOML(data, &cfg)
	case ".json":
		err = decodeJSON(data, &cfg)
	default:
		return cfg, invalid("unsupported config format %q (want .yaml, .yml, .toml or .json)", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}

	dir := filepath.Dir(path)
	switch {
	case cfg.WorkDir == "":
		cfg.WorkDir = dir
	case !filepath.IsAbs(cfg.WorkDir):
		cfg.WorkDir = filepath.Join(dir, cfg.WorkDir)
	}

	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys: %v", undecoded)
	}
	return nil
}

func decodeJSON(data []byte, cfg *Config) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}
