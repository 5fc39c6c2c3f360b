package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const pongFile = "pong.yaml"

// SourceEmbedded and SourceBuiltin name the non-file config sources.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadPong loads Pong configuration.
// Search order: customPath -> ~/.pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	cfg, _, err := LoadPongWithSource(customPath)
	return cfg, err
}

// LoadPongWithSource is LoadPong that also reports where the config came
// from: a file path, SourceEmbedded or SourceBuiltin.
//
// Every source is decoded on top of DefaultPongConfig, so a file only
// needs the keys it changes. A custom path that cannot be read or parsed
// is an error; the other file sources are skipped silently.
func LoadPongWithSource(customPath string) (PongConfig, string, error) {
	return loadPongOnto(DefaultPongConfig(), customPath)
}

// loadPongOnto runs the search order, decoding the first readable source
// on top of base. On error base is returned unchanged.
func loadPongOnto(base PongConfig, customPath string) (PongConfig, string, error) {
	if customPath != "" {
		cfg, err := readPong(base, customPath)
		if err != nil {
			return base, SourceBuiltin, err
		}
		return cfg, customPath, nil
	}

	candidates := []string{userConfigPath(pongFile), filepath.Join("configs", pongFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readPong(base, path); err == nil {
			return cfg, path, nil
		}
	}

	cfg := base
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return base, SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

func readPong(base PongConfig, path string) (PongConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "configs", filename)
}

// LoadVariant loads the config for the named variant. The variant's rules
// are applied to the defaults first and the config file is decoded on top,
// so keys set in the file win. The result is validated; on any error the
// defaults with the variant applied are returned alongside the error, so
// callers can log and play on.
func LoadVariant(customPath string, v Variant) (PongConfig, error) {
	base := DefaultPongConfig()
	if err := ApplyPongVariant(&base, v); err != nil {
		return DefaultPongConfig(), err
	}

	cfg, _, err := loadPongOnto(base, customPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		return base, err
	}
	return cfg, nil
}
