package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields subdeck needs to talk to a subtrack backend.
type Config struct {
	APIBase  string
	Token    string
	CacheDir string
}

const (
	defaultConfigPath = "~/.config/subdeck/config.toml"
	defaultCacheDir   = "~/.cache/subdeck"
)

// Load locates and parses the subdeck config. A missing file yields defaults
// for everything except the API base, which has no sensible default; the
// caller validates it before building a client.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{CacheDir: mustExpand(defaultCacheDir)}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase   string `toml:"api_base"`
		Token     string `toml:"token"`
		TokenFile string `toml:"token_file"`
		CacheDir  string `toml:"cache_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIBase = strings.TrimSpace(raw.APIBase)

	cfg.Token = strings.TrimSpace(raw.Token)
	if tokenFile := strings.TrimSpace(raw.TokenFile); tokenFile != "" {
		token, err := readTokenFile(tokenFile)
		if err != nil {
			return Config{}, err
		}
		// token_file wins when both are set.
		cfg.Token = token
	}

	cfg.CacheDir = strings.TrimSpace(raw.CacheDir)
	if cfg.CacheDir == "" {
		cfg.CacheDir = defaultCacheDir
	}
	cfg.CacheDir = mustExpand(cfg.CacheDir)

	return cfg, nil
}

// readTokenFile reads a bearer token from its own file, trimming surrounding
// whitespace so a newline-terminated file works.
func readTokenFile(path string) (string, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", fmt.Errorf("read token_file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
