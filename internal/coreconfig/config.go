// Package coreconfig loads optional runtime tuning for the expression
// core from a TOML file, following the same decode-and-check shape the
// rest of this codebase uses for its own manifests.
package coreconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds cache and factory tuning. Every field has a documented
// default so the core runs unconfigured.
type Config struct {
	// CacheShards is the hash-consing cache's shard count, rounded up to
	// a power of two by exprcache.New. Default 64.
	CacheShards int
	// MaxAnnotations caps the length of an annotation.Set a single
	// Extend chain may build before factories reject further growth
	// with a Usage error. Default 256, 0 means unlimited.
	MaxAnnotations int
}

// Default returns the tuning used when no TOML file is loaded.
func Default() Config {
	return Config{CacheShards: 64, MaxAnnotations: 256}
}

type fileConfig struct {
	Cache      cacheConfig      `toml:"cache"`
	Annotation annotationConfig `toml:"annotation"`
}

type cacheConfig struct {
	Shards int `toml:"shards"`
}

type annotationConfig struct {
	MaxLength int `toml:"max_length"`
}

// Load reads tuning from path, overlaying it on Default. A missing
// [cache] or [annotation] table, or a missing file, is not an error:
// Load returns Default() in that case.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}

	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if meta.IsDefined("cache", "shards") {
		if fc.Cache.Shards <= 0 {
			return Config{}, fmt.Errorf("%s: [cache].shards must be positive", path)
		}
		cfg.CacheShards = fc.Cache.Shards
	}
	if meta.IsDefined("annotation", "max_length") {
		if fc.Annotation.MaxLength < 0 {
			return Config{}, fmt.Errorf("%s: [annotation].max_length must be >= 0", path)
		}
		cfg.MaxAnnotations = fc.Annotation.MaxLength
	}
	return cfg, nil
}
