package coreconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("expected Default(), got %+v", cfg)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("expected Default(), got %+v", cfg)
	}
}

func TestLoadOverridesCacheShards(t *testing.T) {
	path := writeTOML(t, "[cache]\nshards = 128\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CacheShards != 128 {
		t.Fatalf("expected CacheShards 128, got %d", cfg.CacheShards)
	}
	if cfg.MaxAnnotations != Default().MaxAnnotations {
		t.Fatalf("unset fields should keep their default")
	}
}

func TestLoadRejectsNonPositiveShards(t *testing.T) {
	path := writeTOML(t, "[cache]\nshards = 0\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for non-positive shard count")
	}
}

func writeTOML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
