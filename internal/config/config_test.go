package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvOutputDir, "")
	t.Setenv(EnvEnd4Dir, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputRoot != DefaultOutputRoot() {
		t.Errorf("OutputRoot = %q, want default", cfg.OutputRoot)
	}
}

func TestLoad_FileValues(t *testing.T) {
	t.Setenv(EnvOutputDir, "")
	t.Setenv(EnvEnd4Dir, "")

	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"output_dir": "/custom/out", "end4_dir": "/custom/end4", "fallback_image": "/wall.png"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputRoot != "/custom/out" {
		t.Errorf("OutputRoot = %q", cfg.OutputRoot)
	}
	if cfg.End4Dir != "/custom/end4" {
		t.Errorf("End4Dir = %q", cfg.End4Dir)
	}
	if cfg.FallbackImage != "/wall.png" {
		t.Errorf("FallbackImage = %q", cfg.FallbackImage)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"output_dir": "/from/file"}`), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvOutputDir, "/from/env")
	t.Setenv(EnvEnd4Dir, "/end4/env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputRoot != "/from/env" {
		t.Errorf("OutputRoot = %q, want env override", cfg.OutputRoot)
	}
	if cfg.End4Dir != "/end4/env" {
		t.Errorf("End4Dir = %q, want env override", cfg.End4Dir)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should fail on malformed config")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv(EnvOutputDir, "")
	t.Setenv(EnvEnd4Dir, "")

	path := filepath.Join(t.TempDir(), "config.json")
	cfg := &Config{OutputRoot: "/o", End4Dir: "/e", FallbackImage: "/i.png"}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip = %+v, want %+v", *loaded, *cfg)
	}
}

func TestPaths(t *testing.T) {
	cfg := &Config{OutputRoot: "/out", End4Dir: "/end4"}

	if got := cfg.ProfileDir("my-app"); got != filepath.Join("/out", "my-app") {
		t.Errorf("ProfileDir = %q", got)
	}
	want := filepath.Join("/end4", "matugenium", "apps", "my-app", "colors.json")
	if got := cfg.MirrorPath("my-app"); got != want {
		t.Errorf("MirrorPath = %q, want %q", got, want)
	}

	cfg.End4Dir = ""
	if got := cfg.MirrorPath("my-app"); got != "" {
		t.Errorf("MirrorPath with no end4 dir = %q, want empty", got)
	}
}
