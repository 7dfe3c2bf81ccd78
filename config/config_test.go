package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MIDDLECHAMBER_SCORE_URL", "")
	t.Setenv("MIDDLECHAMBER_SECRET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.GameSlug != "middle-chamber" {
		t.Errorf("GameSlug = %q", cfg.GameSlug)
	}
	if cfg.DBPath != "~/.middlechamber/scores.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.SubmitTimeout != 10*time.Second {
		t.Errorf("SubmitTimeout = %v", cfg.SubmitTimeout)
	}
	if cfg.RemoteEnabled() {
		t.Error("remote should be disabled without url and secret")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MIDDLECHAMBER_SCORE_URL", "https://example.test")
	t.Setenv("MIDDLECHAMBER_GAME_SLUG", "temple")
	t.Setenv("MIDDLECHAMBER_SECRET", "s")
	t.Setenv("MIDDLECHAMBER_DB", "/tmp/x.db")
	t.Setenv("MIDDLECHAMBER_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !cfg.RemoteEnabled() {
		t.Error("remote should be enabled")
	}
	if cfg.GameSlug != "temple" || cfg.DBPath != "/tmp/x.db" || !cfg.Debug {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("MIDDLECHAMBER_SUBMIT_TIMEOUT", "soon")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
