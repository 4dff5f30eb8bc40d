package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mahmoudabadi/portfolio/internal/locale"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.DefaultLanguage != "fa" {
		t.Errorf("expected default language %q, got %q", "fa", cfg.DefaultLanguage)
	}
	if cfg.SessionTTL != "30m" {
		t.Errorf("expected default session_ttl %q, got %q", "30m", cfg.SessionTTL)
	}
	if cfg.ContentDir != "" {
		t.Errorf("expected built-in content by default, got %q", cfg.ContentDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.portfolio.yml")

	original := DefaultConfig()
	original.Host = "127.0.0.1"
	original.Port = 9090
	original.DefaultLanguage = "en"
	original.AllowedOrigins = []string{"https://ali.example"}
	original.SessionTTL = "1h"
	original.Profile.Name = "Test Owner"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Host != original.Host {
		t.Errorf("host: got %q, want %q", loaded.Host, original.Host)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.DefaultLanguage != original.DefaultLanguage {
		t.Errorf("default_language: got %q, want %q", loaded.DefaultLanguage, original.DefaultLanguage)
	}
	if loaded.SessionTTL != original.SessionTTL {
		t.Errorf("session_ttl: got %q, want %q", loaded.SessionTTL, original.SessionTTL)
	}
	if loaded.Profile != original.Profile {
		t.Errorf("profile: got %+v, want %+v", loaded.Profile, original.Profile)
	}
	if len(loaded.AllowedOrigins) != 1 || loaded.AllowedOrigins[0] != "https://ali.example" {
		t.Errorf("allowed_origins: got %v", loaded.AllowedOrigins)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("PORTFOLIO_DEFAULT_LANGUAGE", "ar")
	t.Setenv("PORTFOLIO_PROFILE_NAME", "Env Owner")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DefaultLanguage != "ar" {
		t.Errorf("env override failed: got %q, want %q", loaded.DefaultLanguage, "ar")
	}
	if loaded.Profile.Name != "Env Owner" {
		t.Errorf("nested env override failed: got %q", loaded.Profile.Name)
	}
	if loaded.Profile.Email != cfg.Profile.Email {
		t.Errorf("unrelated profile fields should survive: got %q", loaded.Profile.Email)
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"PORTFOLIO_PORT":             "port",
		"PORTFOLIO_SESSION_TTL":      "session_ttl",
		"PORTFOLIO_PROFILE_TELEGRAM": "profile.telegram",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalidPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-range port")
	}
}

func TestValidateInvalidLanguage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultLanguage = "de"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unsupported language")
	}
}

func TestValidateInvalidTTL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SessionTTL = "soon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unparseable session_ttl")
	}
	cfg.SessionTTL = "-5m"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative session_ttl")
	}
}

func TestValidateContentDir(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()

	cfg.ContentDir = dir
	if err := cfg.Validate(); err != nil {
		t.Errorf("existing content_dir should be valid: %v", err)
	}

	cfg.ContentDir = filepath.Join(dir, "missing")
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for missing content_dir")
	}

	f := filepath.Join(dir, "file.yaml")
	if err := os.WriteFile(f, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg.ContentDir = f
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for content_dir that is a file")
	}
}

func TestLanguageAndTTL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultLanguage = " EN "
	if code, err := cfg.Language(); err != nil || code != locale.English {
		t.Errorf("Language() = %q, %v", code, err)
	}
	cfg.DefaultLanguage = ""
	if code, _ := cfg.Language(); code != locale.Default {
		t.Errorf("empty language should select the default, got %q", code)
	}
	if d, err := cfg.TTL(); err != nil || d != 30*time.Minute {
		t.Errorf("TTL() = %v, %v", d, err)
	}
}

func TestWizardValidators(t *testing.T) {
	if validateEmail("ali@example.com") != nil {
		t.Error("valid email rejected")
	}
	for _, bad := range []string{"", "ali", "@example.com", "ali@"} {
		if validateEmail(bad) == nil {
			t.Errorf("validateEmail(%q) should fail", bad)
		}
	}
	if validatePort("8080") != nil {
		t.Error("valid port rejected")
	}
	for _, bad := range []string{"0", "abc", "65536"} {
		if validatePort(bad) == nil {
			t.Errorf("validatePort(%q) should fail", bad)
		}
	}
}
