package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_MissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("LoadFile on missing file = %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kburn", "config.toml")

	cfg := DefaultConfig()
	cfg.General.DefaultDays = 14
	cfg.Estimator.Provider = "openai"
	cfg.Estimator.APIKey = "sk-test"
	cfg.Appearance.Theme = "tokyo-night"

	if err := SaveFile(path, cfg); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config perm = %o, want 600", perm)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[estimator]\nprovider = \"rekognition\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Estimator.Provider != "rekognition" {
		t.Errorf("Provider = %q, want rekognition", cfg.Estimator.Provider)
	}
	if cfg.Estimator.Model != "gpt-4o" {
		t.Errorf("Model = %q, want default gpt-4o", cfg.Estimator.Model)
	}
	if cfg.General.DefaultDays != 7 {
		t.Errorf("DefaultDays = %d, want 7", cfg.General.DefaultDays)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("LoadFile on malformed TOML should fail")
	}
}

func TestGetAPIKey_EnvWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Estimator.APIKey = "from-config"

	t.Setenv("OPENAI_API_KEY", "")
	if got := GetAPIKey(cfg); got != "from-config" {
		t.Errorf("GetAPIKey = %q, want from-config", got)
	}

	t.Setenv("OPENAI_API_KEY", "from-env")
	if got := GetAPIKey(cfg); got != "from-env" {
		t.Errorf("GetAPIKey = %q, want from-env", got)
	}
}

func TestDBPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	cfg := DefaultConfig()
	if got := DBPath(cfg); got != filepath.Join("/tmp/xdg-data", "kburn", "diary.db") {
		t.Errorf("DBPath = %q", got)
	}
	cfg.General.DBPath = "/srv/kburn.db"
	if got := DBPath(cfg); got != "/srv/kburn.db" {
		t.Errorf("DBPath override = %q", got)
	}
}
