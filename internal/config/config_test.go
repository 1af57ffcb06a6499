package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "habitquest.yaml")

	yaml := `
db_path: "/tmp/quest.db"
sync:
  enabled: true
  server: "http://sync.example.com:9000"
  user: "satvik"
  debounce: 2s
server:
  host: "127.0.0.1"
  port: 9001
`
	if err := os.WriteFile(cfgPath, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBPath != "/tmp/quest.db" {
		t.Errorf("DBPath = %q, want /tmp/quest.db", cfg.DBPath)
	}
	if !cfg.Sync.Enabled {
		t.Error("Sync.Enabled = false, want true")
	}
	if cfg.Sync.Server != "http://sync.example.com:9000" {
		t.Errorf("Sync.Server = %q", cfg.Sync.Server)
	}
	if cfg.Sync.User != "satvik" {
		t.Errorf("Sync.User = %q, want satvik", cfg.Sync.User)
	}
	if cfg.Sync.Debounce != 2*time.Second {
		t.Errorf("Sync.Debounce = %v, want 2s", cfg.Sync.Debounce)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9001 {
		t.Errorf("Server = %+v", cfg.Server)
	}
}

func TestLoadAppliesDefaultsForUnsetFields(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "habitquest.yaml")
	if err := os.WriteFile(cfgPath, []byte("sync:\n  enabled: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Sync.User != "main" {
		t.Errorf("Sync.User = %q, want default main", cfg.Sync.User)
	}
	if cfg.Sync.Debounce != time.Second {
		t.Errorf("Sync.Debounce = %v, want default 1s", cfg.Sync.Debounce)
	}
	if cfg.Server.Port != 8090 {
		t.Errorf("Server.Port = %d, want default 8090", cfg.Server.Port)
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}
	if cfg.Sync.Enabled {
		t.Error("Sync.Enabled should default to false")
	}
	if cfg.Sync.Server != "http://localhost:8090" {
		t.Errorf("Sync.Server = %q", cfg.Sync.Server)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(cfgPath, []byte(":::not valid yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(cfgPath); err == nil {
		t.Fatal("Load() with invalid YAML should return error")
	}
}
