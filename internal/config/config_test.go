package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return configFile
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Format != "table" {
		t.Errorf("Output.Format = %q, want table", cfg.Output.Format)
	}
	if cfg.Output.Title != "My Timetable" {
		t.Errorf("Output.Title = %q", cfg.Output.Title)
	}
	if cfg.PDF.Width != 600 || cfg.PDF.Height != 840 {
		t.Errorf("PDF page = %vx%v, want 600x840", cfg.PDF.Width, cfg.PDF.Height)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q", cfg.Server.Port)
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Run("resolves environment variable", func(t *testing.T) {
		t.Setenv("TEST_CLASSGRID_TERM", "Second Semester")
		result := ResolveEnvVars("${TEST_CLASSGRID_TERM} Timetable")
		if result != "Second Semester Timetable" {
			t.Errorf("got %q", result)
		}
	})

	t.Run("returns empty for missing env var", func(t *testing.T) {
		result := ResolveEnvVars("${DEFINITELY_NOT_SET_12345}")
		if result != "" {
			t.Errorf("expected empty string, got %s", result)
		}
	})

	t.Run("leaves literal values unchanged", func(t *testing.T) {
		result := ResolveEnvVars("literal-value")
		if result != "literal-value" {
			t.Errorf("expected literal-value, got %s", result)
		}
	})
}

func TestNewManager(t *testing.T) {
	t.Run("loads from config file", func(t *testing.T) {
		configFile := writeConfig(t, `
output:
  title: "300 Level"
  show_name: false
pdf:
  width: 612
`)
		mgr, err := NewManager(configFile)
		if err != nil {
			t.Fatalf("failed to create manager: %v", err)
		}

		cfg := mgr.Get()
		if cfg.Output.Title != "300 Level" {
			t.Errorf("Output.Title = %q, want 300 Level", cfg.Output.Title)
		}
		if cfg.Output.ShowName {
			t.Error("Output.ShowName should be false")
		}
		if cfg.PDF.Width != 612 {
			t.Errorf("PDF.Width = %v, want 612", cfg.PDF.Width)
		}
		// Keys absent from the file keep their defaults.
		if cfg.PDF.Height != 840 || cfg.Output.Format != "table" {
			t.Errorf("defaults lost: %+v", cfg)
		}
		if mgr.ConfigFile() != configFile {
			t.Errorf("ConfigFile() = %q, want %q", mgr.ConfigFile(), configFile)
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		configFile := writeConfig(t, "server:\n  port: \"9000\"\n")
		t.Setenv("CLASSGRID_SERVER_PORT", "9191")

		mgr, err := NewManager(configFile)
		if err != nil {
			t.Fatalf("failed to create manager: %v", err)
		}
		if got := mgr.Get().Server.Port; got != "9191" {
			t.Errorf("Server.Port = %q, want 9191", got)
		}
	})

	t.Run("invalid file", func(t *testing.T) {
		configFile := writeConfig(t, "output: [unterminated\n")
		if _, err := NewManager(configFile); err == nil {
			t.Error("expected error for malformed config")
		}
	})
}

func TestConfig_Helpers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "DEBUG"
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("LogLevel() = %v, want debug", cfg.LogLevel())
	}
	cfg.Log.Level = "nonsense"
	if cfg.LogLevel() != slog.LevelInfo {
		t.Errorf("LogLevel() = %v, want info", cfg.LogLevel())
	}

	opts := cfg.RenderOptions()
	if !opts.ShowName || opts.Page.Height != 840 {
		t.Errorf("RenderOptions() = %+v", opts)
	}

	t.Setenv("TEST_CLASSGRID_NAME", "Ada")
	cfg.Output.Title = "${TEST_CLASSGRID_NAME}'s Timetable"
	if cfg.Title() != "Ada's Timetable" {
		t.Errorf("Title() = %q", cfg.Title())
	}
}

func TestEntries(t *testing.T) {
	entries := DefaultEntries()
	if len(entries) == 0 {
		t.Fatal("DefaultEntries() returned empty slice")
	}
	for _, e := range entries {
		if e.Description == "" {
			t.Errorf("entry %s has no description", e.Key)
		}
	}

	entry, err := GetDefault("pdf.line_height")
	if err != nil {
		t.Fatalf("GetDefault() error = %v", err)
	}
	if entry.Value != 18.0 {
		t.Errorf("GetDefault() Value = %v, want 18", entry.Value)
	}

	if _, err := GetDefault("nonexistent.key"); !errors.Is(err, ErrNoDefault) {
		t.Errorf("GetDefault() error = %v, want ErrNoDefault", err)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written config: %v", err)
	}
	if !strings.HasPrefix(string(data), "# classgrid configuration") {
		t.Error("missing header comment")
	}

	mgr, err := NewManager(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if got := mgr.Get(); got.Output.Title != "My Timetable" || got.Extract.Layout != "page" {
		t.Errorf("loaded config = %+v", got)
	}
}

func TestManager_OnChange_Multiple(t *testing.T) {
	mgr, err := NewManager(writeConfig(t, "log:\n  level: info\n"))
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	mgr.OnChange(func(cfg *Config) {})
	mgr.OnChange(func(cfg *Config) {})
	mgr.OnChange(func(cfg *Config) {})

	mgr.mu.RLock()
	if len(mgr.callbacks) != 3 {
		t.Errorf("expected 3 callbacks, got %d", len(mgr.callbacks))
	}
	mgr.mu.RUnlock()
}

func TestManager_Get_ThreadSafe(t *testing.T) {
	mgr, err := NewManager(writeConfig(t, "output:\n  title: x\n"))
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = mgr.Get().Output.Title
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestManager_WatchConfig(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping file watcher test in short mode")
	}

	configFile := writeConfig(t, "output:\n  title: \"initial\"\n")
	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	var callbackCount atomic.Int32
	var lastValue atomic.Value
	mgr.OnChange(func(cfg *Config) {
		callbackCount.Add(1)
		lastValue.Store(cfg.Output.Title)
	})

	mgr.WatchConfig()

	// Give fsnotify time to set up the watcher
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(configFile, []byte("output:\n  title: \"updated\"\n"), 0644); err != nil {
		t.Fatalf("failed to write updated config file: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if callbackCount.Load() > 0 && lastValue.Load() == "updated" {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	if callbackCount.Load() == 0 {
		t.Fatal("callback was never invoked")
	}
	if v := lastValue.Load(); v != "updated" {
		t.Errorf("callback saw %v, want updated", v)
	}
	if got := mgr.Get().Output.Title; got != "updated" {
		t.Errorf("Get() after reload = %q, want updated", got)
	}
}
