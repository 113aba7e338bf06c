package config

import (
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vango-dev/toastify/internal/errors"
	"github.com/vango-dev/toastify/pkg/toast"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Address() != "localhost:3000" {
		t.Errorf("Address() = %q", cfg.Address())
	}
	if cfg.ExitTimeout() != time.Second {
		t.Errorf("ExitTimeout() = %v", cfg.ExitTimeout())
	}
	if cfg.LogLevel() != slog.LevelInfo {
		t.Errorf("LogLevel() = %v", cfg.LogLevel())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	opts := cfg.ToastOptions()
	def := toast.DefaultOptions()
	if opts.Position != def.Position || opts.Theme != def.Theme || opts.AutoClose != def.AutoClose {
		t.Errorf("ToastOptions() = %+v, want defaults", opts)
	}
	if opts.Transition.Name != "bounce" || opts.CloseButton == nil || !opts.PauseOnHover {
		t.Errorf("ToastOptions() = %+v", opts)
	}
}

func TestLoadMissingUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Path() != "" || cfg.Server.Port != DefaultPort {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := writeConfig(t, JSONFileName, `{
  "server": {"port": 8080, "logLevel": "debug"},
  "container": {
    "containerId": "main",
    "limit": 3,
    "newestOnTop": true,
    "exitTimeoutMs": 0,
    "style": {"z-index": "10000"},
    "defaults": {
      "position": "bottom-center",
      "theme": "dark",
      "transition": "zoom",
      "autoCloseMs": 0,
      "closeButton": false,
      "pauseOnHover": false
    }
  }
}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Path() != filepath.Join(dir, JSONFileName) {
		t.Errorf("Path() = %q", cfg.Path())
	}
	if cfg.Server.Port != 8080 || cfg.Server.Host != DefaultHost {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("LogLevel() = %v", cfg.LogLevel())
	}
	if cfg.ExitTimeout() != 0 {
		t.Errorf("explicit exitTimeoutMs 0 should be kept, got %v", cfg.ExitTimeout())
	}

	opts := cfg.ToastOptions()
	if opts.ContainerID != "main" || opts.Limit != 3 || !opts.NewestOnTop {
		t.Errorf("container options = %+v", opts)
	}
	if opts.Style.Get("z-index") != "10000" {
		t.Errorf("Style = %v", opts.Style)
	}
	if opts.Position != toast.BottomCenter || opts.Theme != toast.ThemeDark || opts.Transition.Name != "zoom" {
		t.Errorf("defaults = %+v", opts)
	}
	if opts.AutoClose != 0 {
		t.Errorf("AutoClose = %v, want disabled", opts.AutoClose)
	}
	if opts.CloseButton != nil {
		t.Error("closeButton false should remove the close button")
	}
	if opts.PauseOnHover || !opts.PauseOnFocusLoss {
		t.Errorf("pause flags = %v %v", opts.PauseOnHover, opts.PauseOnFocusLoss)
	}
}

func TestLoadYAMLExpandsEnv(t *testing.T) {
	t.Setenv("TOASTIFY_PORT", "9090")
	dir := writeConfig(t, YAMLFileName, `
server:
  port: ${TOASTIFY_PORT}
container:
  className: my-toasts
  rtl: true
  defaults:
    draggableDirection: y
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}

	opts := cfg.ToastOptions()
	if !opts.RTL || opts.DraggableDirection != toast.DirectionY {
		t.Errorf("options = %+v", opts)
	}
	want := toast.DefaultContainerClass(toast.TopLeft, true) + " my-toasts"
	if got := toast.ResolveClassName(opts.ClassName, toast.TopLeft, true); got != want {
		t.Errorf("ClassName resolves to %q", got)
	}
}

func TestLoadPrefersJSON(t *testing.T) {
	dir := writeConfig(t, JSONFileName, `{"server": {"port": 4000}}`)
	if err := os.WriteFile(filepath.Join(dir, YAMLFileName), []byte("server:\n  port: 5000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("Port = %d, want the JSON value", cfg.Server.Port)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode string
		wantLine int
	}{
		{"missing file", "", "", "T100", 0},
		{"json syntax", JSONFileName, "{\n  \"server\": {\n    \"port\": ,\n  }\n}", "T101", 3},
		{"yaml syntax", YAMLFileName, "server:\n  port: [1,\n", "T101", 0},
		{"bad port", YAMLFileName, "server:\n  port: 70000\n", "T150", 2},
		{"bad log level", YAMLFileName, "server:\n  logLevel: loud\n", "T151", 2},
		{"bad metrics path", JSONFileName, `{"server": {"metricsPath": "metrics"}}`, "T152", 0},
		{"bad position", YAMLFileName, "container:\n  defaults:\n    position: middle\n", "T102", 3},
		{"bad theme", YAMLFileName, "container:\n  defaults:\n    theme: neon\n", "T104", 3},
		{"bad transition", YAMLFileName, "container:\n  defaults:\n    transition: spin\n", "T105", 3},
		{"negative auto close", YAMLFileName, "container:\n  defaults:\n    autoCloseMs: -1\n", "T106", 3},
		{"negative exit timeout", YAMLFileName, "container:\n  exitTimeoutMs: -5\n", "T106", 2},
		{"negative limit", YAMLFileName, "container:\n  limit: -1\n", "T107", 2},
		{"draggable percent", YAMLFileName, "container:\n  defaults:\n    draggablePercent: 150\n", "T108", 3},
		{"drag direction", YAMLFileName, "container:\n  defaults:\n    draggableDirection: z\n", "T109", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.json")
			if tt.file != "" {
				path = filepath.Join(writeConfig(t, tt.file, tt.content), tt.file)
			}

			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("LoadFile() should fail")
			}
			var te *errors.ToastError
			if !stderrors.As(err, &te) {
				t.Fatalf("error %T is not a ToastError", err)
			}
			if te.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s (%v)", te.Code, tt.wantCode, err)
			}
			if tt.wantLine > 0 {
				if te.Location == nil || te.Location.Line != tt.wantLine {
					t.Errorf("Location = %v, want line %d", te.Location, tt.wantLine)
				}
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLogLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLogLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLogLevel("verbose"); err == nil {
		t.Error("ParseLogLevel(verbose) should fail")
	}
}
