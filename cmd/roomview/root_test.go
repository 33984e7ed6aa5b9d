package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/roomview/config"
)

// parse runs flag parsing on a fresh root command and resolves the configuration without
// opening a window.
func parse(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	cmd := newRootCmd()
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	fs := cmd.Flags()
	f := &flags{}
	f.configPath, _ = fs.GetString("config")
	f.watch, _ = fs.GetBool("watch")
	f.width, _ = fs.GetInt("width")
	f.height, _ = fs.GetInt("height")
	f.title, _ = fs.GetString("title")
	f.vsync, _ = fs.GetBool("vsync")
	f.msaa, _ = fs.GetBool("msaa")
	f.profile, _ = fs.GetBool("profile")
	return loadConfig(cmd, f)
}

func TestLoadConfigDefaults(t *testing.T) {
	got, err := parse(t)
	if err != nil {
		t.Fatal(err)
	}
	if got.Window.Width != 640 || got.Window.Height != 480 || !got.Window.VSync || !got.Window.MSAA || got.Profiler.Enabled {
		t.Errorf("defaults = %+v", got)
	}
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roomview.yaml")
	data := "window:\n  width: 1024\n  height: 768\n  title: from file\nprofiler:\n  enabled: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := parse(t, "--config", path, "--width", "800", "--vsync=false")
	if err != nil {
		t.Fatal(err)
	}
	if got.Window.Width != 800 || got.Window.Height != 768 {
		t.Errorf("size = %dx%d, want 800x768", got.Window.Width, got.Window.Height)
	}
	if got.Window.Title != "from file" || !got.Profiler.Enabled || got.Window.VSync {
		t.Errorf("title=%q profile=%v vsync=%v", got.Window.Title, got.Profiler.Enabled, got.Window.VSync)
	}
}

func TestLoadConfigRejectsInvalidSize(t *testing.T) {
	if _, err := parse(t, "--width=-5"); err == nil {
		t.Error("expected validation error for negative width")
	}
}

func TestLoadConfigWatchNeedsFile(t *testing.T) {
	_, err := parse(t, "--watch")
	if err == nil || !strings.Contains(err.Error(), "--watch") {
		t.Errorf("err = %v, want --watch error", err)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "roomview "+version+"\n" {
		t.Errorf("output = %q", got)
	}
}
