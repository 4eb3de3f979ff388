package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nitpick/internal/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDiscoversWorkingDirectoryConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, filepath.Join(dir, ".nitpick.toml"), `
[nitpick]
max-line-length = 100
exclude = ["build", "dist"]
`)

	values, cfgDir, err := config.Load(config.LoadOptions{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got, ok := values["max-line-length"].(int64); !ok || got != 100 {
		t.Fatalf("unexpected max-line-length: %v", values["max-line-length"])
	}
	resolvedDir, _ := filepath.EvalSymlinks(cfgDir)
	wantDir, _ := filepath.EvalSymlinks(dir)
	if resolvedDir != wantDir {
		t.Fatalf("unexpected config dir: got %q want %q", cfgDir, dir)
	}
}

func TestLoadIsolatedSkipsEverything(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, filepath.Join(dir, "nitpick.toml"), "[nitpick]\ncount = true\n")

	values, cfgDir, err := config.Load(config.LoadOptions{Isolated: true})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(values) != 0 {
		t.Fatalf("expected no values in isolated mode, got %v", values)
	}
	if cfgDir != "." {
		t.Fatalf("expected working directory base, got %q", cfgDir)
	}
}

func TestLoadExplicitPathRequiresTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "other.toml")
	writeFile(t, path, "[other]\nkey = 1\n")

	_, _, err := config.Load(config.LoadOptions{Path: path})
	if err == nil || !strings.Contains(err.Error(), "[nitpick] table") {
		t.Fatalf("expected missing-table error, got %v", err)
	}
}

func TestLoadExplicitPathMissingFileFails(t *testing.T) {
	if _, _, err := config.Load(config.LoadOptions{Path: filepath.Join(t.TempDir(), "absent.toml")}); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadExtraFilesOverrideMain(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, filepath.Join(dir, ".nitpick.toml"), "[nitpick]\nmax-line-length = 100\ncount = true\n")
	extra := filepath.Join(dir, "extra.toml")
	writeFile(t, extra, "[nitpick]\nmax-line-length = 120\n")

	values, _, err := config.Load(config.LoadOptions{Extra: []string{extra}})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := values["max-line-length"].(int64); got != 120 {
		t.Fatalf("extra file should win, got %v", got)
	}
	if got := values["count"].(bool); !got {
		t.Fatalf("main file value should survive, got %v", values["count"])
	}
}

func TestLoadSkipsFilesWithoutTable(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, filepath.Join(dir, ".nitpick.toml"), "[other]\nkey = 1\n")
	writeFile(t, filepath.Join(dir, "nitpick.toml"), "[nitpick]\njobs = 4\n")

	values, _, err := config.Load(config.LoadOptions{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := values["jobs"].(int64); got != 4 {
		t.Fatalf("expected fallback to second candidate, got %v", values)
	}
}

func TestLoadNoConfigAnywhere(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	values, cfgDir, err := config.Load(config.LoadOptions{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(values) != 0 || cfgDir != "." {
		t.Fatalf("expected empty mapping and cwd base, got %v %q", values, cfgDir)
	}
}
