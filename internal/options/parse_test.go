package options_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"nitpick/internal/options"
	"nitpick/internal/plugins"
)

type capturingPlugin struct {
	optionPlugin
	maxComplexity int
	filenames     []string
	fail          error
}

func (p *capturingPlugin) ParseOptions(_ *options.Registry, ns *options.Namespace, filenames []string) error {
	if p.fail != nil {
		return p.fail
	}
	p.maxComplexity = ns.Int("max_complexity")
	p.filenames = filenames
	return nil
}

func complexityIndex(p *capturingPlugin) *plugins.Index {
	ix := plugins.NewIndex()
	ix.Register(plugins.Entry{
		Plugin: plugins.Plugin{Package: "nitpick-complexity", Version: "1.0", EntryName: "C90", Kind: plugins.KindChecker},
		New:    func() any { return p },
	})
	return ix
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nitpick.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestParseArgsFullPipeline(t *testing.T) {
	cfgPath := writeConfig(t, `
[nitpick]
max-line-length = 90
max-complexity = 12
`)
	plugin := &capturingPlugin{}

	ns, loaded, err := options.ParseArgs(
		[]string{"--config", cfgPath, "--max-line-length=100", "main.go"},
		complexityIndex(plugin),
	)
	if err != nil {
		t.Fatalf("ParseArgs returned error: %v", err)
	}

	if got := ns.Int("max_line_length"); got != 100 {
		t.Fatalf("command line should win, got %d", got)
	}
	if got := ns.Int("max_complexity"); got != 12 {
		t.Fatalf("plugin option should take config value, got %d", got)
	}
	if !reflect.DeepEqual(ns.Filenames, []string{"main.go"}) {
		t.Fatalf("unexpected filenames: %v", ns.Filenames)
	}
	if !reflect.DeepEqual(ns.ExtendedDefaultEnable, []string{"C90"}) {
		t.Fatalf("unexpected enable list: %v", ns.ExtendedDefaultEnable)
	}
	if len(loaded.All()) != 1 {
		t.Fatalf("unexpected plugin count: %d", len(loaded.All()))
	}

	// The post-processing hook saw the final values.
	if plugin.maxComplexity != 12 {
		t.Fatalf("hook saw %d, want 12", plugin.maxComplexity)
	}
	if !reflect.DeepEqual(plugin.filenames, []string{"main.go"}) {
		t.Fatalf("hook saw filenames %v", plugin.filenames)
	}
}

func TestParseArgsIsolatedBareInvocation(t *testing.T) {
	ns, loaded, err := options.ParseArgs([]string{"--isolated", "file.py"}, plugins.NewIndex())
	if err != nil {
		t.Fatalf("ParseArgs returned error: %v", err)
	}
	if !reflect.DeepEqual(ns.Filenames, []string{"file.py"}) {
		t.Fatalf("unexpected filenames: %v", ns.Filenames)
	}
	if len(ns.ExtendedDefaultEnable) != 0 || len(ns.ExtendedDefaultDisable) != 0 {
		t.Fatalf("expected empty extended lists, got %v / %v",
			ns.ExtendedDefaultEnable, ns.ExtendedDefaultDisable)
	}
	if len(loaded.All()) != 0 {
		t.Fatalf("expected no plugins, got %d", len(loaded.All()))
	}
}

func TestParseArgsMissingRequiredPluginAborts(t *testing.T) {
	// The failure happens during plugin resolution, before the
	// registry exists.
	_, _, err := options.ParseArgs(
		[]string{"--isolated", "--require-plugins", "nitpick-docstrings", "file.py"},
		plugins.NewIndex(),
	)
	if err == nil {
		t.Fatal("expected error for missing required plugin")
	}
	if !strings.Contains(err.Error(), "nitpick-docstrings") {
		t.Fatalf("error should name the plugin: %v", err)
	}
}

func TestParseArgsRequiredPluginFromConfig(t *testing.T) {
	cfgPath := writeConfig(t, `
[nitpick]
require-plugins = ["nitpick-docstrings"]
`)
	_, _, err := options.ParseArgs([]string{"--config", cfgPath}, plugins.NewIndex())
	if err == nil || !strings.Contains(err.Error(), "nitpick-docstrings") {
		t.Fatalf("config-required plugin not enforced: %v", err)
	}
}

func TestParseArgsAppendsOutputFileAsPositional(t *testing.T) {
	ns, _, err := options.ParseArgs(
		[]string{"--isolated", "--output-file", "report.txt", "file.py"},
		plugins.NewIndex(),
	)
	if err != nil {
		t.Fatalf("ParseArgs returned error: %v", err)
	}
	if !reflect.DeepEqual(ns.Filenames, []string{"file.py", "report.txt"}) {
		t.Fatalf("output file not appended: %v", ns.Filenames)
	}
}

func TestParseArgsPostProcessorErrorPropagates(t *testing.T) {
	plugin := &capturingPlugin{fail: errors.New("bad threshold")}

	_, _, err := options.ParseArgs([]string{"--isolated", "file.py"}, complexityIndex(plugin))
	if err == nil || !strings.Contains(err.Error(), "bad threshold") {
		t.Fatalf("hook error not propagated: %v", err)
	}
	if !strings.Contains(err.Error(), "nitpick-complexity") {
		t.Fatalf("hook error should name the plugin: %v", err)
	}
}
