package debug_test

import (
	"runtime"
	"testing"

	"nitpick/internal/debug"
	"nitpick/internal/plugins"
)

func TestCollectSortsAndDeduplicatesPlugins(t *testing.T) {
	ix := plugins.NewIndex()
	for _, entry := range []plugins.Entry{
		{Plugin: plugins.Plugin{Package: "zeta", Version: "2.0", EntryName: "Z1", Kind: plugins.KindChecker}, New: func() any { return struct{}{} }},
		{Plugin: plugins.Plugin{Package: "alpha", Version: "1.0", EntryName: "A1", Kind: plugins.KindChecker}, New: func() any { return struct{}{} }},
		{Plugin: plugins.Plugin{Package: "alpha", Version: "1.0", EntryName: "A2", Kind: plugins.KindChecker}, New: func() any { return struct{}{} }},
	} {
		ix.Register(entry)
	}
	entries, err := ix.Find(plugins.Options{})
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}

	info := debug.Collect("0.4.0", plugins.Load(entries))
	if info.Version != "0.4.0" {
		t.Fatalf("unexpected version: %q", info.Version)
	}
	if len(info.Plugins) != 2 {
		t.Fatalf("expected deduplicated plugins, got %v", info.Plugins)
	}
	if info.Plugins[0].Plugin != "alpha" || info.Plugins[1].Plugin != "zeta" {
		t.Fatalf("expected sorted plugins, got %v", info.Plugins)
	}
	if info.Platform.GoVersion != runtime.Version() {
		t.Fatalf("unexpected platform info: %+v", info.Platform)
	}
}
