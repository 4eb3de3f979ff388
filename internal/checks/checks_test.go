package checks_test

import (
	"io"
	"log/slog"
	"testing"

	"nitpick/internal/checks"
	"nitpick/internal/options"
	"nitpick/internal/plugins"
)

func TestRegisterBuiltinsWiresCheckersIntoRegistry(t *testing.T) {
	ix := plugins.NewIndex()
	checks.RegisterBuiltins(ix)

	entries, err := ix.Find(plugins.Options{})
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	loaded := plugins.Load(entries)

	reg := options.NewRegistry(options.Config{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	if err := reg.RegisterPlugins(loaded); err != nil {
		t.Fatalf("RegisterPlugins returned error: %v", err)
	}

	if _, ok := reg.ConfigOption("max-complexity"); !ok {
		t.Fatal("complexity option not registered")
	}

	ns, err := options.Aggregate(reg, map[string]any{"max-complexity": int64(15)}, ".", nil)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}

	// Both checkers enable their codes; the reporter contributes nothing.
	if len(ns.ExtendedDefaultEnable) != 2 {
		t.Fatalf("unexpected enable list: %v", ns.ExtendedDefaultEnable)
	}

	for _, plugin := range loaded.All() {
		complexity, ok := plugin.Obj.(*checks.Complexity)
		if !ok {
			continue
		}
		if err := complexity.ParseOptions(reg, ns, nil); err != nil {
			t.Fatalf("ParseOptions returned error: %v", err)
		}
		if complexity.Max != 15 {
			t.Fatalf("resolved threshold not captured: %d", complexity.Max)
		}
	}
}

func TestComplexityRejectsNonsenseThreshold(t *testing.T) {
	complexity := &checks.Complexity{}
	ns := options.NewNamespace()
	ns.Set("max_complexity", -5)

	if err := complexity.ParseOptions(nil, ns, nil); err == nil {
		t.Fatal("expected error for threshold below -1")
	}
}
