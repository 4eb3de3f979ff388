package plugins

import (
	"fmt"
	"log/slog"
	"sort"

	"nitpick/internal/fileutil"
)

// Entry is a registered, not yet loaded plugin: a descriptor plus the
// constructor for its object.
type Entry struct {
	Plugin Plugin
	New    func() any
}

// Index holds the plugin entries compiled into this binary.
type Index struct {
	entries []Entry
	byName  map[string]int
}

// NewIndex returns an empty plugin index.
func NewIndex() *Index {
	return &Index{byName: make(map[string]int)}
}

// Register adds an entry to the index. Duplicate entry names are a
// programming error in the plugin set and panic at startup.
func (ix *Index) Register(entry Entry) {
	if entry.Plugin.EntryName == "" {
		panic("plugins: entry name must not be empty")
	}
	if entry.New == nil {
		panic(fmt.Sprintf("plugins: entry %q has no constructor", entry.Plugin.EntryName))
	}
	if _, exists := ix.byName[entry.Plugin.EntryName]; exists {
		panic(fmt.Sprintf("plugins: entry %q already registered", entry.Plugin.EntryName))
	}
	slog.Debug("registered plugin entry",
		"entry", entry.Plugin.EntryName,
		"package", entry.Plugin.Package,
		"kind", entry.Plugin.Kind.String())
	ix.byName[entry.Plugin.EntryName] = len(ix.entries)
	ix.entries = append(ix.entries, entry)
}

// Options controls plugin resolution for one invocation.
type Options struct {
	// Require lists plugin packages that must be present; resolution fails
	// if any is missing.
	Require []string
}

// ParseOptions merges the bootstrap --require-plugins values with the
// require_plugins config entry, preserving order with CLI values first.
func ParseOptions(cfg map[string]any, required []string) Options {
	opts := Options{Require: append([]string{}, required...)}
	for _, key := range []string{"require_plugins", "require-plugins"} {
		value, ok := cfg[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case string:
			// A scalar entry is a comma separated list, same as the
			// --require-plugins option.
			opts.Require = append(opts.Require, fileutil.ParseCommaSeparatedList(v)...)
		case []string:
			opts.Require = append(opts.Require, v...)
		case []any:
			for _, item := range v {
				opts.Require = append(opts.Require, fmt.Sprint(item))
			}
		}
		break
	}
	return opts
}

// Find resolves the entries that load for this invocation. Every compiled-in
// entry loads; Find fails when a required package has no matching entry.
func (ix *Index) Find(opts Options) ([]Entry, error) {
	available := make(map[string]struct{}, len(ix.entries))
	for _, entry := range ix.entries {
		available[entry.Plugin.Package] = struct{}{}
		available[entry.Plugin.EntryName] = struct{}{}
	}

	var missing []string
	for _, name := range opts.Require {
		if _, ok := available[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("required plugins were not installed: %v", missing)
	}

	entries := make([]Entry, len(ix.entries))
	copy(entries, ix.entries)
	return entries, nil
}

// Load instantiates the given entries into a Plugins collection.
func Load(entries []Entry) *Plugins {
	loaded := make([]LoadedPlugin, 0, len(entries))
	for _, entry := range entries {
		loaded = append(loaded, LoadedPlugin{Plugin: entry.Plugin, Obj: entry.New()})
		slog.Debug("loaded plugin", "entry", entry.Plugin.EntryName, "version", entry.Plugin.Version)
	}
	return &Plugins{loaded: loaded}
}

var defaultIndex = NewIndex()

// Default returns the process-wide index that plugin packages register into.
func Default() *Index {
	return defaultIndex
}

// Register adds an entry to the default index.
func Register(entry Entry) {
	defaultIndex.Register(entry)
}
