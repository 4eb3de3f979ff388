// Package plugins models the plugin surface consumed by option resolution.
//
// A plugin ships as a compiled-in package that registers an Entry with an
// Index at init time. The finder resolves which entries load for a given
// invocation and materializes their objects. Option and post-processing
// hooks on those objects are discovered elsewhere via interface assertions;
// this package only knows descriptors and lifecycle.
package plugins

import (
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a plugin entry.
type Kind int

const (
	// KindChecker marks a check-providing extension. Checkers run by
	// default once loaded; users opt out explicitly.
	KindChecker Kind = iota
	// KindReporter marks an output-formatting plugin.
	KindReporter
)

func (k Kind) String() string {
	switch k {
	case KindChecker:
		return "checker"
	case KindReporter:
		return "reporter"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Plugin describes one available plugin entry point.
type Plugin struct {
	Package   string
	Version   string
	EntryName string
	Kind      Kind
}

// LoadedPlugin pairs a descriptor with its instantiated object.
type LoadedPlugin struct {
	Plugin Plugin
	Obj    any
}

// Plugins is the ordered collection of loaded plugins for one invocation.
type Plugins struct {
	loaded []LoadedPlugin
}

// All returns every loaded plugin in load order.
func (p *Plugins) All() []LoadedPlugin {
	if p == nil {
		return nil
	}
	return p.loaded
}

// Versions renders the "pkg: version" banner fragment, one entry per
// distinct package, sorted for stable output.
func (p *Plugins) Versions() string {
	seen := make(map[string]struct{})
	var parts []string
	for _, loaded := range p.All() {
		key := fmt.Sprintf("%s: %s", loaded.Plugin.Package, loaded.Plugin.Version)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		parts = append(parts, key)
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
