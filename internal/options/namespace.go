package options

import (
	"fmt"
	"slices"
	"sort"
)

// Source records which layer supplied a destination's current value. It is
// diagnostic metadata only: the merge never branches on it.
type Source int

const (
	// SourceDefault marks the built-in default.
	SourceDefault Source = iota
	// SourceConfig marks a value overlaid from a config file.
	SourceConfig
	// SourceCommandLine marks a value given explicitly on the command line.
	SourceCommandLine
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceConfig:
		return "config"
	case SourceCommandLine:
		return "command line"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// Namespace is the resolved configuration: destination name to final value,
// the plugin-extended default enable/disable code lists, and the positional
// filename arguments.
type Namespace struct {
	values  map[string]any
	sources map[string]Source

	// ExtendedDefaultEnable and ExtendedDefaultDisable accumulate the
	// check codes plugins enabled or disabled by default. Duplicates are
	// preserved.
	ExtendedDefaultEnable  []string
	ExtendedDefaultDisable []string

	// Filenames holds the positional arguments left after flag parsing.
	Filenames []string
}

// NewNamespace returns an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{
		values:  make(map[string]any),
		sources: make(map[string]Source),
	}
}

// Get returns the value stored under dest.
func (ns *Namespace) Get(dest string) (any, bool) {
	v, ok := ns.values[dest]
	return v, ok
}

// Set stores value under dest without touching its recorded source. Used by
// plugin post-processing hooks to adjust resolved values.
func (ns *Namespace) Set(dest string, value any) {
	ns.values[dest] = value
}

func (ns *Namespace) set(dest string, value any, src Source) {
	ns.values[dest] = value
	ns.sources[dest] = src
}

// Origin reports which layer supplied the current value of dest.
func (ns *Namespace) Origin(dest string) Source {
	return ns.sources[dest]
}

// String returns the value of dest as a string, or "" when absent or of
// another type.
func (ns *Namespace) String(dest string) string {
	if s, ok := ns.values[dest].(string); ok {
		return s
	}
	return ""
}

// Bool returns the value of dest as a bool.
func (ns *Namespace) Bool(dest string) bool {
	if b, ok := ns.values[dest].(bool); ok {
		return b
	}
	return false
}

// Int returns the value of dest as an int, converting the integer types a
// TOML decoder produces.
func (ns *Namespace) Int(dest string) int {
	switch v := ns.values[dest].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Strings returns the value of dest as a string slice, converting element
// types where needed.
func (ns *Namespace) Strings(dest string) []string {
	switch v := ns.values[dest].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		return []string{v}
	default:
		return nil
	}
}

// Dests returns every destination name in sorted order.
func (ns *Namespace) Dests() []string {
	out := make([]string, 0, len(ns.values))
	for dest := range ns.values {
		out = append(out, dest)
	}
	sort.Strings(out)
	return out
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (ns *Namespace) Clone() *Namespace {
	clone := NewNamespace()
	for dest, value := range ns.values {
		clone.values[dest] = cloneValue(value)
	}
	for dest, src := range ns.sources {
		clone.sources[dest] = src
	}
	clone.ExtendedDefaultEnable = slices.Clone(ns.ExtendedDefaultEnable)
	clone.ExtendedDefaultDisable = slices.Clone(ns.ExtendedDefaultDisable)
	clone.Filenames = slices.Clone(ns.Filenames)
	return clone
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case []string:
		return slices.Clone(v)
	case []any:
		return slices.Clone(v)
	default:
		return value
	}
}
