// Package checks holds nitpick's built-in check plugins. Each is a regular
// plugin entry: it registers through the same index and contributes options
// through the same hooks as an external plugin would, which keeps the
// plugin surface honest.
package checks

import (
	"fmt"

	"nitpick/internal/buildinfo"
	"nitpick/internal/options"
	"nitpick/internal/plugins"
)

// RegisterBuiltins adds the built-in plugin entries to the index.
func RegisterBuiltins(ix *plugins.Index) {
	ix.Register(plugins.Entry{
		Plugin: plugins.Plugin{
			Package:   "nitpick-complexity",
			Version:   buildinfo.Version,
			EntryName: "C90",
			Kind:      plugins.KindChecker,
		},
		New: func() any { return &Complexity{} },
	})
	ix.Register(plugins.Entry{
		Plugin: plugins.Plugin{
			Package:   "nitpick-whitespace",
			Version:   buildinfo.Version,
			EntryName: "W10",
			Kind:      plugins.KindChecker,
		},
		New: func() any { return &Whitespace{} },
	})
	ix.Register(plugins.Entry{
		Plugin: plugins.Plugin{
			Package:   "nitpick-text",
			Version:   buildinfo.Version,
			EntryName: "text",
			Kind:      plugins.KindReporter,
		},
		New: func() any { return &TextReporter{} },
	})
}

// Complexity flags functions whose cyclomatic complexity exceeds a bound.
// Disabled until --max-complexity is raised above its -1 default.
type Complexity struct {
	Max int
}

// AddOptions contributes the complexity threshold option.
func (c *Complexity) AddOptions(sink options.OptionSink) error {
	return sink.AddOption("", "--max-complexity",
		options.Type(options.IntType),
		options.Default(-1),
		options.ParseFromConfig(),
		options.Help("maximum allowed cyclomatic complexity, -1 disables the check"),
		options.Metavar("n"),
	)
}

// ParseOptions captures the resolved threshold.
func (c *Complexity) ParseOptions(_ *options.Registry, ns *options.Namespace, _ []string) error {
	c.Max = ns.Int("max_complexity")
	if c.Max < -1 {
		return fmt.Errorf("max-complexity must be -1 or greater, got %d", c.Max)
	}
	return nil
}

// Whitespace flags trailing whitespace and tab/space mixing. It contributes
// no options of its own; loading it is enough to enable its codes.
type Whitespace struct{}

// TextReporter renders findings as plain text lines.
type TextReporter struct{}
