package options

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"nitpick/internal/plugins"
)

// OptionSink is the registration surface handed to option contributors. The
// registry implements it for top-level options; plugin registration works
// through a group-scoped wrapper.
type OptionSink interface {
	// AddOption builds an Option from the given names and settings and
	// registers it.
	AddOption(short, long string, settings ...Setting) error
	// ExtendDefaultEnable appends check codes to the default-enable list.
	ExtendDefaultEnable(codes []string)
	// ExtendDefaultDisable appends check codes to the default-disable list.
	ExtendDefaultDisable(codes []string)
}

// Contributor is implemented by plugin objects that register options.
type Contributor interface {
	AddOptions(sink OptionSink) error
}

// PostProcessor is implemented by plugin objects that inspect or adjust the
// final resolved configuration.
type PostProcessor interface {
	ParseOptions(reg *Registry, ns *Namespace, filenames []string) error
}

// Group is a named section of options contributed by one plugin package.
type Group struct {
	Name    string
	options []*Option
}

// Config describes Registry construction parameters.
type Config struct {
	Prog           string
	Version        string
	PluginVersions string
	Logger         *slog.Logger
}

// Registry collects option specifications from the core tool and from
// plugins, registers their flag projections with the parsing engine, and
// parses argument vectors against them.
type Registry struct {
	prog           string
	version        string
	pluginVersions string
	logger         *slog.Logger

	options  []*Option
	topLevel []*Option

	// configIndex maps both underscore and hyphen spellings of each
	// config name to its option.
	configIndex map[string]*Option
	destIndex   map[string]*Option

	groups     []*Group
	groupIndex map[string]*Group

	extendedDefaultEnable  []string
	extendedDefaultDisable []string
}

// NewRegistry constructs an empty registry.
func NewRegistry(cfg Config) *Registry {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	prog := cfg.Prog
	if prog == "" {
		prog = "nitpick"
	}
	return &Registry{
		prog:           prog,
		version:        cfg.Version,
		pluginVersions: cfg.PluginVersions,
		logger:         logger,
		configIndex:    make(map[string]*Option),
		destIndex:      make(map[string]*Option),
		groupIndex:     make(map[string]*Group),
	}
}

// Version returns the version banner line, including plugin versions when
// any plugin is loaded.
func (r *Registry) Version() string {
	if r.pluginVersions == "" {
		return r.version
	}
	return fmt.Sprintf("%s (%s)", r.version, r.pluginVersions)
}

// AddOption registers a top-level option. See New for the name contract.
func (r *Registry) AddOption(short, long string, settings ...Setting) error {
	return r.addOption(nil, short, long, settings...)
}

func (r *Registry) addOption(group *Group, short, long string, settings ...Setting) error {
	o, err := New(short, long, settings...)
	if err != nil {
		return err
	}

	r.options = append(r.options, o)
	if group != nil {
		group.options = append(group.options, o)
	} else {
		r.topLevel = append(r.topLevel, o)
	}

	r.destIndex[o.Dest()] = o
	if o.ParseFromConfig {
		name := o.ConfigName
		r.configIndex[strings.ReplaceAll(name, "-", "_")] = o
		r.configIndex[strings.ReplaceAll(name, "_", "-")] = o
	}

	r.logger.Debug("registered option", "option", o.String(), "group", groupName(group))
	return nil
}

func groupName(group *Group) string {
	if group == nil {
		return ""
	}
	return group.Name
}

// group returns the named group, creating it on first reference.
func (r *Registry) group(name string) *Group {
	if g, ok := r.groupIndex[name]; ok {
		return g
	}
	g := &Group{Name: name}
	r.groupIndex[name] = g
	r.groups = append(r.groups, g)
	return g
}

// groupSink scopes an OptionSink to one group. The group travels with the
// sink instead of living on the registry, so one plugin's registration can
// never leak into another's.
type groupSink struct {
	reg   *Registry
	group *Group
}

func (s *groupSink) AddOption(short, long string, settings ...Setting) error {
	return s.reg.addOption(s.group, short, long, settings...)
}

func (s *groupSink) ExtendDefaultEnable(codes []string)  { s.reg.ExtendDefaultEnable(codes) }
func (s *groupSink) ExtendDefaultDisable(codes []string) { s.reg.ExtendDefaultDisable(codes) }

// RegisterPlugins absorbs every loaded plugin, one at a time: contributed
// options land in a group named after the plugin's package, and every
// check-providing plugin's entry name extends the default-enable list
// whether or not it registered options.
func (r *Registry) RegisterPlugins(ps *plugins.Plugins) error {
	for _, loaded := range ps.All() {
		if contributor, ok := loaded.Obj.(Contributor); ok {
			sink := &groupSink{reg: r, group: r.group(loaded.Plugin.Package)}
			if err := contributor.AddOptions(sink); err != nil {
				return fmt.Errorf("plugin %s: %w", loaded.Plugin.Package, err)
			}
		}
		if loaded.Plugin.Kind == plugins.KindChecker {
			r.ExtendDefaultEnable([]string{loaded.Plugin.EntryName})
		}
	}
	return nil
}

// ExtendDefaultEnable appends codes to the default-enable list. Append-only:
// duplicates are preserved by contract.
func (r *Registry) ExtendDefaultEnable(codes []string) {
	r.logger.Debug("extending default enable list", "codes", fmt.Sprint(codes))
	r.extendedDefaultEnable = append(r.extendedDefaultEnable, codes...)
}

// ExtendDefaultDisable appends codes to the default-disable list.
func (r *Registry) ExtendDefaultDisable(codes []string) {
	r.logger.Debug("extending default disable list", "codes", fmt.Sprint(codes))
	r.extendedDefaultDisable = append(r.extendedDefaultDisable, codes...)
}

// ConfigOption returns the option registered under the given config-file
// key, accepting underscore and hyphen spellings alike.
func (r *Registry) ConfigOption(key string) (*Option, bool) {
	o, ok := r.configIndex[key]
	return o, ok
}

// DestOption returns the option owning the given destination name.
func (r *Registry) DestOption(dest string) (*Option, bool) {
	o, ok := r.destIndex[dest]
	return o, ok
}

// ConfigNames returns every registered config-index key.
func (r *Registry) ConfigNames() []string {
	out := make([]string, 0, len(r.configIndex))
	for name := range r.configIndex {
		out = append(out, name)
	}
	return out
}

// Parse parses args against the registered options. When prior is non-nil,
// each of its values becomes the default for the corresponding destination
// before parsing; this is how config-file values are layered beneath the
// command line. Positional arguments land in the result's Filenames.
func (r *Registry) Parse(args []string, prior *Namespace) (*Namespace, error) {
	var ns *Namespace
	if prior != nil {
		ns = prior.Clone()
	} else {
		ns = NewNamespace()
		for _, o := range r.options {
			if def, ok := o.DefaultValue(); ok {
				ns.set(o.Dest(), cloneValue(def), SourceDefault)
			}
		}
	}

	fs := pflag.NewFlagSet(r.prog, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() { fmt.Fprint(os.Stderr, r.Usage()) }
	for _, o := range r.options {
		addToFlagSet(fs, o, ns)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	for _, o := range r.options {
		if o.IsRequired() && ns.Origin(o.Dest()) != SourceCommandLine {
			return nil, fmt.Errorf("%s: option %s is required", r.prog, o.displayName())
		}
	}

	ns.Filenames = fs.Args()
	return ns, nil
}

// Usage renders the synopsis and option help, preserving registration order
// and grouping plugin-contributed options under their package name.
func (r *Registry) Usage() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "usage: %s [options] file file ...\n", r.prog)

	writeSection := func(title string, opts []*Option) {
		if len(opts) == 0 {
			return
		}
		fs := pflag.NewFlagSet(r.prog, pflag.ContinueOnError)
		fs.SortFlags = false
		scratch := NewNamespace()
		for _, o := range opts {
			addToFlagSet(fs, o, scratch)
		}
		if title != "" {
			fmt.Fprintf(&buf, "\n%s:\n", title)
		} else {
			buf.WriteString("\noptions:\n")
		}
		buf.WriteString(fs.FlagUsages())
	}

	writeSection("", r.topLevel)
	for _, g := range r.groups {
		writeSection(g.Name, g.options)
	}
	return buf.String()
}
