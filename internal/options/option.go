// Package options implements nitpick's runtime configuration resolution:
// sparse option specifications, the registry that collects them from the core
// tool and from plugins, and the aggregation pass that reconciles built-in
// defaults, config file values, and command-line arguments.
package options

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"nitpick/internal/fileutil"
)

// ActionKind selects how the engine reacts when a flag appears on the
// command line.
type ActionKind int

const (
	// ActionStore records the supplied value (the default action).
	ActionStore ActionKind = iota
	// ActionStoreTrue records true when the flag is present.
	ActionStoreTrue
	// ActionStoreConst records the option's Const value when present.
	ActionStoreConst
	// ActionCount increments an integer for every occurrence.
	ActionCount
	// ActionAppend accumulates one value per occurrence.
	ActionAppend
)

func (a ActionKind) String() string {
	switch a {
	case ActionStore:
		return "store"
	case ActionStoreTrue:
		return "store_true"
	case ActionStoreConst:
		return "store_const"
	case ActionCount:
		return "count"
	case ActionAppend:
		return "append"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// CoerceFunc converts a raw command-line or config string into the option's
// value type.
type CoerceFunc func(string) (any, error)

// field is a sparse attribute: a value plus whether it was explicitly set.
// Presence is tracked per field so an unset attribute is never projected
// into the engine registration, leaving the engine's own defaulting intact.
type field[T any] struct {
	value T
	set   bool
}

func setField[T any](v T) field[T] { return field[T]{value: v, set: true} }

// Option is the declarative description of one configurable setting: its
// command-line shape, optional config-file binding, and value-normalization
// behavior.
type Option struct {
	// Short and Long keep their flag prefixes as given ("-m",
	// "--max-line-length"). At least one is always present.
	Short string
	Long  string

	action   field[ActionKind]
	def      field[any]
	coerce   field[CoerceFunc]
	dest     field[string]
	nargs    field[int]
	constVal field[any]
	choices  field[[]string]
	help     field[string]
	metavar  field[string]
	required field[bool]

	// ParseFromConfig makes the option readable from a config file under
	// ConfigName.
	ParseFromConfig bool
	// CommaSeparatedList splits string values on commas before use.
	CommaSeparatedList bool
	// NormalizePaths resolves the value (or each list element) against a
	// base directory.
	NormalizePaths bool

	// ConfigName is the Long name with its flag prefix stripped. Empty
	// unless a long name exists.
	ConfigName string
}

// Setting configures one attribute of an Option under construction.
type Setting func(*Option)

// Action sets the engine action kind.
func Action(kind ActionKind) Setting { return func(o *Option) { o.action = setField(kind) } }

// Default sets the built-in default value.
func Default(value any) Setting { return func(o *Option) { o.def = setField(value) } }

// Type sets the value-coercion function applied to raw string input.
func Type(fn CoerceFunc) Setting { return func(o *Option) { o.coerce = setField(fn) } }

// Dest overrides the destination name derived from the flag names.
func Dest(name string) Setting { return func(o *Option) { o.dest = setField(name) } }

// NArgs records the argument count for the engine.
func NArgs(n int) Setting { return func(o *Option) { o.nargs = setField(n) } }

// Const sets the value stored by ActionStoreConst.
func Const(value any) Setting { return func(o *Option) { o.constVal = setField(value) } }

// Choices restricts accepted values.
func Choices(values ...string) Setting {
	return func(o *Option) { o.choices = setField(slices.Clone(values)) }
}

// Help sets the usage text.
func Help(text string) Setting { return func(o *Option) { o.help = setField(text) } }

// Metavar sets the display name used for the value in usage text.
func Metavar(name string) Setting { return func(o *Option) { o.metavar = setField(name) } }

// Required marks the option as mandatory on the command line.
func Required() Setting { return func(o *Option) { o.required = setField(true) } }

// ParseFromConfig makes the option readable from a config file.
func ParseFromConfig() Setting { return func(o *Option) { o.ParseFromConfig = true } }

// CommaSeparatedList splits string values on commas before use.
func CommaSeparatedList() Setting { return func(o *Option) { o.CommaSeparatedList = true } }

// NormalizePaths resolves values as filesystem paths against a base
// directory. When combined with CommaSeparatedList, splitting happens first
// and each element is normalized.
func NormalizePaths() Setting { return func(o *Option) { o.NormalizePaths = true } }

// New constructs an Option from its flag names and settings. When only one
// name is given and it carries the long-flag prefix it is treated as the
// long name regardless of position. Options readable from config must have
// a long name; that is validated here rather than at lookup time.
func New(short, long string, settings ...Setting) (*Option, error) {
	if long == "" && strings.HasPrefix(short, "--") {
		short, long = "", short
	}
	if short == "" && long == "" {
		return nil, fmt.Errorf("option needs a short or long flag name")
	}
	if short != "" && (!strings.HasPrefix(short, "-") || strings.HasPrefix(short, "--")) {
		return nil, fmt.Errorf("short option name %q must look like -x", short)
	}
	if long != "" && !strings.HasPrefix(long, "--") {
		return nil, fmt.Errorf("long option name %q must start with --", long)
	}

	o := &Option{Short: short, Long: long}
	for _, apply := range settings {
		apply(o)
	}

	if o.ParseFromConfig {
		if o.Long == "" {
			return nil, fmt.Errorf(
				"option %q: parse-from-config requires a long flag name", short)
		}
		o.ConfigName = strings.TrimPrefix(o.Long, "--")
	}

	return o, nil
}

// Dest returns the destination name: the explicit override when set,
// otherwise the long (or short) name stripped of dashes with hyphens
// mapped to underscores.
func (o *Option) Dest() string {
	if o.dest.set {
		return o.dest.value
	}
	name := o.Long
	if name == "" {
		name = o.Short
	}
	return strings.ReplaceAll(strings.TrimLeft(name, "-"), "-", "_")
}

// Action returns the effective action kind (ActionStore when unset).
func (o *Option) Action() ActionKind {
	if o.action.set {
		return o.action.value
	}
	return ActionStore
}

// DefaultValue returns the built-in default and whether one was declared.
func (o *Option) DefaultValue() (any, bool) { return o.def.value, o.def.set }

// IsRequired reports whether the option must appear on the command line.
func (o *Option) IsRequired() bool { return o.required.set && o.required.value }

// HelpText returns the usage text, empty when unset.
func (o *Option) HelpText() string { return o.help.value }

// Normalize applies the option's value transformations: comma splitting
// first, then path normalization of the value or of each list element.
// parents[0] is the base directory for relative paths (the current
// directory when omitted). Normalizing already-normalized input returns it
// unchanged.
func (o *Option) Normalize(value any, parents ...string) any {
	if o.CommaSeparatedList {
		if s, ok := value.(string); ok {
			value = fileutil.ParseCommaSeparatedList(s)
		}
	}
	if o.NormalizePaths {
		parent := "."
		if len(parents) > 0 {
			parent = parents[0]
		}
		switch v := value.(type) {
		case string:
			value = fileutil.NormalizePath(v, parent)
		case []string:
			value = fileutil.NormalizePaths(v, parent)
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				out = append(out, fileutil.NormalizePath(fmt.Sprint(item), parent))
			}
			value = out
		}
	}
	return value
}

// Attr names one engine-registration attribute in a projection.
type Attr string

const (
	AttrAction   Attr = "action"
	AttrDefault  Attr = "default"
	AttrType     Attr = "type"
	AttrDest     Attr = "dest"
	AttrNArgs    Attr = "nargs"
	AttrConst    Attr = "const"
	AttrChoices  Attr = "choices"
	AttrHelp     Attr = "help"
	AttrMetavar  Attr = "metavar"
	AttrRequired Attr = "required"
)

// Project returns the flag names and a mapping holding only the attributes
// that were explicitly set, ready for engine registration. Attributes left
// unset never appear, so the engine's own defaults stay in force.
func (o *Option) Project() ([]string, map[Attr]any) {
	var names []string
	if o.Short != "" {
		names = append(names, o.Short)
	}
	if o.Long != "" {
		names = append(names, o.Long)
	}

	attrs := make(map[Attr]any)
	if o.action.set {
		attrs[AttrAction] = o.action.value
	}
	if o.def.set {
		attrs[AttrDefault] = o.def.value
	}
	if o.coerce.set {
		attrs[AttrType] = o.coerce.value
	}
	if o.dest.set {
		attrs[AttrDest] = o.dest.value
	}
	if o.nargs.set {
		attrs[AttrNArgs] = o.nargs.value
	}
	if o.constVal.set {
		attrs[AttrConst] = o.constVal.value
	}
	if o.choices.set {
		attrs[AttrChoices] = o.choices.value
	}
	if o.help.set {
		attrs[AttrHelp] = o.help.value
	}
	if o.metavar.set {
		attrs[AttrMetavar] = o.metavar.value
	}
	if o.required.set {
		attrs[AttrRequired] = o.required.value
	}
	return names, attrs
}

// convert turns one raw string into the option's value: coercion, choice
// validation, then normalization against parent.
func (o *Option) convert(raw string, parent string) (any, error) {
	var value any = raw
	if o.coerce.set {
		converted, err := o.coerce.value(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", o.displayName(), err)
		}
		value = converted
	}
	if o.choices.set {
		if !slices.Contains(o.choices.value, fmt.Sprint(value)) {
			return nil, fmt.Errorf("invalid choice %q for %s (choose from %s)",
				raw, o.displayName(), strings.Join(o.choices.value, ", "))
		}
	}
	return o.Normalize(value, parent), nil
}

func (o *Option) displayName() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

func (o *Option) String() string {
	names, attrs := o.Project()
	parts := append([]string{}, names...)
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, attrs[Attr(k)]))
	}
	return fmt.Sprintf("Option(%s)", strings.Join(parts, ", "))
}
