package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// countSentinel is the no-argument value pflag hands a count-style flag for
// each bare occurrence, matching pflag's own count flags.
const countSentinel = "+1"

// engineValue adapts one Option onto pflag's Value interface. Every Set
// writes straight into the namespace under the option's destination with
// command-line provenance. occurrences counts Sets within this parse so
// count and append flags accumulate per argument vector instead of on top
// of values inherited from an earlier layer.
type engineValue struct {
	opt         *Option
	ns          *Namespace
	occurrences int
}

func (v *engineValue) Set(raw string) error {
	o := v.opt
	dest := o.Dest()
	v.occurrences++

	switch o.Action() {
	case ActionStoreTrue:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", o.displayName(), err)
		}
		v.ns.set(dest, b, SourceCommandLine)
	case ActionStoreConst:
		value := any(true)
		if o.constVal.set {
			value = o.constVal.value
		}
		v.ns.set(dest, value, SourceCommandLine)
	case ActionCount:
		if raw == countSentinel {
			current := 0
			if v.occurrences > 1 {
				current = v.ns.Int(dest)
			}
			v.ns.set(dest, current+1, SourceCommandLine)
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid count for %s: %w", o.displayName(), err)
		}
		v.ns.set(dest, n, SourceCommandLine)
	case ActionAppend:
		value, err := o.convert(raw, ".")
		if err != nil {
			return err
		}
		var current []any
		if v.occurrences > 1 {
			if prev, ok := v.ns.values[dest].([]any); ok {
				current = prev
			}
		}
		v.ns.set(dest, append(current, value), SourceCommandLine)
	default:
		value, err := o.convert(raw, ".")
		if err != nil {
			return err
		}
		v.ns.set(dest, value, SourceCommandLine)
	}
	return nil
}

func (v *engineValue) String() string {
	if value, ok := v.ns.Get(v.opt.Dest()); ok && value != nil {
		return fmt.Sprint(value)
	}
	return ""
}

func (v *engineValue) Type() string {
	o := v.opt
	if o.metavar.set {
		return o.metavar.value
	}
	switch o.Action() {
	case ActionStoreTrue, ActionStoreConst, ActionCount:
		return ""
	default:
		return "value"
	}
}

// addToFlagSet registers the option on fs, binding parsed values to ns.
func addToFlagSet(fs *pflag.FlagSet, o *Option, ns *Namespace) {
	name := strings.TrimPrefix(o.Long, "--")
	shorthand := strings.TrimPrefix(o.Short, "-")
	if name == "" {
		// Short-only options are exposed under their letter.
		name = shorthand
	}

	flag := fs.VarPF(&engineValue{opt: o, ns: ns}, name, shorthand, o.HelpText())
	switch o.Action() {
	case ActionStoreTrue, ActionStoreConst:
		flag.NoOptDefVal = "true"
	case ActionCount:
		flag.NoOptDefVal = countSentinel
	}
	if def, ok := o.DefaultValue(); ok {
		flag.DefValue = fmt.Sprint(def)
	}
}
