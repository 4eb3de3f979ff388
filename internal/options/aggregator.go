package options

import (
	"slices"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Aggregate reconciles built-in defaults, config-file values, and the
// command line into the final namespace. Precedence: explicit command-line
// value > config-file value > built-in default.
//
// The argument vector is parsed twice. The first pass yields every
// destination at its built-in default unless given on the command line;
// config values then overwrite the merged defaults; the second pass over
// the same vector lets explicitly supplied flags win while untouched
// destinations keep their config-merged values. No separate "was this flag
// supplied" bookkeeping is needed.
func Aggregate(reg *Registry, cfg map[string]any, cfgDir string, argv []string) (*Namespace, error) {
	defaults, err := reg.Parse(argv, nil)
	if err != nil {
		return nil, err
	}

	defaults.ExtendedDefaultEnable = slices.Clone(reg.extendedDefaultEnable)
	defaults.ExtendedDefaultDisable = slices.Clone(reg.extendedDefaultDisable)

	for _, entry := range parseConfig(reg, cfg, cfgDir) {
		previous, _ := defaults.Get(entry.dest)
		reg.logger.Debug("overriding default value from config",
			"dest", entry.dest, "old", previous, "new", entry.value)
		defaults.set(entry.dest, entry.value, SourceConfig)
	}

	return reg.Parse(argv, defaults)
}

type configEntry struct {
	dest  string
	value any
}

// parseConfig resolves the raw config mapping against the registry. Keys
// matching a registered config name get that option's coercion and
// normalization (relative paths resolve against cfgDir); every other key
// passes through as an opaque destination override. Entries come back in
// sorted key order so override logging is stable.
func parseConfig(reg *Registry, cfg map[string]any, cfgDir string) []configEntry {
	keys := make([]string, 0, len(cfg))
	for key := range cfg {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]configEntry, 0, len(keys))
	for _, key := range keys {
		raw := cfg[key]
		if o, ok := reg.ConfigOption(key); ok {
			value := raw
			if s, isString := raw.(string); isString && o.coerce.set {
				if converted, err := o.coerce.value(s); err == nil {
					value = converted
				}
			}
			entries = append(entries, configEntry{dest: o.Dest(), value: o.Normalize(value, cfgDir)})
			continue
		}

		dest := strings.ReplaceAll(key, "-", "_")
		if _, ok := reg.DestOption(dest); !ok {
			suggestConfigKey(reg, key)
		}
		entries = append(entries, configEntry{dest: dest, value: raw})
	}
	return entries
}

// suggestConfigKey logs the closest registered config name for a key that
// matched nothing. Purely observational.
func suggestConfigKey(reg *Registry, key string) {
	matches := fuzzy.Find(key, reg.ConfigNames())
	if len(matches) == 0 {
		reg.logger.Debug("unknown config key passed through", "key", key)
		return
	}
	reg.logger.Debug("unknown config key passed through",
		"key", key, "closest", matches[0].Str)
}
