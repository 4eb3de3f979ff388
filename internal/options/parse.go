package options

import (
	"fmt"

	"github.com/google/uuid"

	"nitpick/internal/buildinfo"
	"nitpick/internal/config"
	"nitpick/internal/logging"
	"nitpick/internal/plugins"
)

// ParseArgs runs the full startup sequence: bootstrap parse, config load,
// plugin resolution, option registration, aggregation, and plugin
// post-processing. It returns the final namespace together with the loaded
// plugins. The ordering is load-bearing: a required-but-missing plugin
// aborts before any option is registered, and the registry must have
// absorbed every plugin before aggregation records the extended default
// lists.
func ParseArgs(argv []string, index *plugins.Index) (*Namespace, *plugins.Plugins, error) {
	prelim, err := ParseBootstrap(argv)
	if err != nil {
		return nil, nil, err
	}

	rest := prelim.Rest
	if prelim.OutputFile != "" {
		// The redirection target doubles as one positional filename for
		// the full parse.
		rest = append(rest, prelim.OutputFile)
	}

	logger := logging.Configure(prelim.Verbose).With("session_id", uuid.NewString())

	cfg, cfgDir, err := config.Load(config.LoadOptions{
		Path:     prelim.Config,
		Extra:    prelim.AppendConfig,
		Isolated: prelim.Isolated,
	})
	if err != nil {
		return nil, nil, err
	}

	pluginOpts := plugins.ParseOptions(cfg, prelim.RequirePlugins)
	entries, err := index.Find(pluginOpts)
	if err != nil {
		return nil, nil, err
	}
	loaded := plugins.Load(entries)

	reg := NewRegistry(Config{
		Prog:           "nitpick",
		Version:        buildinfo.Version,
		PluginVersions: loaded.Versions(),
		Logger:         logger,
	})
	if err := RegisterDefaultOptions(reg); err != nil {
		return nil, nil, err
	}
	if err := reg.RegisterPlugins(loaded); err != nil {
		return nil, nil, err
	}

	ns, err := Aggregate(reg, cfg, cfgDir, rest)
	if err != nil {
		return nil, nil, err
	}

	for _, plugin := range loaded.All() {
		processor, ok := plugin.Obj.(PostProcessor)
		if !ok {
			continue
		}
		// Hook failures are deliberately not contained here; a plugin
		// that cannot accept the resolved configuration aborts the run.
		if err := processor.ParseOptions(reg, ns, ns.Filenames); err != nil {
			return nil, nil, fmt.Errorf("plugin %s: %w", plugin.Plugin.Package, err)
		}
	}

	return ns, loaded, nil
}
