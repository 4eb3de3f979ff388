// Package debug gathers the information printed for bug reports.
package debug

import (
	"runtime"
	"sort"

	"nitpick/internal/plugins"
)

// PluginInfo is one loaded plugin's identity.
type PluginInfo struct {
	Plugin  string `json:"plugin"`
	Version string `json:"version"`
}

// Platform describes the runtime nitpick is executing on.
type Platform struct {
	GoVersion string `json:"go_version"`
	System    string `json:"system"`
	Arch      string `json:"arch"`
}

// Information is the full bug-report payload.
type Information struct {
	Version  string       `json:"version"`
	Plugins  []PluginInfo `json:"plugins"`
	Platform Platform     `json:"platform"`
}

// Collect assembles the bug-report information for the given version and
// loaded plugins. Plugin entries are deduplicated by package and sorted.
func Collect(version string, loaded *plugins.Plugins) Information {
	seen := make(map[PluginInfo]struct{})
	infos := make([]PluginInfo, 0, len(loaded.All()))
	for _, plugin := range loaded.All() {
		info := PluginInfo{Plugin: plugin.Plugin.Package, Version: plugin.Plugin.Version}
		if _, ok := seen[info]; ok {
			continue
		}
		seen[info] = struct{}{}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Plugin != infos[j].Plugin {
			return infos[i].Plugin < infos[j].Plugin
		}
		return infos[i].Version < infos[j].Version
	})

	return Information{
		Version: version,
		Plugins: infos,
		Platform: Platform{
			GoVersion: runtime.Version(),
			System:    runtime.GOOS,
			Arch:      runtime.GOARCH,
		},
	}
}
