// Package buildinfo carries the nitpick version and assembles the banner
// printed for --version and diagnostics.
package buildinfo

import (
	"fmt"
	"runtime"
)

// Version is the nitpick release version.
const Version = "0.4.0"

// Banner renders the full version line, including loaded plugin versions
// when any exist.
func Banner(pluginVersions string) string {
	if pluginVersions == "" {
		return fmt.Sprintf("%s %s %s/%s", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("%s (%s) %s %s/%s",
		Version, pluginVersions, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
