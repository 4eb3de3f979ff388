package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// tableName is the TOML table nitpick settings live under.
const tableName = "nitpick"

// candidateNames are tried, in order, in the working directory.
var candidateNames = []string{".nitpick.toml", "nitpick.toml"}

// LoadOptions controls config discovery for one invocation.
type LoadOptions struct {
	// Path is the explicit config file from --config; discovery is skipped
	// when set and the file must exist and contain a [nitpick] table.
	Path string
	// Extra lists --append-config files merged on top of the main file.
	Extra []string
	// Isolated disables config loading entirely.
	Isolated bool
}

// Load resolves the configuration mapping for this invocation and the
// directory of the file that supplied it, used later as the base for
// relative path values. A missing discovered config is not an error: the
// mapping is just empty and the base directory is the working directory.
func Load(opts LoadOptions) (map[string]any, string, error) {
	values := make(map[string]any)
	cfgDir := "."

	if opts.Isolated {
		slog.Debug("config loading skipped", "reason", "isolated mode")
		return values, cfgDir, nil
	}

	if opts.Path != "" {
		table, err := readFile(opts.Path)
		if err != nil {
			return nil, "", err
		}
		if table == nil {
			return nil, "", fmt.Errorf("config file %s has no [%s] table", opts.Path, tableName)
		}
		mergeInto(values, table)
		cfgDir = filepath.Dir(absolute(opts.Path))
	} else {
		path, table, err := discover()
		if err != nil {
			return nil, "", err
		}
		if table != nil {
			slog.Debug("using config file", "path", path)
			mergeInto(values, table)
			cfgDir = filepath.Dir(path)
		}
	}

	for _, extra := range opts.Extra {
		table, err := readFile(extra)
		if err != nil {
			return nil, "", err
		}
		if table == nil {
			return nil, "", fmt.Errorf("config file %s has no [%s] table", extra, tableName)
		}
		slog.Debug("layering extra config file", "path", extra)
		mergeInto(values, table)
	}

	return values, cfgDir, nil
}

// discover walks the candidate locations and returns the first file with a
// [nitpick] table. Files without the table are skipped, not errors.
func discover() (string, map[string]any, error) {
	var candidates []string
	for _, name := range candidateNames {
		candidates = append(candidates, name)
	}
	if userDir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(userDir, "nitpick", "nitpick.toml"))
	}

	for _, path := range candidates {
		table, err := readFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", nil, err
		}
		if table == nil {
			continue
		}
		return absolute(path), table, nil
	}
	return "", nil, nil
}

// readFile parses one TOML file and returns its [nitpick] table, or nil
// when the file has none.
func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var document map[string]any
	if err := toml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	raw, ok := document[tableName]
	if !ok {
		return nil, nil
	}
	table, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("config file %s: [%s] is not a table", path, tableName)
	}
	return table, nil
}

// mergeInto copies scalar and array values, skipping nested tables; later
// files override earlier ones key by key.
func mergeInto(dst, src map[string]any) {
	for key, value := range src {
		if _, nested := value.(map[string]any); nested {
			slog.Debug("ignoring nested config table", "key", key)
			continue
		}
		dst[key] = value
	}
}

func absolute(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
