package options

import (
	"strconv"
)

// IntType coerces raw flag or config strings to int.
func IntType(raw string) (any, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// defaultExclude is the built-in directory exclusion list.
var defaultExclude = []string{".git", ".hg", ".svn", "vendor", "node_modules"}

// RegisterDefaultOptions registers nitpick's built-in option set. The early
// bootstrap flags appear again here so the full parse accepts them and
// usage text stays complete; their values were already consumed where it
// mattered.
func RegisterDefaultOptions(reg *Registry) error {
	builtins := []struct {
		short, long string
		settings    []Setting
	}{
		{"", "--version", []Setting{
			Action(ActionStoreTrue), Default(false),
			Help("print version information and exit"),
		}},
		{"-v", "--verbose", []Setting{
			Action(ActionCount), Default(0),
			Help("print more information about what nitpick is doing; repeatable"),
		}},
		{"-q", "--quiet", []Setting{
			Action(ActionCount), Default(0), ParseFromConfig(),
			Help("report less output; repeatable"),
		}},
		{"", "--color", []Setting{
			Default("auto"), Choices("auto", "always", "never"), ParseFromConfig(),
			Help("whether to use color in output"), Metavar("when"),
		}},
		{"", "--count", []Setting{
			Action(ActionStoreTrue), Default(false), ParseFromConfig(),
			Help("print the total number of findings"),
		}},
		{"", "--exit-zero", []Setting{
			Action(ActionStoreTrue), Default(false),
			Help("exit with status 0 even when findings exist"),
		}},
		{"", "--config", []Setting{
			Help("path to the config file to use instead of searching"),
			Metavar("path"),
		}},
		{"", "--append-config", []Setting{
			Action(ActionAppend),
			Help("additional config file to layer on top of the discovered one; repeatable"),
			Metavar("path"),
		}},
		{"", "--isolated", []Setting{
			Action(ActionStoreTrue), Default(false),
			Help("ignore every config file"),
		}},
		{"", "--require-plugins", []Setting{
			Default([]string{}), CommaSeparatedList(), ParseFromConfig(),
			Help("plugins that must be installed for this run to proceed"),
			Metavar("names"),
		}},
		{"", "--output-file", []Setting{
			ParseFromConfig(),
			Help("redirect report output to a file"), Metavar("path"),
		}},
		{"", "--enable", []Setting{
			Default([]string{}), CommaSeparatedList(), ParseFromConfig(),
			Help("check codes to enable, replacing the default set"),
			Metavar("codes"),
		}},
		{"", "--extend-enable", []Setting{
			Default([]string{}), CommaSeparatedList(), ParseFromConfig(),
			Help("check codes to enable in addition to the default set"),
			Metavar("codes"),
		}},
		{"", "--disable", []Setting{
			Default([]string{}), CommaSeparatedList(), ParseFromConfig(),
			Help("check codes to disable, replacing the default set"),
			Metavar("codes"),
		}},
		{"", "--extend-disable", []Setting{
			Default([]string{}), CommaSeparatedList(), ParseFromConfig(),
			Help("check codes to disable in addition to the default set"),
			Metavar("codes"),
		}},
		{"", "--max-line-length", []Setting{
			Type(IntType), Default(79), ParseFromConfig(),
			Help("maximum allowed line length"), Metavar("n"),
		}},
		{"", "--filename", []Setting{
			Default([]string{"*"}), CommaSeparatedList(), ParseFromConfig(),
			Help("only check files matching these patterns"), Metavar("patterns"),
		}},
		{"", "--exclude", []Setting{
			Default(defaultExclude), CommaSeparatedList(), NormalizePaths(), ParseFromConfig(),
			Help("paths to skip, replacing the default exclusions"), Metavar("paths"),
		}},
		{"", "--extend-exclude", []Setting{
			Default([]string{}), CommaSeparatedList(), NormalizePaths(), ParseFromConfig(),
			Help("paths to skip in addition to the default exclusions"), Metavar("paths"),
		}},
		{"-j", "--jobs", []Setting{
			Type(IntType), Default(0), ParseFromConfig(),
			Help("number of parallel check workers, 0 picks automatically"), Metavar("n"),
		}},
	}

	for _, b := range builtins {
		if err := reg.AddOption(b.short, b.long, b.settings...); err != nil {
			return err
		}
	}
	return nil
}
