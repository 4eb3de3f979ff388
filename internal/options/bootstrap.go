package options

import (
	"fmt"
	"strconv"
	"strings"

	"nitpick/internal/fileutil"
)

// Preliminary holds the result of the bootstrap parse: the few flags needed
// before config files and plugins exist, plus every token the bootstrap
// parser did not recognize, preserved verbatim for the full parse.
type Preliminary struct {
	Config         string
	AppendConfig   []string
	Isolated       bool
	Verbose        int
	OutputFile     string
	RequirePlugins []string

	// Rest is the argument vector remainder handed to the aggregator.
	Rest []string
}

// ParseBootstrap scans argv for the fixed early flag set. Anything
// unrecognized, and everything after a bare "--", is deferred to Rest
// untouched. Later occurrences of a scalar flag win. It fails only when an
// early flag is missing its argument or carries a malformed inline value.
func ParseBootstrap(argv []string) (Preliminary, error) {
	var p Preliminary

	take := func(i int, inline string, hasInline bool) (string, int, error) {
		if hasInline {
			return inline, i, nil
		}
		if i+1 < len(argv) {
			return argv[i+1], i + 1, nil
		}
		return "", i, fmt.Errorf("flag needs an argument: %s", argv[i])
	}

	for i := 0; i < len(argv); i++ {
		token := argv[i]

		if token == "--" {
			p.Rest = append(p.Rest, argv[i:]...)
			break
		}

		var err error
		name, inline, hasInline := splitToken(token)
		switch {
		case name == "--config":
			p.Config, i, err = take(i, inline, hasInline)
		case name == "--append-config":
			var value string
			value, i, err = take(i, inline, hasInline)
			if value != "" {
				p.AppendConfig = append(p.AppendConfig, value)
			}
		case name == "--isolated":
			p.Isolated = true
			if hasInline {
				p.Isolated, err = strconv.ParseBool(inline)
				if err != nil {
					err = fmt.Errorf("invalid boolean value %q for --isolated", inline)
				}
			}
		case name == "--output-file":
			p.OutputFile, i, err = take(i, inline, hasInline)
		case name == "--require-plugins":
			var value string
			value, i, err = take(i, inline, hasInline)
			p.RequirePlugins = append(p.RequirePlugins, fileutil.ParseCommaSeparatedList(value)...)
		case name == "--verbose" && !hasInline:
			p.Verbose++
		case isVerboseShort(token):
			p.Verbose += len(token) - 1
		default:
			p.Rest = append(p.Rest, token)
		}
		if err != nil {
			return Preliminary{}, err
		}
	}
	return p, nil
}

func splitToken(token string) (name, inline string, hasInline bool) {
	if !strings.HasPrefix(token, "--") {
		return token, "", false
	}
	if eq := strings.IndexByte(token, '='); eq >= 0 {
		return token[:eq], token[eq+1:], true
	}
	return token, "", false
}

// isVerboseShort matches -v, -vv, -vvv...
func isVerboseShort(token string) bool {
	if len(token) < 2 || token[0] != '-' || token[1] == '-' {
		return false
	}
	return strings.Count(token[1:], "v") == len(token)-1
}
