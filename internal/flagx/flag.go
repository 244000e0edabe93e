// Package flagx pre-parses raw command-line arguments before the command
// tree runs, so configuration can be loaded ahead of flag binding.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// configFlags are the spellings accepted for the JSON config path.
var configFlags = []string{"-c", "--config"}

// FilterArgs returns the subset of args made of the flags named in
// allowedFlags together with their values.
//
// Both "-c conf.json" and "--config=conf.json" forms are kept. A value is
// only taken from the next argument when it does not itself start with "-".
// Everything else, including positional arguments, is dropped.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for rest := args; len(rest) > 0 && rest[0] != "--"; rest = rest[1:] {
		name, _, inline := strings.Cut(rest[0], "=")
		if !strings.HasPrefix(name, "-") {
			continue
		}
		if _, ok := allowed[name]; !ok {
			continue
		}

		filtered = append(filtered, rest[0])
		if !inline && len(rest) > 1 && !strings.HasPrefix(rest[1], "-") {
			filtered = append(filtered, rest[1])
			rest = rest[1:]
		}
	}

	return filtered
}

// JsonConfigFlags extracts the config file path given with -c or --config
// from args. The last occurrence wins; "" means none was given.
func JsonConfigFlags(args []string) string {
	var config string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, configFlags))

	return config
}
