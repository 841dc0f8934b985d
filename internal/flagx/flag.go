// Package flagx lets several config loaders share one command line: each
// loader parses only the flags it owns and ignores the rest.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

func flagName(arg string) string {
	name, _, _ := strings.Cut(strings.TrimLeft(arg, "-"), "=")
	return name
}

// FilterArgs returns the subset of args that belongs to the allowed flags,
// keeping their values and order. Flags match in "-name" or "--name" form,
// either as "-name value" or "-name=value". Parsing stops at "--".
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[flagName(f)] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		if _, ok := allowed[flagName(arg)]; !ok {
			continue
		}

		filtered = append(filtered, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		// a following non-flag token is this flag's value
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// JsonConfigFlags returns the config file path given by -c or -config, or ""
// when neither is present. When both appear the last one wins.
func JsonConfigFlags() string {
	var config string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	fs.SetOutput(io.Discard)
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c", "-config"}))

	return config
}
