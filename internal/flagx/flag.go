// Package flagx contains helpers for parsing command-line flags without
// interfering with flags owned by other packages.
package flagx

import "strings"

// FilterArgs returns only the arguments that belong to the allowed flags,
// together with their values.
//
// Supported forms:
//  1. Flag and value as separate arguments:  -d dsn
//  2. Flag and value combined with '=':      -d=dsn
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	// Always return a non-nil slice so callers can pass it to flag.Parse.
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// "-flag=value" form: keep the whole argument if the name is allowed.
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		// Separate "-flag value" form: the next argument is the value unless
		// it looks like another flag.
		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}
