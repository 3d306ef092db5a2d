package config

import (
	"fmt"
	"strings"
)

// ConfigError collects everything wrong with one config file so it can be
// reported at once.
type ConfigError struct {
	Path    string
	Missing []string // unresolved ${VAR} references, with their :? messages
	Errors  []string // Validate output
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "missing environment variables: %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Errors) > 0 {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("validation failed:")
		for _, msg := range e.Errors {
			b.WriteString("\n  - ")
			b.WriteString(msg)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	if e.Path != "" {
		return e.Path + ": " + b.String()
	}
	return b.String()
}
