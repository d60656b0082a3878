package config

import "fmt"

// ConfigError reports a startup failure: unreadable config, invalid map,
// missing asset. Every ConfigError is fatal; nothing renders after one.
type ConfigError struct {
	Op   string // What was being done, e.g. "validate map"
	Path string // File involved, if any
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
