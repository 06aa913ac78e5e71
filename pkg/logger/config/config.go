package config

import (
	"fmt"
	"time"
)

// levels follow zapcore: -1 debug up to 5 fatal.
const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
	DPANIC_LEVEL
	PANIC_LEVEL
	FATAL_LEVEL
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > FATAL_LEVEL {
		return fmt.Errorf("LOG_LEVEL must be between %d and %d, got %d", DEBUG_LEVEL, FATAL_LEVEL, c.Level)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("LOG_TIME_FORMAT must not be empty")
	}
	// a layout without any reference field formats every timestamp to the same string
	if time.Unix(0, 0).UTC().Format(c.TimeFormat) == time.Unix(86400*400+3723, 0).UTC().Format(c.TimeFormat) {
		return fmt.Errorf("LOG_TIME_FORMAT %q is not a time layout", c.TimeFormat)
	}
	return nil
}
