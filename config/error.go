package config

import "fmt"

// Error represents a configuration load/validation failure.
type Error struct {
	reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("config error: %s", e.reason)
}
