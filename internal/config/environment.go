package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment selects which configuration sources apply for a command
// invocation. It is resolved once at startup and never changes for the
// lifetime of the process.
type Environment string

// The three environments the application can run in.
const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

// EnvironmentVar is the process variable consulted when no environment
// flag is passed.
const EnvironmentVar = "APP_ENVIRONMENT"

// ParseEnvironment parses an environment name. Short and long spellings
// are accepted ("dev", "development", "test", "prod", "production"),
// case-insensitively.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(s) {
	case "dev", "development":
		return Development, nil
	case "test":
		return Test, nil
	case "prod", "production":
		return Production, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
	}
}

// CurrentEnvironment returns the environment from APP_ENVIRONMENT, or
// Development if the variable is not set.
func CurrentEnvironment() (Environment, error) {
	v, ok := os.LookupEnv(EnvironmentVar)
	if !ok {
		return Development, nil
	}

	return ParseEnvironment(v)
}
