package config

import "errors"

// ErrMissingConfiguration indicates a required connection variable is absent
// after all configuration sources have been applied.
var ErrMissingConfiguration = errors.New("missing required configuration")

// ErrUnknownEnvironment indicates an environment name that is not one of
// development, test, or production.
var ErrUnknownEnvironment = errors.New("unknown environment")
