package domain

import "fmt"

// ConfigurationError indicates a required configuration value is missing.
// It is fatal: the operator must supply the value before retrying.
type ConfigurationError struct {
	Key         string
	Remediation string
}

func (e *ConfigurationError) Error() string {
	if e.Remediation != "" {
		return fmt.Sprintf("configuration error: %s is not set. %s", e.Key, e.Remediation)
	}
	return fmt.Sprintf("configuration error: %s is not set", e.Key)
}

// EmptyInputError indicates an operation was aborted before any write
// because it had nothing to work on (e.g. no work-log rows yet).
type EmptyInputError struct {
	What string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("no %s to process", e.What)
}
