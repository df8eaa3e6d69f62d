package locomotion

import "fmt"

// ConfigurationError reports a missing collaborator or an unusable setting.
// It is returned at construction time; no update runs with a bad configuration.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("locomotion: invalid configuration: %s: %s", e.Field, e.Reason)
}

func configError(field, reason string) error {
	return &ConfigurationError{Field: field, Reason: reason}
}
