package errors

import (
	"fmt"
)

// ValidationError captures card validation issues surfaced on save.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// GenerationError represents a malformed or incomplete response from the
// item generator.
type GenerationError struct {
	Topic   string
	Message string
	Err     error
}

// NewGenerationError constructs a GenerationError for the given topic.
func NewGenerationError(topic string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &GenerationError{Topic: topic, Message: message, Err: err}
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Topic != "" {
		return fmt.Sprintf("generation error for topic %q: %s", e.Topic, e.Message)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *GenerationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigError indicates missing or invalid configuration, such as an absent
// generator credential. It aborts only the operation that needs the value.
type ConfigError struct {
	Key     string
	Message string
	Err     error
}

// NewConfigError constructs a ConfigError.
func NewConfigError(key, message string, err error) error {
	return &ConfigError{Key: key, Message: message, Err: err}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("config error: %s: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StorageError represents a failure while reading or writing the card
// library or progress files. Reads recover locally; writes are best-effort
// and only logged.
type StorageError struct {
	Path string
	Op   string
	Err  error
}

// NewStorageError constructs a StorageError for the given file operation.
func NewStorageError(op, path string, err error) error {
	return &StorageError{Op: op, Path: path, Err: err}
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the root error.
func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
