package core

// errors.go defines the error kinds the pipeline distinguishes.
//
// Three of them are fatal and unwind the whole run:
//   - ConfigurationError: an input (spreadsheet, schema script, store) is
//     missing or unusable before any write happens, or a natural key is
//     ambiguous.
//   - ValidationError: an enumerated value failed translation. This is
//     batch-fatal because it points at a source-data or mapping defect
//     that would otherwise silently corrupt an entity's meaning.
//   - LoadError: the store rejected a write.
//
// Row-level problems (missing required field, unresolved foreign key) are
// not errors at all: the row is dropped and counted in a FilterReport.

import "fmt"

// ConfigurationError is a fatal setup problem detected before writes.
type ConfigurationError struct {
	Path   string // offending file path, if any
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := "configuration: " + e.Reason
	if e.Path != "" {
		msg = fmt.Sprintf("configuration: %s: %s", e.Path, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ValidationError invalidates an entire entity batch.
type ValidationError struct {
	Entity  Entity
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s %q: %s", e.Entity, e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Entity, e.Field, e.Message)
}

// LoadError wraps a store rejection during an append.
type LoadError struct {
	Entity Entity
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Entity, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
