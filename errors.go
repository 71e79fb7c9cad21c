package hwinfo

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [Provider] collectors and recorded in [DiagnosticInfo.Errors].
var (
	// ErrUnsupportedPlatform is returned by the default [Host] on platforms
	// without a uname facility.
	ErrUnsupportedPlatform = errors.New("platform not supported")

	// ErrNotFound is returned when a value is missing from command output,
	// system files, or OS queries.
	ErrNotFound = errors.New("value not found")

	// ErrEmptyValue is returned when an OS query succeeded but produced an
	// empty value.
	ErrEmptyValue = errors.New("empty value returned")

	// ErrUnknownLanguage is returned by [CatalogFor] for an unsupported language code.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrUnknownBorder is returned by [ParseBorder] for an unsupported border name.
	ErrUnknownBorder = errors.New("unknown border style")
)

// CommandError records a failed system command execution.
// Use [errors.As] to extract the command name from wrapped errors.
type CommandError struct {
	Command string // command name, e.g. "lscpu", "lsblk", "lspci"
	Err     error  // underlying error from exec
}

// Error returns a human-readable description of the command failure.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// ParseError records a failure while parsing command or system output.
// Use [errors.As] to extract the source from wrapped errors.
type ParseError struct {
	Source string // data source, e.g. "lscpu output"
	Err    error  // underlying parse error
}

// Error returns a human-readable description of the parse failure.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ComponentError records a failure while collecting a specific inventory component.
// These errors appear in [DiagnosticInfo.Errors] and are returned by
// [Provider.Collect] when a component cannot degrade gracefully.
type ComponentError struct {
	Component string // component name, e.g. "processor", "memory", "identity"
	Err       error  // underlying error
}

// Error returns a human-readable description of the component failure.
func (e *ComponentError) Error() string {
	return fmt.Sprintf("component %q: %v", e.Component, e.Err)
}

// Unwrap returns the underlying error.
func (e *ComponentError) Unwrap() error {
	return e.Err
}
