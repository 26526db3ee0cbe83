package game

import "fmt"

// ValidationError represents a single configuration field failing its
// bounds check. Fatal at startup; command-local when raised by `set`.
type ValidationError struct {
	Field  string // Field name
	Reason string // Human-readable reason for failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%q %s", e.Field, e.Reason)
}

// UnknownActionError is returned when a verb has no entry in the
// session's action registry.
type UnknownActionError struct {
	Action string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("Unknown action: %s", e.Action)
}

// MissingArgumentError is returned when an action is invoked without a
// required positional argument.
type MissingArgumentError struct {
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("Missing argument: %s", e.Argument)
}

// UnknownSettingError is returned by get/set when the named setting is
// not in the settings registry.
type UnknownSettingError struct {
	Setting string
}

func (e *UnknownSettingError) Error() string {
	return fmt.Sprintf("Unknown setting: %s", e.Setting)
}

// IllegalValueError is returned by set when the raw value cannot be
// converted to the setting's type or fails its bounds check.
type IllegalValueError struct {
	Setting string
	Value   string
}

func (e *IllegalValueError) Error() string {
	return fmt.Sprintf("Illegal value for setting: %s", e.Setting)
}
