package script

import "fmt"

// FormatError reports a payload that could not be parsed as structured
// data. The parser's message is preserved for the user.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("error parsing script payload: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ImportError reports a payload that parsed cleanly but normalized to zero
// usable characters.
type ImportError struct {
	Name string
}

func (e *ImportError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("no valid characters found in script %q", e.Name)
	}
	return "no valid characters found in script payload"
}
