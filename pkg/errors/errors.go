package errors

import "fmt"

// ParseError represents a theme file that could not be decoded.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("theme parse error: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("theme parse error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownThemeError reports a request for a named theme that is not
// registered.
type UnknownThemeError struct {
	Name string
}

// NewUnknownThemeError constructs an UnknownThemeError.
func NewUnknownThemeError(name string) error {
	return &UnknownThemeError{Name: name}
}

func (e *UnknownThemeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown theme: %q", e.Name)
}
