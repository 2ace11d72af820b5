package stylesheet

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every RuleError raised during validation.
var ErrInvalid = errors.New("invalid value")

// ParseError reports a style sheet that is not valid YAML.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("stylesheet %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("stylesheet %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RuleError reports a rule that failed validation or could not be applied.
type RuleError struct {
	Rule  int
	Field string
	Err   error
}

func (e *RuleError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("rules[%d].%s: %v", e.Rule, e.Field, e.Err)
	}
	return fmt.Sprintf("rules[%d]: %v", e.Rule, e.Err)
}

// Unwrap exposes the underlying error.
func (e *RuleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
