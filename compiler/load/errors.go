package load

import (
	"errors"
	"strings"
)

// Sentinel errors for schema loading failures.
var (
	// ErrSchemaNotFound indicates the schema file does not exist.
	ErrSchemaNotFound = errors.New("dogen: schema not found")
	// ErrSchemaParse indicates the schema file is not well-formed XML.
	ErrSchemaParse = errors.New("dogen: schema parse error")
)

// NotFoundError is returned when the schema path does not exist.
type NotFoundError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return "dogen: schema file not found: " + e.Path
}

// Unwrap returns the underlying error.
func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrSchemaNotFound
}

// ParseError wraps the error reported by the XML parser.
type ParseError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("dogen: malformed schema")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrSchemaParse
}

// IsNotFound reports whether the error is a NotFoundError.
func IsNotFound(err error) bool {
	var nfErr *NotFoundError
	return errors.As(err, &nfErr)
}

// IsParseError reports whether the error is a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
