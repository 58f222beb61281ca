package bpyschema

import (
	"errors"
	"fmt"
	"strings"
)

// Application error codes.
const (
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	ERATELIMIT   = "rate_limit"
	ESTRUCTURE   = "structure"
	EUNSUPPORTED = "unsupported"
)

// Error represents an application-specific error.
// Version, Class and Attribute locate the failure inside the corpus
// and are empty when not applicable.
type Error struct {
	Code    string
	Message string

	Version   string
	Class     string
	Attribute string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if loc := e.location(); loc != "" {
		return fmt.Sprintf("%s: %s", loc, e.Message)
	}
	return e.Message
}

// location renders the corpus context as "4.1 ShaderNodeMath.operation".
func (e *Error) location() string {
	var b strings.Builder
	b.WriteString(e.Version)
	if e.Class != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.Class)
		if e.Attribute != "" {
			b.WriteByte('.')
			b.WriteString(e.Attribute)
		}
	}
	return b.String()
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Structuref returns an ESTRUCTURE error located at the given version,
// class and (optional) attribute.
func Structuref(v Version, class, attr string, format string, args ...any) *Error {
	return &Error{
		Code:      ESTRUCTURE,
		Message:   fmt.Sprintf(format, args...),
		Version:   v.String(),
		Class:     class,
		Attribute: attr,
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message,
// prefixed with the corpus location when one is set.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Error()
	}
	return "Internal error."
}
