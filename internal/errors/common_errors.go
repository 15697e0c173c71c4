package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// ErrorType classifies where in a run an error came from.
type ErrorType string

const (
	// ErrTypeParsing covers workbooks and worksheets that cannot be read.
	ErrTypeParsing ErrorType = "PARSING"
	// ErrTypeStorage covers the results file and other outputs.
	ErrTypeStorage ErrorType = "STORAGE"
	// ErrTypeValidation covers inputs of the wrong shape, such as an input
	// path that is a file.
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeNotFound   ErrorType = "NOT_FOUND"
	// ErrTypeFileSystem covers directory listing and stat failures.
	ErrTypeFileSystem ErrorType = "FILESYSTEM"
	ErrTypeConfig     ErrorType = "CONFIG"
)

// AppError is an error tagged with its ErrorType. Context carries the
// offending path, sheet or field names and is rendered by Error and
// LogAttrs in key order.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Type, e.Message)

	if keys := e.contextKeys(); len(keys) > 0 {
		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.Context[k])
		}
		b.WriteString(")")
	}

	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext records key on the error and returns it for chaining.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// LogAttrs returns the error type and context as slog attributes.
func (e *AppError) LogAttrs() []slog.Attr {
	attrs := []slog.Attr{slog.String("error_type", string(e.Type))}
	for _, k := range e.contextKeys() {
		attrs = append(attrs, slog.Any(k, e.Context[k]))
	}
	return attrs
}

func (e *AppError) contextKeys() []string {
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsType reports whether the first AppError in err's chain has the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// LogArgs returns the attributes of the first AppError in err's chain as
// arguments for slog.Logger.With. Other errors yield none.
func LogArgs(err error) []any {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return nil
	}

	attrs := appErr.LogAttrs()
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return args
}

func newAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewParsingError reports a workbook or worksheet that could not be read.
func NewParsingError(message string, cause error) *AppError {
	return newAppError(ErrTypeParsing, message, cause)
}

// NewStorageError reports an output that could not be written.
func NewStorageError(message string, cause error) *AppError {
	return newAppError(ErrTypeStorage, message, cause)
}

func NewAppValidationError(message string) *AppError {
	return newAppError(ErrTypeValidation, message, nil)
}

// NewNotFoundError reports a missing resource, named in the message.
func NewNotFoundError(resource string) *AppError {
	return newAppError(ErrTypeNotFound, fmt.Sprintf("%s not found", resource), nil)
}

// NewFileSystemError reports a failed file system operation.
func NewFileSystemError(operation string, cause error) *AppError {
	return newAppError(ErrTypeFileSystem, fmt.Sprintf("file system error during %s", operation), cause)
}

func NewConfigError(message string, cause error) *AppError {
	return newAppError(ErrTypeConfig, message, cause)
}
