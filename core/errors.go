package core

import (
	"errors"
	"fmt"
	"os"
)

// General error codes
const (
	NOERROR     int = 0
	EMISSING    int = 122 // resource does not exist
	EINVALID    int = 123 // validation failed
	ECONNECTION int = 124 // remote resource not connected
	EINTERNAL   int = 125 // internal error
)

// Error codes for the text-layout pipeline (font registry, shaper, atlas,
// layout manager). Every one of these is fatal to the provoking call and
// leaves internal state consistent: no partial glyph inserted, no partial
// line returned.
const (
	EFONTFILEINVALID   int = 140 // empty or unloadable font file
	EFONTLOADFAILED    int = 141 // rasterizer rejected the font bytes
	ECHARMAPMISSING    int = 142 // font has no Unicode charmap
	ERASTERIZERFAILURE int = 143 // rasterizer could not render a covered glyph
	EATLASTOOSMALL      int = 144 // a padded glyph rectangle exceeds the page size
	EHINTINVALID        int = 145 // hint has no usable font
	ENOFONTSAVAILABLE   int = 146 // registry is empty
	EBIDIFAILURE        int = 147 // BiDi paragraph analysis failed
	EBREAKLIBINIT       int = 148 // line-break dictionary failed to initialize
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case ECONNECTION:
		return "transmission-error"
	case EINTERNAL:
		return "internal error"
	case EFONTFILEINVALID:
		return "font file invalid"
	case EFONTLOADFAILED:
		return "font load failed"
	case ECHARMAPMISSING:
		return "charmap missing"
	case ERASTERIZERFAILURE:
		return "rasterizer failure"
	case EATLASTOOSMALL:
		return "atlas too small for glyph"
	case EHINTINVALID:
		return "hint invalid"
	case ENOFONTSAVAILABLE:
		return "no fonts available"
	case EBIDIFAILURE:
		return "bidi failure"
	case EBREAKLIBINIT:
		return "break library init failure"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// ErrorWithCode adds an error code to err's error chain.
// Unlike pkg/errors, ErrorWithCode will wrap nil error.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{err, code, errorText(code)}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, a new error carrying the standard text of code is wrapped
// instead.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it returns the standard text for Code(err).
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

func UserError(err error) {
	if e, ok := err.(AppError); ok {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
