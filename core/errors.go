package core

import (
	"errors"
	"fmt"
	"os"
)

// Error codes used throughout the syllable engine. Codes are plain ints, so
// callers may compare them with the result of Code without conversion.
const (
	NOERROR   int = 0
	EMISSING  int = 122 // letter or name not in the registry
	EINVALID  int = 123 // letter not allowed in a slot
	ENOROOT   int = 124 // syllable has no root letter
	EINTERNAL int = 125
)

var codeText = map[int]string{
	NOERROR:   "OK",
	EMISSING:  "not found",
	EINVALID:  "invalid",
	ENOROOT:   "no root selected",
	EINTERNAL: "internal error",
}

func errorText(code int) string {
	if t, ok := codeText[code]; ok {
		return t
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a message suitable
// for end users.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

// codedError carries a code and a user message on top of a wrapped cause.
type codedError struct {
	cause error
	code  int
	msg   string
}

var _ AppError = codedError{}

func (e codedError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("[%d] %v", e.code, e.cause)
	}
	return fmt.Sprintf("[%d] %v: %s", e.code, e.cause, e.msg)
}

func (e codedError) Unwrap() error       { return e.cause }
func (e codedError) ErrorCode() int      { return e.code }
func (e codedError) UserMessage() string { return e.msg }

// Error creates an error with an error code and a user message.
func Error(code int, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// WrapError puts err into the chain of an error with code and a user
// message. A nil err is replaced by the text for code.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return codedError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Code returns the error code of the first AppError in err's chain.
// Errors without a code are reported as EINTERNAL, nil as NOERROR.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e AppError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error, falling
// back to the text of its code. For nil it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e AppError
	if errors.As(err, &e) && e.UserMessage() != "" {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// UserError reports err on stderr.
func UserError(err error) {
	if err == nil {
		return
	}
	var e AppError
	if errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), UserMessage(err))
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
