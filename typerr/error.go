package typerr

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Arity
	AlreadyResolved
	Occurs
	UnifyConflict
	MisplacedRest
	Parse
)

// Term is the subset of type-term behaviour diagnostics need. It is declared
// here so error kinds can carry the offending terms without importing the
// types package.
type Term interface {
	fmt.Stringer
}

type Error interface {
	error
	Code() ErrCode

	withStack([]byte) Error
	getStack() []byte
}

func FormatWithCode(e Error) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E Error](err E) Error {
	return err.withStack(debug.Stack())
}

// CodeOf returns the ErrCode carried anywhere in err's chain, or None.
func CodeOf(err error) ErrCode {
	var coded Error
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return None
}
