package autodiff

import (
	"errors"
	"fmt"
	"strconv"
)

// Common errors.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrLengthMismatch  = errors.New("length mismatch")
	ErrDuplicateKey    = errors.New("duplicate variable name")
	ErrDomain          = errors.New("argument outside function domain")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrKeyNotFound     = errors.New("variable not found")
)

// Error describes a failed operation. Kind is one of the sentinel errors
// above and is returned by Unwrap, so errors.Is works against the sentinels.
type Error struct {
	Op       string  // Operation that failed (e.g., "log", "div", "vectorize")
	Kind     error   // Sentinel error
	Operand  string  // Variable or node name involved, if any
	Value    float64 // Offending value, valid when HasValue is set
	HasValue bool
	Detail   string
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Op + ": " + e.Kind.Error()
	if e.Operand != "" {
		msg += fmt.Sprintf(" (operand %q", e.Operand)
		if e.HasValue {
			msg += " = " + strconv.FormatFloat(e.Value, 'g', -1, 64)
		}
		msg += ")"
	} else if e.HasValue {
		msg += " (value " + strconv.FormatFloat(e.Value, 'g', -1, 64) + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the sentinel kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError builds an *Error without an offending value.
func NewError(op string, kind error, operand, detail string) *Error {
	return &Error{Op: op, Kind: kind, Operand: operand, Detail: detail}
}

// ValueError builds an *Error that records the offending value.
func ValueError(op string, kind error, operand string, value float64) *Error {
	return &Error{Op: op, Kind: kind, Operand: operand, Value: value, HasValue: true}
}

// Label returns err with Operand set to name when err is an *Error that
// does not name an operand yet. Other errors are returned unchanged.
func Label(err error, name string) error {
	var e *Error
	if name == "" || !errors.As(err, &e) || e.Operand != "" {
		return err
	}
	labeled := *e
	labeled.Operand = name
	return &labeled
}
