package ir

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind partitions the errors the core can raise, per the error-handling
// design: a violated static precondition, a legal-but-unimplemented path,
// or an internal inconsistency that indicates an earlier pass misbehaved.
type Kind byte

const (
	// InvalidArgument is a violated static precondition: type mismatch,
	// out-of-bounds composite index, mismatched widths in a polymorphic emit.
	InvalidArgument Kind = iota + 1
	// NotImplemented marks a legal but unsupported opcode/path.
	NotImplemented
	// LogicError marks an unreachable branch that indicates an earlier
	// pass should have rewritten the instruction.
	LogicError
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case NotImplemented:
		return "NotImplemented"
	case LogicError:
		return "LogicError"
	default:
		return "UnknownError"
	}
}

// Error is the single error type raised by the core. It always carries the
// offending Kind and, where known, the Opcode and/or Type involved, and
// wraps github.com/pkg/errors so callers get a stack trace at the raise
// site rather than only at the point the error surfaces.
type Error struct {
	Kind    Kind
	Opcode  Opcode
	Type    Type
	cause   error
	message string
}

func (e *Error) Error() string {
	msg := e.message
	if e.Opcode != OpcodeInvalid {
		msg = fmt.Sprintf("%s (opcode=%s)", msg, e.Opcode)
	}
	if e.Type != 0 {
		msg = fmt.Sprintf("%s (type=%s)", msg, e.Type)
	}
	return msg
}

// Unwrap allows errors.Is/errors.As (and github.com/pkg/errors.Cause) to
// see through to the wrapped stack trace.
func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind Kind, opcode Opcode, typ Type, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{
		Kind:    kind,
		Opcode:  opcode,
		Type:    typ,
		cause:   errors.New(msg),
		message: msg,
	}
}

// InvalidArgumentf raises an InvalidArgument error with a message.
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return newError(InvalidArgument, OpcodeInvalid, 0, format, args...)
}

// InvalidArgumentTypef raises an InvalidArgument error tagged with the
// offending type.
func InvalidArgumentTypef(typ Type, format string, args ...interface{}) *Error {
	e := newError(InvalidArgument, OpcodeInvalid, typ, format, args...)
	return e
}

// InvalidArgumentOpcodef raises an InvalidArgument error tagged with the
// offending opcode.
func InvalidArgumentOpcodef(opcode Opcode, format string, args ...interface{}) *Error {
	return newError(InvalidArgument, opcode, 0, format, args...)
}

// NotImplementedf raises a NotImplemented error tagged with the offending
// opcode.
func NotImplementedf(opcode Opcode, format string, args ...interface{}) *Error {
	return newError(NotImplemented, opcode, 0, format, args...)
}

// LogicErrorf raises a LogicError, indicating an earlier pass should have
// rewritten the instruction away.
func LogicErrorf(opcode Opcode, format string, args ...interface{}) *Error {
	return newError(LogicError, opcode, 0, format, args...)
}
