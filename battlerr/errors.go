// Package battlerr provides structured error handling for the battle engine.
// Every error the engine returns across a package boundary carries a Code so
// callers can branch on outcome instead of parsing message strings.
package battlerr

import (
	"errors"
	"fmt"
)

// Code categorizes why an engine call failed.
type Code string

const (
	// CodeNotFound indicates a lookup (battle id, battler id, party slot) found nothing.
	CodeNotFound Code = "not_found"
	// CodeInvalidBattler indicates a battler_id does not participate in the session.
	CodeInvalidBattler Code = "invalid_battler"
	// CodeWrongPhase indicates the action type is illegal in the battle's current phase.
	CodeWrongPhase Code = "wrong_phase"
	// CodeBattleOver indicates an action arrived after the battle was already decided.
	CodeBattleOver Code = "battle_over"
	// CodeInvalidTarget indicates a switch or move target is out of range, fainted, or already active.
	CodeInvalidTarget Code = "invalid_target"
	// CodeInvalidParty indicates a battle was started with an empty party.
	CodeInvalidParty Code = "invalid_party"
	// CodeInvalidArgument indicates a programmer error in constructing a request.
	CodeInvalidArgument Code = "invalid_argument"
)

// Error is the engine's structured error carrier.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "battlerr: nil error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Option configures an Error at construction time.
type Option func(*Error)

// WithMeta attaches a key/value of diagnostic context to the error.
func WithMeta(key string, value any) Option {
	return func(e *Error) {
		if e.Meta == nil {
			e.Meta = make(map[string]any)
		}
		e.Meta[key] = value
	}
}

// New creates an Error with the given code and message.
func New(code Code, message string, opts ...Option) *Error {
	err := &Error{Code: code, Message: message}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps err with additional context, preserving its Code if it is already
// a *Error, or tagging it CodeInvalidArgument otherwise.
func Wrap(err error, message string, opts ...Option) *Error {
	if err == nil {
		return New(CodeInvalidArgument, fmt.Sprintf("battlerr.Wrap called with nil: %s", message))
	}

	var existing *Error
	wrapped := &Error{Message: message, Cause: err}
	if errors.As(err, &existing) {
		wrapped.Code = existing.Code
		wrapped.Meta = copyMeta(existing.Meta)
	} else {
		wrapped.Code = CodeInvalidArgument
	}

	for _, opt := range opts {
		opt(wrapped)
	}
	return wrapped
}

func copyMeta(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	cp := make(map[string]any, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

// GetCode extracts the Code from any error, returning "" if err is not a *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Code
	}
	return ""
}

// NotFound creates a CodeNotFound error naming what was not found.
func NotFound(what string, opts ...Option) *Error {
	return New(CodeNotFound, fmt.Sprintf("%s not found", what), opts...)
}

// InvalidBattler creates a CodeInvalidBattler error.
func InvalidBattler(battlerID int, opts ...Option) *Error {
	return New(CodeInvalidBattler, fmt.Sprintf("battler %d does not participate in this battle", battlerID), opts...)
}

// WrongPhase creates a CodeWrongPhase error describing the illegal action/phase pair.
func WrongPhase(action, phase string, opts ...Option) *Error {
	return New(CodeWrongPhase, fmt.Sprintf("%s is not allowed while phase is %s", action, phase), opts...)
}

// BattleOver creates a CodeBattleOver error.
func BattleOver(opts ...Option) *Error {
	return New(CodeBattleOver, "battle is already over", opts...)
}

// InvalidTarget creates a CodeInvalidTarget error naming the reason.
func InvalidTarget(reason string, opts ...Option) *Error {
	return New(CodeInvalidTarget, fmt.Sprintf("invalid target: %s", reason), opts...)
}

// InvalidParty creates a CodeInvalidParty error.
func InvalidParty(side string, opts ...Option) *Error {
	return New(CodeInvalidParty, fmt.Sprintf("%s party must contain at least one combatant", side), opts...)
}

// IsNotFound reports whether err is a CodeNotFound error.
func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

// IsWrongPhase reports whether err is a CodeWrongPhase error.
func IsWrongPhase(err error) bool { return GetCode(err) == CodeWrongPhase }

// IsBattleOver reports whether err is a CodeBattleOver error.
func IsBattleOver(err error) bool { return GetCode(err) == CodeBattleOver }

// IsInvalidTarget reports whether err is a CodeInvalidTarget error.
func IsInvalidTarget(err error) bool { return GetCode(err) == CodeInvalidTarget }

// IsInvalidBattler reports whether err is a CodeInvalidBattler error.
func IsInvalidBattler(err error) bool { return GetCode(err) == CodeInvalidBattler }

// IsInvalidParty reports whether err is a CodeInvalidParty error.
func IsInvalidParty(err error) bool { return GetCode(err) == CodeInvalidParty }
