package errs

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation Kind = "VALIDATION_ERROR"
	KindNotFound   Kind = "NOT_FOUND"
	KindSyncRead   Kind = "SYNC_READ_ERROR"
	KindSyncWrite  Kind = "SYNC_WRITE_ERROR"
	KindDecode     Kind = "DECODE_ERROR"
	KindInternal   Kind = "INTERNAL_ERROR"
)

// Error carries a Kind so callers can decide between rejecting one action
// and retaining previous state.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if e.Op == "" {
		return msg
	}
	return e.Op + ": " + msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(op, msg string) *Error {
	return &Error{Kind: KindValidation, Op: op, Msg: msg}
}

func NotFound(op, format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func SyncRead(op string, err error) *Error {
	return &Error{Kind: KindSyncRead, Op: op, Err: err}
}

// SyncWrite keeps the remote message verbatim so it can be shown to the operator.
func SyncWrite(op string, err error) *Error {
	return &Error{Kind: KindSyncWrite, Op: op, Err: err}
}

func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in the chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the operator-facing text: the wrapped cause for sync
// writes, the full message otherwise.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Kind == KindSyncWrite && e.Err != nil {
			return e.Err.Error()
		}
		if e.Msg != "" {
			return e.Msg
		}
		if e.Err != nil {
			return e.Err.Error()
		}
	}
	return err.Error()
}
