// Package result provides a success/error tagged union with chainable
// combinators. Saga steps return Results so that compensation logic can be
// attached as side-effecting hooks without obscuring the main success path.
package result

import "fmt"

// Error is the failure variant's payload: a message plus a free-form context
// mapping used to carry structured detail (reason codes, entity ids).
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// With returns a copy of the error with an extra context entry. The receiver
// is not mutated so enriched errors can be propagated safely.
func (e *Error) With(key string, value any) *Error {
	data := make(map[string]any, len(e.Data)+1)
	for k, v := range e.Data {
		data[k] = v
	}
	data[key] = value
	return &Error{Message: e.Message, Data: data}
}

// Result is a tagged union of a success value and an error. Exactly one
// variant is populated; the zero value is a success holding T's zero value.
type Result[T any] struct {
	value T
	err   *Error
}

// Ok returns a success result
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err returns an error result with the given message and context data
func Err[T any](message string, data map[string]any) Result[T] {
	return Result[T]{err: &Error{Message: message, Data: data}}
}

// Errf returns an error result with a formatted message and no context data
func Errf[T any](format string, args ...any) Result[T] {
	return Result[T]{err: &Error{Message: fmt.Sprintf(format, args...)}}
}

// FromError wraps a plain Go error into an error result
func FromError[T any](err error, data map[string]any) Result[T] {
	return Result[T]{err: &Error{Message: err.Error(), Data: data}}
}

// ErrResult rewraps an existing error payload into an error result
func ErrResult[T any](err *Error) Result[T] {
	return Result[T]{err: err}
}

// IsOk reports whether the result is the success variant
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the result is the error variant
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Value returns the success value; the zero value on error
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error payload; nil on success
func (r Result[T]) Err() *Error {
	return r.err
}

// AndThen chains fn on success and short-circuits on error
func (r Result[T]) AndThen(fn func(T) Result[T]) Result[T] {
	if r.err != nil {
		return r
	}
	return fn(r.value)
}

// OnSuccess runs the hook on the success variant and returns the result
// unchanged
func (r Result[T]) OnSuccess(fn func(T)) Result[T] {
	if r.err == nil {
		fn(r.value)
	}
	return r
}

// OnError runs the hook on the error variant and returns the result unchanged
func (r Result[T]) OnError(fn func(*Error)) Result[T] {
	if r.err != nil {
		fn(r.err)
	}
	return r
}

// Rescue transforms the error variant into a new result; success passes
// through untouched
func (r Result[T]) Rescue(fn func(*Error) Result[T]) Result[T] {
	if r.err == nil {
		return r
	}
	return fn(r.err)
}

// Then chains a type-changing continuation: fn runs only on success, errors
// short-circuit. Go methods cannot introduce type parameters, hence the free
// function.
func Then[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return fn(r.value)
}
