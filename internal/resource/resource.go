// Package resource holds the tri-state result every storefront operation
// reports: Loading, Success with a value, or Error with the original cause.
package resource

import "encoding/json"

// Status identifies which variant a Resource holds.
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Resource is a tagged variant. The zero value is Loading.
type Resource[T any] struct {
	status Status
	data   T
	err    error
}

// Loading returns the pending variant.
func Loading[T any]() Resource[T] { return Resource[T]{status: StatusLoading} }

// Success returns the success variant holding v.
func Success[T any](v T) Resource[T] { return Resource[T]{status: StatusSuccess, data: v} }

// Fail returns the error variant holding err as-is.
func Fail[T any](err error) Resource[T] { return Resource[T]{status: StatusError, err: err} }

// Of converts a collaborator return into a terminal Resource. The error is
// kept unchanged so callers can still match it with errors.Is / errors.As.
func Of[T any](v T, err error) Resource[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

func (r Resource[T]) Status() Status  { return r.status }
func (r Resource[T]) IsLoading() bool { return r.status == StatusLoading }
func (r Resource[T]) IsSuccess() bool { return r.status == StatusSuccess }
func (r Resource[T]) IsError() bool   { return r.status == StatusError }

// Data returns the success value. ok is false for the other variants.
func (r Resource[T]) Data() (v T, ok bool) {
	if r.status != StatusSuccess {
		return v, false
	}
	return r.data, true
}

// Err returns the cause of an Error, nil otherwise.
func (r Resource[T]) Err() error { return r.err }

// IsTerminal reports whether r ends an action's emission sequence.
func (r Resource[T]) IsTerminal() bool { return r.status != StatusLoading }

type envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func (r Resource[T]) MarshalJSON() ([]byte, error) {
	env := envelope{Status: r.status.String()}
	switch r.status {
	case StatusSuccess:
		env.Data = r.data
	case StatusError:
		if r.err != nil {
			env.Message = r.err.Error()
		}
	}
	return json.Marshal(env)
}
