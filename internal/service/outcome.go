package service

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by read operations when the requested venue or
// artist does not exist.
var ErrNotFound = errors.New("not found")

// Status classifies the result of a write operation.
type Status int

const (
	StatusSuccess Status = iota
	StatusValidationFailed
	StatusWriteFailed
	StatusNotFound
	StatusConflict
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusValidationFailed:
		return "validation_failed"
	case StatusWriteFailed:
		return "write_failed"
	case StatusNotFound:
		return "not_found"
	case StatusConflict:
		return "conflict"
	}
	return "unknown"
}

// FieldError lists the rules a single submitted field violated.
type FieldError struct {
	Field string   `json:"field"`
	Rules []string `json:"rules"`
}

// String renders the error as "field: (rule|rule)".
func (e FieldError) String() string {
	return e.Field + ": (" + strings.Join(e.Rules, "|") + ")"
}

// Outcome is the result of a create, update or delete.  Message is the
// human-readable notification for the person who submitted the form;
// storage details never appear in it.
type Outcome struct {
	Status  Status
	Message string
	Errors  []FieldError
	ID      uint64
}

// OK reports whether the write succeeded.
func (o Outcome) OK() bool { return o.Status == StatusSuccess }
