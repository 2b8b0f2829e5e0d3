// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers to distinguish
// between different failure scenarios without inspecting driver errors.
package repository

import "errors"

// ErrConflict is returned when a delete cannot be performed because of
// dependent records, such as removing an artist that still has shows.
// Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")
