package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Errors aggregates field-level validation failures for a single write.
// All fields are evaluated before the write is rejected, so the caller
// receives every violation at once rather than the first one found.
type Errors struct {
	fields map[string][]string
}

// NewErrors creates an empty error collector
func NewErrors() *Errors {
	return &Errors{fields: make(map[string][]string)}
}

// Add records a failure message for a field
func (e *Errors) Add(field, message string) {
	e.fields[field] = append(e.fields[field], message)
}

// AddIf records err under field when err is non-nil
func (e *Errors) AddIf(field string, err error) {
	if err != nil {
		e.Add(field, err.Error())
	}
}

// Merge folds another collector's failures into this one
func (e *Errors) Merge(other *Errors) {
	if other == nil {
		return
	}
	for field, messages := range other.fields {
		e.fields[field] = append(e.fields[field], messages...)
	}
}

// HasErrors reports whether any failure was recorded
func (e *Errors) HasErrors() bool {
	return len(e.fields) > 0
}

// Fields returns the recorded failures keyed by field name
func (e *Errors) Fields() map[string][]string {
	return e.fields
}

// Error implements the error interface with a deterministic field order
func (e *Errors) Error() string {
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.fields[name], "; ")))
	}
	return strings.Join(parts, ", ")
}
