package calculator

import (
	"k8s.io/apimachinery/pkg/util/validation/field"
)

type Kind string

const (
	// InvalidArgumentType is reported when a top-level argument is not a
	// list.
	InvalidArgumentType Kind = "InvalidArgumentType"
	// InvalidInterval is reported for a list element that is not a valid
	// interval.
	InvalidInterval Kind = "InvalidInterval"
)

type Side string

const (
	SideInclude Side = "include"
	SideExclude Side = "exclude"
)

// Error describes one offending argument or list element. Index is -1 for
// errors about the argument as a whole.
type Error struct {
	Kind   Kind
	Side   Side
	Index  int
	Value  any
	Detail string
}

func (e *Error) Path() *field.Path {
	p := field.NewPath(string(e.Side) + "s")
	if e.Index >= 0 {
		p = p.Index(e.Index)
	}
	return p
}

func (e *Error) FieldError() *field.Error {
	if e.Kind == InvalidArgumentType {
		return field.TypeInvalid(e.Path(), e.Value, e.Detail)
	}
	return field.Invalid(e.Path(), e.Value, e.Detail)
}

func (e *Error) Error() string {
	return e.FieldError().Error()
}

// Errors is the ordered list of every validation failure of a call,
// includes first.
type Errors []*Error

func (e Errors) Error() string {
	return e.FieldErrors().ToAggregate().Error()
}

func (e Errors) FieldErrors() field.ErrorList {
	list := make(field.ErrorList, 0, len(e))
	for _, err := range e {
		list = append(list, err.FieldError())
	}
	return list
}

// ToAggregate returns nil when e is empty.
func (e Errors) ToAggregate() error {
	if len(e) == 0 {
		return nil
	}
	return e.FieldErrors().ToAggregate()
}

// Side returns the subset of e reported for side.
func (e Errors) Side(side Side) Errors {
	var out Errors
	for _, err := range e {
		if err.Side == side {
			out = append(out, err)
		}
	}
	return out
}

// errOrNil keeps a typed nil Errors from being returned as a non-nil error.
func (e Errors) errOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
