package option

import (
	"errors"
	"fmt"
)

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
var ErrCannotMatchValue = errors.New("cannot match value")

type MaybeOption int

const (
	None MaybeOption = iota
	Some
	Error
)

// Maybe is a type used for matching of optional types.
// It will match `Some` if a value is set, `None` if it is unset, or `Error`
// if an error occurs.
type Maybe map[MaybeOption]interface{}

// Of is a type used for matching of optional types.
// It will first try to match concrete values, and in case of no match will
// then try a Maybe match.
type Of map[interface{}]interface{}

// Type is a type for optional values.
type Type interface {
	Match(choices interface{}) (interface{}, error)
	Equals(other interface{}) bool
	IsNone() bool
}

// Match will do a standard matching of o against choices.
//
// choices are expected to be of type Of or Maybe. Values of the map may be
// of any type; functions of type
//
//	func(interface{}) (interface{}, error)
//	func(interface{}, MaybeOption) (interface{}, error)
//
// will be called with o as an argument.
//
// If choices is of unknown kind, nil and ErrNoSuchMatchPattern are returned.
func Match(o Type, choices interface{}) (value interface{}, err error) {
	switch c := choices.(type) {
	case Of:
		return c.Match(o)
	case Maybe:
		return c.Match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

// Match matches o against concrete values first. Keys of type MaybeOption
// are reserved for the None, Some and Error cases.
func (of Of) Match(o Type) (interface{}, error) {
	return match(o, func(tag MaybeOption) (interface{}, bool) {
		if tag != Some {
			expr, ok := of[tag]
			return expr, ok
		}
		for k, expr := range of {
			if _, isTag := k.(MaybeOption); !isTag && o.Equals(k) {
				tracer().Debugf("option %v matched concrete value", o)
				return expr, true
			}
		}
		expr, ok := of[Some]
		return expr, ok
	})
}

// Match matches o against None, Some and Error only.
func (maybe Maybe) Match(o Type) (interface{}, error) {
	return match(o, func(tag MaybeOption) (interface{}, bool) {
		expr, ok := maybe[tag]
		return expr, ok
	})
}

// match evaluates the case that lookup selects for o. A failing Some case
// is handed to an Error case, if present.
func match(o Type, lookup func(MaybeOption) (interface{}, bool)) (interface{}, error) {
	tag := Some
	if o.IsNone() {
		tag = None
	}
	expr, ok := lookup(tag)
	if !ok {
		if tag == None {
			return nil, ErrCannotMatchUnsetValue
		}
		expr = Fail(ErrCannotMatchValue)
	}
	value, err := valueOrExpr(expr, o, tag)
	if err != nil && tag == Some {
		if handler, ok := lookup(Error); ok {
			return valueOrExpr(handler, o, Error)
		}
	}
	return value, err
}

func valueOrExpr(op interface{}, value Type, t MaybeOption) (interface{}, error) {
	switch x := op.(type) {
	case func(interface{}, MaybeOption) (interface{}, error):
		return x(value, t)
	case func(interface{}) (interface{}, error):
		return x(value)
	}
	return op, nil
}

// Fail may be used as an option case, causing a Match to fail with an error.
// The error will be returned by Match(…), unless caught with an option.Error
// label.
func Fail(err error) func(interface{}) (interface{}, error) {
	return func(interface{}) (interface{}, error) {
		return nil, err
	}
}

// Safe wraps a Match's return values and drops the error value.
func Safe(x interface{}, err error) interface{} {
	return x
}

// --- RuneT -----------------------------------------------------------------

// RuneT is an option type for runes, used for letter selections.
type RuneT rune

// RuneNone is the in-band null value for optional runes. 0 is never a
// selectable letter.
const RuneNone rune = 0

// SomeRune creates an optional rune with value r.
func SomeRune(r rune) RuneT {
	return RuneT(r)
}

// NoRune creates an unset optional rune.
func NoRune() RuneT {
	return RuneT(RuneNone)
}

func (o RuneT) Match(choices interface{}) (interface{}, error) {
	return Match(o, choices)
}

func (o RuneT) Equals(other interface{}) bool {
	switch r := other.(type) {
	case rune:
		return rune(o) == r
	case RuneT:
		return o == r
	case string:
		return string(rune(o)) == r
	}
	return false
}

func (o RuneT) Unwrap() rune {
	return rune(o)
}

// IsNone returns true if o is unset.
func (o RuneT) IsNone() bool {
	return rune(o) == RuneNone
}

func (o RuneT) String() string {
	if o.IsNone() {
		return "Rune.None"
	}
	return fmt.Sprintf("%c", rune(o))
}

var _ Type = RuneT(0)
