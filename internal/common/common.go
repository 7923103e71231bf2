// Released under an MIT license. See LICENSE.

// Package common defines helpers shared by osmium's packages.
package common

import (
	"errors"
	"fmt"
)

type Stringer = fmt.Stringer

// ErrUnexpected is returned for a recovered value that says nothing useful.
var ErrUnexpected = errors.New("unexpected error")

// Error converts a value recovered from a panic into an error.
func Error(r interface{}) error {
	switch r := r.(type) {
	case error:
		return r
	case string:
		return errors.New(r)
	case Stringer:
		return errors.New(r.String())
	}

	return ErrUnexpected
}
