// Released under an MIT license. See LICENSE.

// Package validate checks the shape of arguments passed to native code.
package validate

import (
	"fmt"

	"github.com/osmium-lang/osmium/internal/common/struct/message"
)

// Fixed returns a message if name was called with n arguments when it
// expects between min and max, inclusive. A negative max means there is
// no upper bound. Otherwise it returns nil.
func Fixed(name string, n, min, max int) *message.T {
	if n >= min && (max < 0 || n <= max) {
		return nil
	}

	passed := name + " called with " + Count(n, "argument")

	switch {
	case max < 0:
		return message.New(name, "argm", "%s; %s or more are expected.", passed, Count(min, "argument"))
	case min == max && min == 1:
		return message.New(name, "argr", "%s; 1 argument is expected.", passed)
	case min == max:
		return message.New(name, "argrx", "%s; %s are expected.", passed, Count(min, "argument"))
	case max == min+1:
		return message.New(name, "argt", "%s; %d or %d arguments are expected.", passed, min, max)
	}

	return message.New(name, "argb", "%s; between %d and %d arguments are expected.", passed, min, max)
}

// Count returns n followed by label, pluralized unless n is 1.
func Count(n int, label string) string {
	if n == 1 {
		return "1 " + label
	}

	return fmt.Sprintf("%d %ss", n, label)
}
