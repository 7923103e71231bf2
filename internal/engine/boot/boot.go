// Released under an MIT license. See LICENSE.

// Package boot provides the definitions osmium evaluates at startup,
// before System` symbols are protected.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.wl
var script string //nolint:gochecknoglobals

// Script returns the boot script for osmium.
func Script() string {
	return script
}
