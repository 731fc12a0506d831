// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping fp.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.fp
var script string //nolint:gochecknoglobals

// Script returns the prelude evaluated before any user code.
func Script() string {
	return script
}
