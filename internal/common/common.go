// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"
)

// Stringer is implemented by types with a plain text value.
type Stringer = fmt.Stringer
