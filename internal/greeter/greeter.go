// Package greeter builds the appa greeting.
package greeter

import (
	"fmt"

	"github.com/samber/lo"
)

// Usage is printed after the greeting when no name is given.
const Usage = "Usage: appa [name]"

const defaultName = "world"

// Greet returns the greeting for name. A nil name greets the world;
// an empty name is kept as is.
func Greet(name *string) string {
	return fmt.Sprintf("Hello, %s! Welcome to appa CLI tool.", lo.FromPtrOr(name, defaultName))
}
