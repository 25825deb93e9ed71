//go:build cli

package view

import (
	"fmt"

	"github.com/bloodmagesoftware/solidify/solid"
)

// Run always fails in a cli-tagged build, which excludes gio and its
// transitive windowing dependencies.
func Run(title string, s solid.Solid) error {
	return fmt.Errorf("view: viewer not available in a cli build")
}
