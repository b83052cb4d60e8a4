// Package cmd implements the CLI application to track the value of an inventory.
package cmd

import (
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "inventory")
	c.Register(&topicCmd{}, "documentation")
}
