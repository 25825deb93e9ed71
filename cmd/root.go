package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bloodmagesoftware/solidify/project"
)

var rootCmd = &cobra.Command{
	Use:   "solidify",
	Short: "Solidify - a constructive solid geometry build tool",
	Long: `Solidify evaluates a YAML scene graph of primitives, transforms, and
Boolean operators into a single polygon mesh, and writes it out as VTK or
OBJ, or views it interactively.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getProjectRoot returns the project root directory by looking for
// solidify.yaml.
func getProjectRoot() (string, error) {
	return project.FindProjectRoot()
}
