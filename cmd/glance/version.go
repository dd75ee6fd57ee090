// Version command for the glance CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/glance/pkg/glance"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the glance version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("glance", glance.Version)
	},
}
