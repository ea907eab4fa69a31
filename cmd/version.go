package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la versión del cliente",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("luisamigo %s\n", Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
