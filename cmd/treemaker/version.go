package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release of treemaker.
const Version = "1.0.1"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of treemaker",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "treemaker version %s\n", Version)
		},
	}
}
