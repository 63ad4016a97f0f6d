package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"capnp-wrapper-generator/internal/version"
)

func registerVersionCmd(parent *cobra.Command) {
	parent.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	})
}
