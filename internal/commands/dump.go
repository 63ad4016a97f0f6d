package commands

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"capnp-wrapper-generator/internal/resolve"
)

func registerDumpCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "dump [schema-file]",
		Short: "Print the resolved schema model",
		Long: `Resolves the schema and prints the resulting in-memory model instead of
generating source. Useful when a wrapper method comes out wrong and the
question is what the resolver actually saw.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args, opts)
		},
	}

	addLoadFlags(cmd, opts)

	parent.AddCommand(cmd)
}

func runDump(cmd *cobra.Command, args []string, opts *generateOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	req, err := loadRequest(cmd, args, cfg)
	if err != nil {
		return err
	}

	sch, err := resolve.NewResolver().Resolve(req)
	if err != nil {
		return err
	}

	spew.Fdump(cmd.OutOrStdout(), sch)

	return nil
}
