package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"capnp-wrapper-generator/internal/resolve"
)

func registerCheckCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "check [schema-file]",
		Short: "Resolve a schema and report every problem without generating",
		Long: `Resolves the schema like the generator would, but keeps going after the
first problem and prints every finding. Warnings flag declarations that
resolve but will surprise (enums with nothing left after the dropped
leading enumerant, nested declarations the generator never sees).`,
		Example: `  capnp-wrapper-generator check schemas/rangequery.capnp`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	addLoadFlags(cmd, opts)

	parent.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string, opts *generateOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	req, err := loadRequest(cmd, args, cfg)
	if err != nil {
		return err
	}

	sch, diags := resolve.NewResolver().Check(req)

	out := cmd.OutOrStdout()

	for _, d := range diags.All() {
		fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
	}

	if diags.HasErrors() {
		fmt.Fprintf(out, "%d errors, %d warnings\n", len(diags.Errors), len(diags.Warnings))
		return errors.New("schema check failed")
	}

	fmt.Fprintf(out, "ok: %d declarations resolved\n", len(sch.Types))

	return nil
}
