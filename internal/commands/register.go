// Package commands contains all CLI command definitions.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"capnp-wrapper-generator/internal/config"
	"capnp-wrapper-generator/internal/gen"
	"capnp-wrapper-generator/internal/resolve"

	capnpschema "capnproto.org/go/capnp/v3/std/capnp/schema"
)

// generateOptions carries the flag values shared by the schema-loading
// commands. Empty values mean "not given"; the config file (or its
// defaults) fills them in.
type generateOptions struct {
	configPath string
	compiler   string
	imports    []string
	namespace  string
	sentinel   string
	output     string
}

// NewRootCmd creates and returns the root command for the CLI.
// The root command itself is the generator; check, dump and version hang
// off it as subcommands.
func NewRootCmd() *cobra.Command {
	opts := &generateOptions{}

	rootCmd := &cobra.Command{
		Use:   "capnp-wrapper-generator [schema-file]",
		Short: "Generate C++ Reader/Builder wrapper classes from a capnp schema",
		Long: `Compiles a capnp schema with the external capnp compiler, resolves its
top-level structs and enums, and prints C++ wrapper classes exposing
protobuf-style Get/Set/Has/Mutable methods over the plain generated
capnp Reader and Builder types.

Pass "-" as the schema file to read an already-encoded code generator
request from standard input (the stream "capnp compile -o-" emits).`,
		Example: `  # Print wrappers for a schema to stdout
  capnp-wrapper-generator schemas/rangequery.capnp

  # Pipe an encoded request in, write the wrappers to a file
  capnp compile -o- schemas/rangequery.capnp | capnp-wrapper-generator - -o gen/wrappers.h`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	addLoadFlags(rootCmd, opts)

	flags := rootCmd.Flags()
	flags.StringVar(&opts.namespace, "namespace", "", "C++ namespace of the plain generated capnp classes")
	flags.StringVar(&opts.sentinel, "sentinel", "", "reserved leading enumerant name")
	flags.StringVarP(&opts.output, "output", "o", "", "write the generated source to this file instead of stdout")

	registerCheckCmd(rootCmd)
	registerDumpCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

// addLoadFlags wires the flags every schema-loading command shares.
func addLoadFlags(cmd *cobra.Command, opts *generateOptions) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&opts.compiler, "compiler", "", `schema compiler binary (default "capnp")`)
	flags.StringArrayVarP(&opts.imports, "import", "I", nil, "additional import directory for the schema compiler (repeatable)")
}

// resolveConfig builds the effective config: file values (or the built-in
// defaults) overridden by whatever flags were given.
func resolveConfig(opts *generateOptions) (*config.Config, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if opts.compiler != "" {
		cfg.Compiler = opts.compiler
	}

	if len(opts.imports) > 0 {
		cfg.Imports = append(cfg.Imports, opts.imports...)
	}

	if opts.namespace != "" {
		cfg.Namespace = opts.namespace
	}

	if opts.sentinel != "" {
		cfg.Sentinel = opts.sentinel
	}

	if opts.output != "" {
		cfg.Output = opts.output
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadRequest obtains the code generator request: from standard input
// when the schema argument is "-", otherwise by running the schema
// compiler on the configured file.
func loadRequest(cmd *cobra.Command, args []string, cfg *config.Config) (capnpschema.CodeGeneratorRequest, error) {
	path := cfg.Schema
	if len(args) > 0 {
		path = args[0]
	}

	if path == "-" {
		return resolve.ReadRequest(cmd.InOrStdin())
	}

	return resolve.LoadFile(cmd.Context(), path, cfg.CompileOptions())
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
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

	out, err := gen.New(cfg.GeneratorConfig()).Generate(sch)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		return gen.WriteFile(cfg.Output, out)
	}

	fmt.Fprint(cmd.OutOrStdout(), out)

	return nil
}
