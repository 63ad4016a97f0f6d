// Package main provides the CLI entrypoint for capnp-wrapper-generator.
//
// capnp-wrapper-generator is a codegen tool that:
//   - Runs the external capnp compiler to turn a schema into an encoded
//     code generator request
//   - Resolves the request's top-level structs and enums into a flat model
//   - Emits C++ wrapper classes exposing protobuf-style Get/Set/Has/Mutable
//     methods over the plain generated capnp Reader and Builder types
package main

import (
	"context"
	"fmt"
	"os"

	"capnp-wrapper-generator/internal/commands"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application logic, extracted for testability.
func run(ctx context.Context) error {
	return commands.NewRootCmd().ExecuteContext(ctx)
}
