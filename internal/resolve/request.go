package resolve

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"capnproto.org/go/capnp/v3"
	"capnproto.org/go/capnp/v3/std/capnp/schema"
)

// DefaultCompiler is the schema compiler binary invoked when no override
// is configured.
const DefaultCompiler = "capnp"

// CompileOptions controls the external schema compiler invocation.
type CompileOptions struct {
	// Compiler is the binary name or path; DefaultCompiler when empty.
	Compiler string
	// Imports lists extra directories passed to the compiler as -I flags.
	Imports []string
}

func (o CompileOptions) compiler() string {
	if o.Compiler == "" {
		return DefaultCompiler
	}

	return o.Compiler
}

// LoadFile compiles the schema file at path with the external schema
// compiler and decodes the code generator request the compiler writes to
// its standard output. The compiler performs all parsing; this tool never
// touches the schema's text syntax.
func LoadFile(ctx context.Context, path string, opts CompileOptions) (schema.CodeGeneratorRequest, error) {
	args := []string{"compile"}
	for _, dir := range opts.Imports {
		args = append(args, "-I"+dir)
	}

	args = append(args, "-o-", path)

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, opts.compiler(), args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return schema.CodeGeneratorRequest{}, &CompileError{
			Compiler: opts.compiler(),
			Path:     path,
			Stderr:   strings.TrimSpace(stderr.String()),
			Cause:    err,
		}
	}

	return ReadRequest(&stdout)
}

// ReadRequest decodes a code generator request from r. This is the stream
// the schema compiler hands to its output plugins, so path "-" input and
// piped invocations go through here directly.
func ReadRequest(r io.Reader) (schema.CodeGeneratorRequest, error) {
	msg, err := capnp.NewDecoder(r).Decode()
	if err != nil {
		return schema.CodeGeneratorRequest{}, fmt.Errorf("%w: decoding code generator request: %w", ErrLoadFailed, err)
	}

	req, err := schema.ReadRootCodeGeneratorRequest(msg)
	if err != nil {
		return schema.CodeGeneratorRequest{}, fmt.Errorf("%w: reading code generator request root: %w", ErrLoadFailed, err)
	}

	return req, nil
}
