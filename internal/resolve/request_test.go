package resolve

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRequest_RoundTrip(t *testing.T) {
	_, msg := buildFixtureRequest(t)

	data, err := msg.Marshal()
	require.NoError(t, err)

	req, err := ReadRequest(bytes.NewReader(data))
	require.NoError(t, err)

	sch, err := NewResolver().Resolve(req)
	require.NoError(t, err)

	assert.Equal(t, []string{"rangequery.capnp"}, sch.Files)
	assert.Len(t, sch.Types, 3)
}

func TestReadRequest_GarbageInput(t *testing.T) {
	_, err := ReadRequest(strings.NewReader("definitely not a message"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.True(t, IsLoadError(err))
}

func TestReadRequest_EmptyInput(t *testing.T) {
	_, err := ReadRequest(bytes.NewReader(nil))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestLoadFile_CompilerMissing(t *testing.T) {
	_, err := LoadFile(context.Background(), "anything.capnp", CompileOptions{
		Compiler: "capnp-compiler-that-does-not-exist",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoadFailed)

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "capnp-compiler-that-does-not-exist", compileErr.Compiler)
	assert.Equal(t, "anything.capnp", compileErr.Path)
}

func TestCompileOptions_Compiler(t *testing.T) {
	assert.Equal(t, DefaultCompiler, CompileOptions{}.compiler())
	assert.Equal(t, "/opt/capnp/bin/capnp", CompileOptions{Compiler: "/opt/capnp/bin/capnp"}.compiler())
}
