// Package config provides the YAML description of a generation run:
// which schema to compile, how to invoke the compiler, and the identity
// constants baked into the emitted C++ source.
//
// Everything in the file is optional; absent keys fall back to the same
// defaults the bare command line uses, and flags override file values
// per invocation.
//
// # Schema Overview
//
// The config file has the following structure:
//
//	version: "1"
//	schema: schemas/rangequery.capnp
//	compiler: capnp
//	# -I directories; a single string also works
//	imports:
//	  - vendor/schemas
//	namespace: NKikimrCapnProto_
//	sentinel: NOT_SET
//	# overrides for the primitive type table, keyed by schema kind
//	types:
//	  text: TString
//	  data: TBuffer
//	output: gen/wrappers.h
//
// Types keys must name known primitive kinds; Validate rejects anything
// else because a typo would otherwise just drop the affected methods
// from the output.
package config
