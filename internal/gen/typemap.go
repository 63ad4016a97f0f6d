package gen

// Default identity constants of the emitted C++ source.
const (
	// DefaultNamespace is the namespace holding the plain generated capnp
	// classes that every wrapper forwards to.
	DefaultNamespace = "NKikimrCapnProto_"
	// DefaultSentinel is the name of the reserved leading enumerant that
	// enum Has methods compare against.
	DefaultSentinel = "NOT_SET"
)

// BasicTypes returns the mapping from schema primitive kind names to the
// C++ types the wrapper methods expose. Each call returns a fresh map, so
// callers may overlay their own entries without affecting others.
func BasicTypes() map[string]string {
	return map[string]string{
		"void":    "void",
		"bool":    "bool",
		"int8":    "int8_t",
		"int16":   "int16_t",
		"int32":   "int32_t",
		"int64":   "int64_t",
		"uint8":   "uint8_t",
		"uint16":  "uint16_t",
		"uint32":  "uint32_t",
		"uint64":  "uint64_t",
		"float32": "float",
		"float64": "double",
		"text":    "std::string",
		"data":    "std::string",
	}
}
