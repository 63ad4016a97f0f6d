package resolve

import (
	"fmt"

	"capnp-wrapper-generator/internal/common"
)

// TypeID is the stable numeric identity the schema compiler assigns to
// every declaration. It is used only to dereference cross-references during
// resolution and never appears in generated output.
type TypeID uint64

// String returns the id in the schema language's @0x... notation.
func (id TypeID) String() string {
	return fmt.Sprintf("0x%016x", uint64(id))
}

// DefKind represents the kind of a resolved declaration.
type DefKind int

const (
	DefUnknown DefKind = iota
	DefStruct          // record type with named, typed fields
	DefEnum            // closed, ordered set of named values
)

// String returns a human-readable representation of the DefKind.
func (k DefKind) String() string {
	switch k {
	case DefStruct:
		return "struct"
	case DefEnum:
		return "enum"
	default:
		return common.UnknownStr
	}
}

// FieldKind represents the resolved shape of a field type.
type FieldKind int

const (
	FieldUnknown   FieldKind = iota
	FieldPrimitive           // scalar, text or data kind, kept as its raw tag
	FieldStruct              // reference to a resolved struct declaration
	FieldEnum                // reference to a resolved enum declaration
	FieldList                // single-level list of a resolved element
)

// String returns a human-readable representation of the FieldKind.
func (k FieldKind) String() string {
	switch k {
	case FieldPrimitive:
		return "primitive"
	case FieldStruct:
		return "struct"
	case FieldEnum:
		return "enum"
	case FieldList:
		return "list"
	default:
		return common.UnknownStr
	}
}

// FieldType describes the resolved type of a single struct field.
type FieldType struct {
	// Kind discriminates which of the remaining fields is meaningful.
	Kind FieldKind
	// Name holds the raw primitive kind tag ("int32", "text", ...) or the
	// resolved struct/enum name. Empty for lists.
	Name string
	// Elem holds the single resolved element description of a list field:
	// a struct name when the element is a struct, otherwise the element's
	// raw kind tag. Lists resolve exactly one level deep, so a list of
	// lists keeps the bare "list" tag.
	Elem string
}

// String renders the type the way it appears in the resolved model:
// List(<elem>) for lists, the name or kind tag otherwise.
func (t FieldType) String() string {
	if t.Kind == FieldList {
		return fmt.Sprintf("List(%s)", t.Elem)
	}

	return t.Name
}

// Field is a resolved struct field. Name is already capitalized to form the
// wrapper method suffix and the base accessor suffix (get<Name>, set<Name>).
type Field struct {
	Name string
	Type FieldType
}

// TypeDef is one resolved top-level declaration.
type TypeDef struct {
	// Name of the declaration as written in the schema.
	Name string
	// Kind tells whether Fields or Enumerants carries the content.
	Kind DefKind
	// ID is the declaration's schema id.
	ID TypeID
	// Fields holds the ordered resolved fields of a struct declaration.
	Fields []Field
	// Enumerants holds the capitalized enumerant names of an enum
	// declaration, in declaration order, with the leading sentinel dropped.
	Enumerants []string
}

// Schema is the resolved artifact of one pass: every struct and enum
// declaration of the requested file(s), in declaration order. It is built
// once by the resolver and read-only afterwards.
type Schema struct {
	// Files lists the requested schema file names, for display.
	Files []string
	// Types holds the resolved declarations in declaration order.
	Types []TypeDef
}
