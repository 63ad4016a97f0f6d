package resolve

import (
	"fmt"

	"capnproto.org/go/capnp/v3/std/capnp/schema"

	"capnp-wrapper-generator/internal/common"
)

// kindNames maps schema type tags to the raw kind names used in the
// resolved model and looked up in the generator's primitive type table.
var kindNames = map[schema.Type_Which]string{
	schema.Type_Which_void:       "void",
	schema.Type_Which_bool:       "bool",
	schema.Type_Which_int8:       "int8",
	schema.Type_Which_int16:      "int16",
	schema.Type_Which_int32:      "int32",
	schema.Type_Which_int64:      "int64",
	schema.Type_Which_uint8:      "uint8",
	schema.Type_Which_uint16:     "uint16",
	schema.Type_Which_uint32:     "uint32",
	schema.Type_Which_uint64:     "uint64",
	schema.Type_Which_float32:    "float32",
	schema.Type_Which_float64:    "float64",
	schema.Type_Which_text:       "text",
	schema.Type_Which_data:       "data",
	schema.Type_Which_list:       "list",
	schema.Type_Which_enum:       "enum",
	schema.Type_Which_interface:  "interface",
	schema.Type_Which_anyPointer: "anyPointer",
}

func kindName(w schema.Type_Which) string {
	if name, ok := kindNames[w]; ok {
		return name
	}

	return w.String()
}

// Resolver carries the id indexes and node table of a single resolution
// pass. A Resolver is not reusable across requests.
type Resolver struct {
	// structIDs maps struct declaration ids to their resolved names.
	structIDs map[TypeID]string
	// enumIDs maps enum declaration ids to their resolved names.
	enumIDs map[TypeID]string
	// nodes indexes every node of the request by id.
	nodes map[TypeID]schema.Node
}

// NewResolver creates an empty Resolver.
func NewResolver() *Resolver {
	return &Resolver{
		structIDs: make(map[TypeID]string),
		enumIDs:   make(map[TypeID]string),
		nodes:     make(map[TypeID]schema.Node),
	}
}

// Resolve walks the request's requested files and resolves every top-level
// struct and enum declaration into a Schema. It fails on the first
// problem: an unreadable request, a field referencing an unregistered id,
// or a field shape without a wrapper form.
func (r *Resolver) Resolve(req schema.CodeGeneratorRequest) (*Schema, error) {
	if err := r.index(req); err != nil {
		return nil, err
	}

	files, err := req.RequestedFiles()
	if err != nil {
		return nil, fmt.Errorf("reading requested files: %w", err)
	}

	sch := &Schema{}

	for i := 0; i < files.Len(); i++ {
		if err := r.resolveFile(files.At(i), sch); err != nil {
			return nil, err
		}
	}

	return sch, nil
}

// index loads every node of the request into the id table.
func (r *Resolver) index(req schema.CodeGeneratorRequest) error {
	nodes, err := req.Nodes()
	if err != nil {
		return fmt.Errorf("reading schema nodes: %w", err)
	}

	for i := 0; i < nodes.Len(); i++ {
		n := nodes.At(i)
		r.nodes[TypeID(n.Id())] = n
	}

	return nil
}

// resolveFile resolves one requested file's top-level declarations into sch.
//
// Registration of all sibling declarations completes before any field is
// resolved, so declaration order inside a file does not matter for
// references between siblings. References to anything else (imported,
// nested, or missing declarations) fail the id lookup.
func (r *Resolver) resolveFile(f schema.CodeGeneratorRequest_RequestedFile, sch *Schema) error {
	filename, err := f.Filename()
	if err != nil {
		return fmt.Errorf("reading requested filename: %w", err)
	}

	fileNode, ok := r.nodes[TypeID(f.Id())]
	if !ok {
		return &LookupError{Ref: "file", ID: TypeID(f.Id()), Decl: filename}
	}

	sch.Files = append(sch.Files, filename)

	nested, err := fileNode.NestedNodes()
	if err != nil {
		return fmt.Errorf("reading declarations of %s: %w", filename, err)
	}

	start := len(sch.Types)

	for i := 0; i < nested.Len(); i++ {
		if err := r.registerDecl(nested.At(i), sch); err != nil {
			return err
		}
	}

	for i := start; i < len(sch.Types); i++ {
		if err := r.resolveStructFields(&sch.Types[i]); err != nil {
			return err
		}
	}

	return nil
}

// registerDecl records one top-level declaration's id and, for enums, its
// enumerant list. Declarations that are neither structs nor enums (consts,
// interfaces, annotations) have no wrapper form and are skipped.
func (r *Resolver) registerDecl(nn schema.Node_NestedNode, sch *Schema) error {
	name, err := nn.Name()
	if err != nil {
		return fmt.Errorf("reading declaration name: %w", err)
	}

	node, ok := r.nodes[TypeID(nn.Id())]
	if !ok {
		return &LookupError{Ref: "declaration", ID: TypeID(nn.Id()), Decl: name}
	}

	id := TypeID(node.Id())

	switch node.Which() {
	case schema.Node_Which_structNode:
		r.structIDs[id] = name
		sch.Types = append(sch.Types, TypeDef{Name: name, Kind: DefStruct, ID: id})
	case schema.Node_Which_enum:
		r.enumIDs[id] = name

		enumerants, err := r.enumerants(name, node)
		if err != nil {
			return err
		}

		sch.Types = append(sch.Types, TypeDef{Name: name, Kind: DefEnum, ID: id, Enumerants: enumerants})
	}

	return nil
}

// enumerants reads an enum node's value names, capitalized, in declaration
// order, without the leading sentinel. The first declared enumerant is
// always treated as the reserved "not set" value and dropped.
func (r *Resolver) enumerants(name string, node schema.Node) ([]string, error) {
	list, err := node.Enum().Enumerants()
	if err != nil {
		return nil, fmt.Errorf("reading enumerants of %s: %w", name, err)
	}

	var out []string

	for i := 0; i < list.Len(); i++ {
		enumerant, err := list.At(i).Name()
		if err != nil {
			return nil, fmt.Errorf("reading enumerant name of %s: %w", name, err)
		}

		if i == 0 {
			continue
		}

		out = append(out, common.Capitalize(enumerant))
	}

	return out, nil
}

// resolveStructFields fills in the fields of a registered struct TypeDef.
func (r *Resolver) resolveStructFields(def *TypeDef) error {
	if def.Kind != DefStruct {
		return nil
	}

	node := r.nodes[def.ID]

	fields, err := node.StructNode().Fields()
	if err != nil {
		return fmt.Errorf("reading fields of %s: %w", def.Name, err)
	}

	for i := 0; i < fields.Len(); i++ {
		field, err := r.resolveField(def.Name, fields.At(i))
		if err != nil {
			return err
		}

		def.Fields = append(def.Fields, field)
	}

	return nil
}

// resolveField maps one schema field to its resolved name and FieldType.
func (r *Resolver) resolveField(decl string, f schema.Field) (Field, error) {
	name, err := f.Name()
	if err != nil {
		return Field{}, fmt.Errorf("reading field name in %s: %w", decl, err)
	}

	if f.Which() != schema.Field_Which_slot {
		return Field{}, &UnsupportedFieldError{
			Decl:   decl,
			Field:  name,
			Reason: "group fields have no wrapper form",
		}
	}

	t, err := f.Slot().Type()
	if err != nil {
		return Field{}, fmt.Errorf("reading type of field %s.%s: %w", decl, name, err)
	}

	ft, err := r.resolveType(decl, name, t)
	if err != nil {
		return Field{}, err
	}

	return Field{Name: common.Capitalize(name), Type: ft}, nil
}

// resolveType maps a schema type to a FieldType, replacing struct and enum
// references by their registered names.
func (r *Resolver) resolveType(decl, field string, t schema.Type) (FieldType, error) {
	switch t.Which() {
	case schema.Type_Which_structType:
		id := TypeID(t.StructType().TypeId())

		name, ok := r.structIDs[id]
		if !ok {
			return FieldType{}, &LookupError{Ref: "struct", ID: id, Decl: decl, Field: field}
		}

		return FieldType{Kind: FieldStruct, Name: name}, nil

	case schema.Type_Which_enum:
		id := TypeID(t.Enum().TypeId())

		name, ok := r.enumIDs[id]
		if !ok {
			return FieldType{}, &LookupError{Ref: "enum", ID: id, Decl: decl, Field: field}
		}

		return FieldType{Kind: FieldEnum, Name: name}, nil

	case schema.Type_Which_list:
		elem, err := t.List().ElementType()
		if err != nil {
			return FieldType{}, fmt.Errorf("reading element type of field %s.%s: %w", decl, field, err)
		}

		desc, err := r.elementName(decl, field, elem)
		if err != nil {
			return FieldType{}, err
		}

		return FieldType{Kind: FieldList, Elem: desc}, nil

	default:
		return FieldType{Kind: FieldPrimitive, Name: kindName(t.Which())}, nil
	}
}

// elementName resolves a list's element one level deep: struct elements
// become their registered name, every other kind (enum included) keeps its
// raw tag.
func (r *Resolver) elementName(decl, field string, t schema.Type) (string, error) {
	if t.Which() == schema.Type_Which_structType {
		id := TypeID(t.StructType().TypeId())

		name, ok := r.structIDs[id]
		if !ok {
			return "", &LookupError{Ref: "struct", ID: id, Decl: decl, Field: field}
		}

		return name, nil
	}

	return kindName(t.Which()), nil
}
