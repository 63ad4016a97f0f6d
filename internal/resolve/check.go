package resolve

import (
	"errors"
	"fmt"

	"capnproto.org/go/capnp/v3/std/capnp/schema"

	"capnp-wrapper-generator/internal/diagnostic"
)

// Check resolves the request like Resolve but keeps walking after
// problems, collecting every finding as a diagnostic. Fields that fail to
// resolve are left out of the returned Schema. Intended for schema
// authors; the generate path stays fail-fast.
func (r *Resolver) Check(req schema.CodeGeneratorRequest) (*Schema, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	if err := r.index(req); err != nil {
		diags.AddError(err.Error(), "", "")
		return nil, diags
	}

	files, err := req.RequestedFiles()
	if err != nil {
		diags.AddError(fmt.Sprintf("reading requested files: %v", err), "", "")
		return nil, diags
	}

	sch := &Schema{}

	for i := 0; i < files.Len(); i++ {
		r.checkFile(files.At(i), sch, &diags)
	}

	return sch, diags
}

func (r *Resolver) checkFile(f schema.CodeGeneratorRequest_RequestedFile, sch *Schema, diags *diagnostic.Diagnostics) {
	filename, err := f.Filename()
	if err != nil {
		diags.AddError(fmt.Sprintf("reading requested filename: %v", err), "", "")
		return
	}

	fileNode, ok := r.nodes[TypeID(f.Id())]
	if !ok {
		diags.AddError(fmt.Sprintf("unknown file id %s", TypeID(f.Id())), filename, "")
		return
	}

	sch.Files = append(sch.Files, filename)

	nested, err := fileNode.NestedNodes()
	if err != nil {
		diags.AddError(fmt.Sprintf("reading declarations: %v", err), filename, "")
		return
	}

	start := len(sch.Types)

	for i := 0; i < nested.Len(); i++ {
		if err := r.registerDecl(nested.At(i), sch); err != nil {
			diags.AddError(err.Error(), filename, "")
		}
	}

	for i := start; i < len(sch.Types); i++ {
		r.checkDecl(&sch.Types[i], diags)
	}

	for i := start; i < len(sch.Types); i++ {
		if sch.Types[i].Kind == DefStruct {
			r.checkStructFields(&sch.Types[i], diags)
		}
	}
}

// checkDecl reports declaration-level findings that the fail-fast path
// tolerates silently.
func (r *Resolver) checkDecl(def *TypeDef, diags *diagnostic.Diagnostics) {
	node := r.nodes[def.ID]

	if nested, err := node.NestedNodes(); err == nil && nested.Len() > 0 {
		diags.AddWarning("nested declarations are not resolved; fields referencing them will fail", def.Name, "")
	}

	if def.Kind == DefEnum && len(def.Enumerants) == 0 {
		diags.AddWarning("no enumerants remain after dropping the leading sentinel", def.Name, "")
	}
}

// checkStructFields resolves a struct's fields, recording failures and
// keeping the fields that do resolve.
func (r *Resolver) checkStructFields(def *TypeDef, diags *diagnostic.Diagnostics) {
	node := r.nodes[def.ID]

	fields, err := node.StructNode().Fields()
	if err != nil {
		diags.AddError(fmt.Sprintf("reading fields: %v", err), def.Name, "")
		return
	}

	for i := 0; i < fields.Len(); i++ {
		field, err := r.resolveField(def.Name, fields.At(i))
		if err != nil {
			r.addFieldError(def.Name, err, diags)
			continue
		}

		def.Fields = append(def.Fields, field)
	}
}

// addFieldError turns a field resolution error into a located diagnostic.
func (r *Resolver) addFieldError(decl string, err error, diags *diagnostic.Diagnostics) {
	var (
		lookupErr      *LookupError
		unsupportedErr *UnsupportedFieldError
	)

	switch {
	case errors.As(err, &lookupErr):
		diags.AddError(fmt.Sprintf("unknown %s id %s", lookupErr.Ref, lookupErr.ID), decl, lookupErr.Field)
	case errors.As(err, &unsupportedErr):
		diags.AddError(unsupportedErr.Reason, decl, unsupportedErr.Field)
	default:
		diags.AddError(err.Error(), decl, "")
	}
}
