package gen

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"capnp-wrapper-generator/internal/resolve"
)

// Config holds configuration for wrapper generation.
type Config struct {
	// Namespace is the C++ namespace holding the plain generated capnp
	// classes the wrappers forward to.
	Namespace string
	// Sentinel is the reserved leading enumerant name that enum Has
	// methods compare against.
	Sentinel string
	// Types maps primitive kind names to the C++ types the wrappers
	// expose. Fields whose kind has no entry get no methods.
	Types map[string]string
}

// DefaultConfig returns the default generation configuration.
func DefaultConfig() Config {
	return Config{
		Namespace: DefaultNamespace,
		Sentinel:  DefaultSentinel,
		Types:     BasicTypes(),
	}
}

// Generator renders resolved declarations into C++ wrapper source.
type Generator struct {
	config Config
}

// New creates a Generator. Zero-value config fields fall back to their
// defaults, so New(Config{}) behaves like New(DefaultConfig()).
func New(config Config) *Generator {
	if config.Namespace == "" {
		config.Namespace = DefaultNamespace
	}

	if config.Sentinel == "" {
		config.Sentinel = DefaultSentinel
	}

	if config.Types == nil {
		config.Types = BasicTypes()
	}

	return &Generator{config: config}
}

// Generate renders every declaration of sch, in declaration order, into
// one C++ source text. Records become Reader/Builder wrapper blocks,
// enums become scoped enum mirrors.
func (g *Generator) Generate(sch *resolve.Schema) (string, error) {
	var b strings.Builder

	for _, def := range sch.Types {
		var err error

		switch def.Kind {
		case resolve.DefStruct:
			err = g.writeStruct(&b, def)
		case resolve.DefEnum:
			err = g.writeEnum(&b, def)
		default:
			err = fmt.Errorf("declaration %s has unresolved kind", def.Name)
		}

		if err != nil {
			return "", err
		}
	}

	return b.String(), nil
}

// qualified returns the plain capnp class path of a declaration.
func (g *Generator) qualified(name string) string {
	return g.config.Namespace + "::" + name
}

// structData feeds the record block template.
type structData struct {
	Name           string
	Base           string
	Usings         []string
	ReaderMethods  []string
	BuilderMethods []string
}

// enumData feeds the enum block template.
type enumData struct {
	Name  string
	Lines []string
}

func (g *Generator) writeStruct(w io.Writer, def resolve.TypeDef) error {
	data := structData{
		Name:           def.Name,
		Base:           g.qualified(def.Name),
		Usings:         g.usingForwards(def),
		ReaderMethods:  g.readerMethods(def),
		BuilderMethods: g.builderMethods(def),
	}

	if err := structTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("rendering record %s: %w", def.Name, err)
	}

	return nil
}

func (g *Generator) writeEnum(w io.Writer, def resolve.TypeDef) error {
	data := enumData{Name: def.Name, Lines: enumBodyLines(def.Enumerants)}

	if err := enumTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("rendering enum %s: %w", def.Name, err)
	}

	return nil
}

// readerMethods lists the Reader block's lines: constructors, value
// accessors, presence checks, then the base escape hatch.
func (g *Generator) readerMethods(def resolve.TypeDef) []string {
	base := g.qualified(def.Name)

	return concat(
		readerConstructors(base),
		g.getters(def),
		g.hasMethods(def),
		[]string{readerBaseAccessor(base)},
	)
}

// builderMethods lists the Builder block's lines: constructor, pointer
// operators, mutators, record accessors, then the base escape hatch.
func (g *Generator) builderMethods(def resolve.TypeDef) []string {
	base := g.qualified(def.Name)

	return concat(
		builderConstructors(base),
		builderOperators(),
		g.setters(def),
		g.mutables(def),
		[]string{builderBaseAccessor(base)},
	)
}

// getters emits Get methods bucketed by kind: primitives, then record
// fields, then enums. Fields with no wrapper form (lists, kinds outside
// the type table) get nothing.
func (g *Generator) getters(def resolve.TypeDef) []string {
	var basic, records, enums []string

	for _, f := range def.Fields {
		switch f.Type.Kind {
		case resolve.FieldPrimitive:
			if cppType, ok := g.config.Types[f.Type.Name]; ok {
				basic = append(basic, getter(f.Name, cppType))
			}
		case resolve.FieldStruct:
			records = append(records, getter(f.Name, f.Type.Name+"::Reader"))
		case resolve.FieldEnum:
			enums = append(enums, enumGetter(f.Name, f.Type.Name))
		}
	}

	return concat(basic, records, enums)
}

// hasMethods emits Has methods bucketed record, enum, primitive.
func (g *Generator) hasMethods(def resolve.TypeDef) []string {
	var records, enums, basic []string

	for _, f := range def.Fields {
		switch f.Type.Kind {
		case resolve.FieldStruct:
			records = append(records, structHas(f.Name))
		case resolve.FieldEnum:
			enums = append(enums, enumHas(g.config.Namespace, g.config.Sentinel, f.Name, f.Type.Name))
		case resolve.FieldPrimitive:
			if _, ok := g.config.Types[f.Type.Name]; ok {
				basic = append(basic, basicHas(f.Name))
			}
		}
	}

	return concat(records, enums, basic)
}

// setters emits Set methods bucketed primitive, record, enum.
func (g *Generator) setters(def resolve.TypeDef) []string {
	var basic, records, enums []string

	for _, f := range def.Fields {
		switch f.Type.Kind {
		case resolve.FieldPrimitive:
			if cppType, ok := g.config.Types[f.Type.Name]; ok {
				basic = append(basic, setter(f.Name, cppType))
			}
		case resolve.FieldStruct:
			records = append(records, structSetter(f.Name, f.Type.Name))
		case resolve.FieldEnum:
			enums = append(enums, enumSetter(g.config.Namespace, f.Name, f.Type.Name))
		}
	}

	return concat(basic, records, enums)
}

// mutables emits Mutable methods, record fields only.
func (g *Generator) mutables(def resolve.TypeDef) []string {
	var out []string

	for _, f := range def.Fields {
		if f.Type.Kind == resolve.FieldStruct {
			out = append(out, structMutable(f.Name, f.Type.Name))
		}
	}

	return out
}

// usingForwards lists the private base getters the Builder re-exposes,
// one per record field.
func (g *Generator) usingForwards(def resolve.TypeDef) []string {
	base := g.qualified(def.Name)

	var out []string

	for _, f := range def.Fields {
		if f.Type.Kind == resolve.FieldStruct {
			out = append(out, usingForward(base, f.Name))
		}
	}

	return out
}

// concat returns a new slice concatenating the passed in slices. It is
// a stand-in for slices.Concat, which needs a go1.22 toolchain.
func concat[S ~[]E, E any](ss ...S) S {
	size := 0
	for _, s := range ss {
		size += len(s)
	}

	out := make(S, 0, size)
	for _, s := range ss {
		out = append(out, s...)
	}

	return out
}

// enumBodyLines renders the enumerant lines of an enum mirror. An enum
// with nothing retained still gets its lone separator line.
func enumBodyLines(enumerants []string) []string {
	if len(enumerants) == 0 {
		return []string{","}
	}

	lines := make([]string, len(enumerants))
	for i, e := range enumerants {
		lines[i] = e + ","
	}

	return lines
}

// Templates for the emitted blocks. Method lines arrive fully formatted;
// the templates own block structure and indentation.

var structTemplate = template.Must(template.New("record").Parse(`
struct {{.Name}} {
    struct Reader : private {{.Base}}::Reader {
    public:
{{- range .ReaderMethods}}
        {{.}}
{{- end}}
    };

    struct Builder : private {{.Base}}::Builder, public Reader {
    private:
{{- range .Usings}}
        {{.}}
{{- end}}
    public:
{{- range .BuilderMethods}}
        {{.}}
{{- end}}
    };
};
`))

var enumTemplate = template.Must(template.New("enum").Parse(`
enum class {{.Name}} {
{{- range .Lines}}
    {{.}}
{{- end}}
};
`))
