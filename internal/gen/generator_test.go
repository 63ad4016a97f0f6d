package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capnp-wrapper-generator/internal/resolve"
)

func primitiveField(name, kind string) resolve.Field {
	return resolve.Field{Name: name, Type: resolve.FieldType{Kind: resolve.FieldPrimitive, Name: kind}}
}

func recordField(name, typeName string) resolve.Field {
	return resolve.Field{Name: name, Type: resolve.FieldType{Kind: resolve.FieldStruct, Name: typeName}}
}

func enumField(name, typeName string) resolve.Field {
	return resolve.Field{Name: name, Type: resolve.FieldType{Kind: resolve.FieldEnum, Name: typeName}}
}

func listField(name, elem string) resolve.Field {
	return resolve.Field{Name: name, Type: resolve.FieldType{Kind: resolve.FieldList, Elem: elem}}
}

func TestGenerator_Generate_EnumBlock(t *testing.T) {
	sch := &resolve.Schema{Types: []resolve.TypeDef{
		{Name: "Mode", Kind: resolve.DefEnum, Enumerants: []string{"Asc", "Desc"}},
	}}

	out, err := New(DefaultConfig()).Generate(sch)
	require.NoError(t, err)

	assert.Equal(t, "\nenum class Mode {\n    Asc,\n    Desc,\n};\n", out)
}

func TestGenerator_Generate_SentinelOnlyEnumBlock(t *testing.T) {
	sch := &resolve.Schema{Types: []resolve.TypeDef{
		{Name: "Empty", Kind: resolve.DefEnum},
	}}

	out, err := New(DefaultConfig()).Generate(sch)
	require.NoError(t, err)

	assert.Equal(t, "\nenum class Empty {\n    ,\n};\n", out)
}

func TestGenerator_Generate_RecordBlock(t *testing.T) {
	sch := &resolve.Schema{Types: []resolve.TypeDef{
		{Name: "Pair", Kind: resolve.DefStruct, Fields: []resolve.Field{
			primitiveField("Count", "uint32"),
			primitiveField("Label", "text"),
		}},
	}}

	out, err := New(DefaultConfig()).Generate(sch)
	require.NoError(t, err)

	want := strings.Join([]string{
		"",
		"struct Pair {",
		"    struct Reader : private NKikimrCapnProto_::Pair::Reader {",
		"    public:",
		"        Reader(NKikimrCapnProto_::Pair::Reader r) : NKikimrCapnProto_::Pair::Reader(r) {}",
		"        Reader() = default;",
		"        uint32_t GetCount() const { return getCount(); }",
		"        std::string GetLabel() const { return getLabel(); }",
		"        bool HasCount() const { return getCount() != 0; }",
		"        bool HasLabel() const { return getLabel() != 0; }",
		"        const NKikimrCapnProto_::Pair::Reader& GetCapnpBase() const { return *this; }",
		"    };",
		"",
		"    struct Builder : private NKikimrCapnProto_::Pair::Builder, public Reader {",
		"    private:",
		"    public:",
		"        Builder(NKikimrCapnProto_::Pair::Builder b) : NKikimrCapnProto_::Pair::Builder(b), Reader(b.asReader()) {}",
		"        Builder* operator->() { return this; }",
		"        Builder& operator*() { return *this; }",
		"        void SetCount(const uint32_t& value) { return setCount(value); }",
		"        void SetLabel(const std::string& value) { return setLabel(value); }",
		"        const NKikimrCapnProto_::Pair::Builder& GetCapnpBase() const { return *this; }",
		"    };",
		"};",
		"",
	}, "\n")

	assert.Equal(t, want, out)
}

func TestGenerator_Generate_RecordWithCrossReferences(t *testing.T) {
	sch := &resolve.Schema{Types: []resolve.TypeDef{
		{Name: "Query", Kind: resolve.DefStruct, Fields: []resolve.Field{
			recordField("Range", "Pair"),
			enumField("Mode", "Mode"),
			listField("Values", "int32"),
			primitiveField("Flags", "uint16"),
		}},
	}}

	out, err := New(DefaultConfig()).Generate(sch)
	require.NoError(t, err)

	// Record fields forward through the wrapper types.
	assert.Contains(t, out, "        using NKikimrCapnProto_::Query::Builder::getRange;")
	assert.Contains(t, out, "        Pair::Reader GetRange() const { return getRange(); }")
	assert.Contains(t, out, "        void SetRange(const Pair::Reader& value) { return setRange(value.GetCapnpBase()); }")
	assert.Contains(t, out, "        Pair::Builder MutableRange() { return getRange(); }")
	assert.Contains(t, out, "        bool HasRange() const { return hasRange(); }")

	// Enum fields shift across the dropped sentinel.
	assert.Contains(t, out, "        Mode GetMode() const { return static_cast<Mode>(static_cast<size_t>(getMode()) - 1); }")
	assert.Contains(t, out, "        void SetMode(const Mode& value) { return setMode(static_cast<NKikimrCapnProto_::Mode>(static_cast<size_t>(value) + 1)); }")
	assert.Contains(t, out, "        bool HasMode() const { return getMode() != NKikimrCapnProto_::Mode::NOT_SET; }")

	// List fields get no methods at all.
	assert.NotContains(t, out, "Values")
}

func TestGenerator_Generate_MethodOrder(t *testing.T) {
	sch := &resolve.Schema{Types: []resolve.TypeDef{
		{Name: "Query", Kind: resolve.DefStruct, Fields: []resolve.Field{
			recordField("Range", "Pair"),
			enumField("Mode", "Mode"),
			primitiveField("Flags", "uint16"),
		}},
	}}

	out, err := New(DefaultConfig()).Generate(sch)
	require.NoError(t, err)

	ordered := func(markers ...string) {
		t.Helper()

		last := -1
		for _, m := range markers {
			idx := strings.Index(out, m)
			require.GreaterOrEqual(t, idx, 0, "missing %q", m)
			assert.Greater(t, idx, last, "%q out of order", m)
			last = idx
		}
	}

	// Getters: primitive, record, enum.
	ordered("GetFlags", "GetRange", "Mode GetMode")
	// Has: record, enum, primitive.
	ordered("HasRange", "HasMode", "HasFlags")
	// Setters: primitive, record, enum.
	ordered("SetFlags", "SetRange", "SetMode")
	// Mutables come after all setters.
	ordered("SetMode", "MutableRange")
}

func TestGenerator_Generate_DeclarationOrder(t *testing.T) {
	sch := &resolve.Schema{Types: []resolve.TypeDef{
		{Name: "Mode", Kind: resolve.DefEnum, Enumerants: []string{"On"}},
		{Name: "Point", Kind: resolve.DefStruct},
	}}

	out, err := New(DefaultConfig()).Generate(sch)
	require.NoError(t, err)

	modeIdx := strings.Index(out, "enum class Mode")
	pointIdx := strings.Index(out, "struct Point")
	require.GreaterOrEqual(t, modeIdx, 0)
	require.GreaterOrEqual(t, pointIdx, 0)
	assert.Less(t, modeIdx, pointIdx)

	// Blocks stay separated by a blank line.
	assert.Contains(t, out, "};\n\nstruct Point")
}

func TestGenerator_Generate_Deterministic(t *testing.T) {
	sch := &resolve.Schema{Types: []resolve.TypeDef{
		{Name: "Pair", Kind: resolve.DefStruct, Fields: []resolve.Field{
			primitiveField("Count", "uint32"),
			recordField("Next", "Pair"),
			enumField("Mode", "Mode"),
		}},
		{Name: "Mode", Kind: resolve.DefEnum, Enumerants: []string{"Asc", "Desc"}},
	}}

	first, err := New(DefaultConfig()).Generate(sch)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := New(DefaultConfig()).Generate(sch)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestGenerator_Generate_EmptySchema(t *testing.T) {
	out, err := New(DefaultConfig()).Generate(&resolve.Schema{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGenerator_Generate_SkipsKindsOutsideTypeTable(t *testing.T) {
	sch := &resolve.Schema{Types: []resolve.TypeDef{
		{Name: "Odd", Kind: resolve.DefStruct, Fields: []resolve.Field{
			primitiveField("Any", "anyPointer"),
			primitiveField("Iface", "interface"),
			primitiveField("Real", "bool"),
		}},
	}}

	out, err := New(DefaultConfig()).Generate(sch)
	require.NoError(t, err)

	assert.NotContains(t, out, "GetAny")
	assert.NotContains(t, out, "GetIface")
	assert.NotContains(t, out, "HasAny")
	assert.Contains(t, out, "bool GetReal() const { return getReal(); }")
}

func TestGenerator_Generate_UnresolvedKindFails(t *testing.T) {
	sch := &resolve.Schema{Types: []resolve.TypeDef{
		{Name: "Mystery", Kind: resolve.DefUnknown},
	}}

	_, err := New(DefaultConfig()).Generate(sch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mystery")
}

func TestGenerator_Generate_CustomNamespaceAndSentinel(t *testing.T) {
	cfg := Config{
		Namespace: "MyProto_",
		Sentinel:  "UNSET",
		Types:     BasicTypes(),
	}

	sch := &resolve.Schema{Types: []resolve.TypeDef{
		{Name: "Query", Kind: resolve.DefStruct, Fields: []resolve.Field{
			enumField("Mode", "Mode"),
		}},
	}}

	out, err := New(cfg).Generate(sch)
	require.NoError(t, err)

	assert.Contains(t, out, "struct Reader : private MyProto_::Query::Reader {")
	assert.Contains(t, out, "bool HasMode() const { return getMode() != MyProto_::Mode::UNSET; }")
	assert.NotContains(t, out, "NKikimrCapnProto_")
}

func TestGenerator_Generate_CustomTypeTable(t *testing.T) {
	types := BasicTypes()
	types["text"] = "TString"

	sch := &resolve.Schema{Types: []resolve.TypeDef{
		{Name: "Pair", Kind: resolve.DefStruct, Fields: []resolve.Field{
			primitiveField("Label", "text"),
		}},
	}}

	out, err := New(Config{Types: types}).Generate(sch)
	require.NoError(t, err)

	assert.Contains(t, out, "TString GetLabel() const { return getLabel(); }")
	assert.Contains(t, out, "void SetLabel(const TString& value) { return setLabel(value); }")
}

func TestNew_ZeroConfigUsesDefaults(t *testing.T) {
	sch := &resolve.Schema{Types: []resolve.TypeDef{
		{Name: "Pair", Kind: resolve.DefStruct, Fields: []resolve.Field{
			primitiveField("Count", "uint32"),
		}},
	}}

	fromZero, err := New(Config{}).Generate(sch)
	require.NoError(t, err)

	fromDefault, err := New(DefaultConfig()).Generate(sch)
	require.NoError(t, err)

	assert.Equal(t, fromDefault, fromZero)
}
