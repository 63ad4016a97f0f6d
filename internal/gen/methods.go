package gen

import "fmt"

// Per-field method line emitters. Every emitter returns one complete C++
// method line; indentation and joining belong to the block templates. The
// wrapped methods (getX, setX, hasX) are the plain generated capnp
// accessors reached through the private base class.

func readerConstructors(base string) []string {
	return []string{
		fmt.Sprintf("Reader(%s::Reader r) : %s::Reader(r) {}", base, base),
		"Reader() = default;",
	}
}

func builderConstructors(base string) []string {
	return []string{
		fmt.Sprintf("Builder(%s::Builder b) : %s::Builder(b), Reader(b.asReader()) {}", base, base),
	}
}

// builderOperators make the Builder usable through pointer syntax, which
// is how the wrappers are threaded through protobuf-style call sites.
func builderOperators() []string {
	return []string{
		"Builder* operator->() { return this; }",
		"Builder& operator*() { return *this; }",
	}
}

func readerBaseAccessor(base string) string {
	return fmt.Sprintf("const %s::Reader& GetCapnpBase() const { return *this; }", base)
}

func builderBaseAccessor(base string) string {
	return fmt.Sprintf("const %s::Builder& GetCapnpBase() const { return *this; }", base)
}

// getter covers primitive fields (cppType is the mapped value type) and
// record fields (cppType is the wrapper's "Name::Reader").
func getter(name, cppType string) string {
	return fmt.Sprintf("%s Get%s() const { return get%s(); }", cppType, name, name)
}

// enumGetter shifts the wire value down by one so the mirrored enum,
// which lost the wire's leading sentinel, starts at zero.
func enumGetter(name, typeName string) string {
	return fmt.Sprintf("%s Get%s() const { return static_cast<%s>(static_cast<size_t>(get%s()) - 1); }",
		typeName, name, typeName, name)
}

func setter(name, cppType string) string {
	return fmt.Sprintf("void Set%s(const %s& value) { return set%s(value); }", name, cppType, name)
}

func structSetter(name, typeName string) string {
	return fmt.Sprintf("void Set%s(const %s::Reader& value) { return set%s(value.GetCapnpBase()); }",
		name, typeName, name)
}

// enumSetter shifts the mirrored value up by one into the wire's numbering
// and casts it to the plain generated enum type.
func enumSetter(namespace, name, typeName string) string {
	return fmt.Sprintf("void Set%s(const %s& value) { return set%s(static_cast<%s::%s>(static_cast<size_t>(value) + 1)); }",
		name, typeName, name, namespace, typeName)
}

func structHas(name string) string {
	return fmt.Sprintf("bool Has%s() const { return has%s(); }", name, name)
}

// enumHas reads presence as "any wire value but the sentinel".
func enumHas(namespace, sentinel, name, typeName string) string {
	return fmt.Sprintf("bool Has%s() const { return get%s() != %s::%s::%s; }",
		name, name, namespace, typeName, sentinel)
}

// basicHas reads presence as "non-zero".
func basicHas(name string) string {
	return fmt.Sprintf("bool Has%s() const { return get%s() != 0; }", name, name)
}

func structMutable(name, typeName string) string {
	return fmt.Sprintf("%s::Builder Mutable%s() { return get%s(); }", typeName, name, name)
}

// usingForward re-exposes one private base getter inside the Builder so
// the Mutable methods can reach the builder-typed accessor shadowed by
// the public Reader parent.
func usingForward(base, name string) string {
	return fmt.Sprintf("using %s::Builder::get%s;", base, name)
}
