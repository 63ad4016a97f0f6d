package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"capnp-wrapper-generator/internal/gen"
	"capnp-wrapper-generator/internal/resolve"
)

// DefaultSchemaPath is the schema compiled when neither the command line
// nor the config file names one.
const DefaultSchemaPath = "test/trangequery.capnp"

// Config represents the root of a YAML generation config file.
// This is the reviewed, checked-in description of a generation run;
// command line flags override it per invocation.
type Config struct {
	// Version of the config schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Schema is the schema file compiled when none is given on the
	// command line.
	Schema string `yaml:"schema,omitempty"`

	// Compiler is the external schema compiler binary name or path.
	Compiler string `yaml:"compiler,omitempty"`

	// Imports lists directories handed to the compiler as -I flags.
	// Accepts a single string or a list.
	Imports StringArray `yaml:"imports,omitempty"`

	// Namespace is the C++ namespace holding the plain generated capnp
	// classes the wrappers forward to.
	Namespace string `yaml:"namespace,omitempty"`

	// Sentinel is the reserved leading enumerant name enum presence
	// checks compare against.
	Sentinel string `yaml:"sentinel,omitempty"`

	// Types overrides entries of the primitive type table, keyed by
	// schema kind name.
	// Example: { "text": "TString", "data": "TBuffer" }
	Types map[string]string `yaml:"types,omitempty"`

	// Output is the file the generated source is written to.
	// Empty means standard output.
	Output string `yaml:"output,omitempty"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.Schema == "" {
		cfg.Schema = DefaultSchemaPath
	}

	if cfg.Compiler == "" {
		cfg.Compiler = resolve.DefaultCompiler
	}

	if cfg.Namespace == "" {
		cfg.Namespace = gen.DefaultNamespace
	}

	if cfg.Sentinel == "" {
		cfg.Sentinel = gen.DefaultSentinel
	}
}

// Validate rejects values that would make a run silently generate wrong
// output. Types keys must name known primitive kinds; a typo there would
// otherwise just stop the affected methods from being emitted.
func (c *Config) Validate() error {
	known := gen.BasicTypes()

	var bad []string

	for kind := range c.Types {
		if _, ok := known[kind]; !ok {
			bad = append(bad, kind)
		}
	}

	if len(bad) > 0 {
		sort.Strings(bad)
		return fmt.Errorf("unknown primitive kinds in types: %s", strings.Join(bad, ", "))
	}

	return nil
}

// TypeTable returns the primitive type table with the config's overrides
// applied on top of the defaults.
func (c *Config) TypeTable() map[string]string {
	table := gen.BasicTypes()
	for kind, cppType := range c.Types {
		table[kind] = cppType
	}

	return table
}

// GeneratorConfig materializes the generation config this file describes.
func (c *Config) GeneratorConfig() gen.Config {
	return gen.Config{
		Namespace: c.Namespace,
		Sentinel:  c.Sentinel,
		Types:     c.TypeTable(),
	}
}

// CompileOptions materializes the schema compiler invocation options.
func (c *Config) CompileOptions() resolve.CompileOptions {
	return resolve.CompileOptions{
		Compiler: c.Compiler,
		Imports:  c.Imports,
	}
}
