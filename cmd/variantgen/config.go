package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/variant/errors"
)

// maxArity keeps discriminants within the uint8 the generated structs use.
const maxArity = 255

// Config controls what variantgen emits.
type Config struct {
	Package    string `yaml:"package"`
	ImportPath string `yaml:"import_path"`
	Output     string `yaml:"output"`
	MinArity   int    `yaml:"min_arity"`
	MaxArity   int    `yaml:"max_arity"`
}

// DefaultConfig generates Variant1 through Variant6 into variant_gen.go.
func DefaultConfig() Config {
	return Config{
		Package:    "variant",
		ImportPath: "github.com/wippyai/variant",
		Output:     "variant_gen.go",
		MinArity:   1,
		MaxArity:   6,
	}
}

// LoadConfig reads a YAML config on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.InvalidConfig("read "+path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.InvalidConfig("parse "+path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects configs that would emit an empty or uncompilable file.
func (c Config) Validate() error {
	switch {
	case c.Package == "":
		return errors.InvalidConfig("package must be set", nil)
	case c.ImportPath == "":
		return errors.InvalidConfig("import_path must be set", nil)
	case c.MinArity < 1:
		return errors.InvalidConfig(fmt.Sprintf("min_arity %d: a variant needs at least one alternative", c.MinArity), nil)
	case c.MaxArity < c.MinArity:
		return errors.InvalidConfig(fmt.Sprintf("max_arity %d is below min_arity %d", c.MaxArity, c.MinArity), nil)
	case c.MaxArity > maxArity:
		return errors.InvalidConfig(fmt.Sprintf("max_arity %d exceeds %d", c.MaxArity, maxArity), nil)
	}
	return nil
}
