package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/syssam/dogen/compiler/gen"
)

const defaultConfigFile = "dogen.yaml"

// Environment variables consulted when a flag is not set.
const (
	envVendor = "DOGEN_VENDOR"
	envModule = "DOGEN_MODULE"
	envRoot   = "DOGEN_ROOT"
)

// FileConfig represents dogen.yaml.
type FileConfig struct {
	Root   string `yaml:"root,omitempty"`
	Vendor string `yaml:"vendor,omitempty"`
	Module string `yaml:"module,omitempty"`
}

// LoadFileConfig reads the YAML config at path. A missing file yields an
// empty config unless required is set.
func LoadFileConfig(path string, required bool) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// settings are the values left after applying precedence:
// flag > env > config file > default.
type settings struct {
	Vendor string
	Module string
	Root   string
	// schemaless is set when an inline attribute list replaces the schema.
	schemaless bool
	schema     string
}

func resolve(flags *pflag.FlagSet, o *options) (*settings, error) {
	fc, err := LoadFileConfig(o.config, flags.Changed("config"))
	if err != nil {
		return nil, err
	}
	return &settings{
		Vendor:     pick(flags.Changed("vendor"), o.vendor, envVendor, fc.Vendor, ""),
		Module:     pick(flags.Changed("module"), o.module, envModule, fc.Module, ""),
		Root:       pick(flags.Changed("root"), o.root, envRoot, fc.Root, gen.DefaultRoot),
		schemaless: strings.TrimSpace(o.attributes) != "",
		schema:     strings.TrimSpace(o.schema),
	}, nil
}

func pick(changed bool, flag, env, file, def string) string {
	if changed {
		return strings.TrimSpace(flag)
	}
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		return v
	}
	if v := strings.TrimSpace(file); v != "" {
		return v
	}
	return def
}

func (s *settings) validate() error {
	var missing []string
	if s.Vendor == "" {
		missing = append(missing, "vendor")
	}
	if s.Module == "" {
		missing = append(missing, "module")
	}
	if s.schema == "" && !s.schemaless {
		missing = append(missing, "db_schema")
	}
	if len(missing) > 0 {
		return fmt.Errorf(`required flag(s) "%s" not set`, strings.Join(missing, `", "`))
	}
	return nil
}
