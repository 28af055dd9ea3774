// Package config loads natlint.toml.
//
// Every declaration kind has a section of rule switches keyed by the snake
// case rule name:
//
//	[function_rules]
//	missing_inheritdoc = false
//	only_inheritdoc = true
//
//	[files]
//	include = ["src/**/*.sol"]
//	exclude = ["src/mocks/**"]
//
// Missing keys keep the rule default. Unknown sections and keys are errors.
package config

import (
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"natlint/internal/ast"
	"natlint/internal/rules"
)

// DefaultFileName is looked up when no config path is given.
const DefaultFileName = "natlint.toml"

var (
	// ErrUnknownKey reports a key that matches no section or rule.
	ErrUnknownKey = errors.New("unknown configuration key")
	// ErrExists is returned by Init when the target file already exists.
	ErrExists = errors.New("configuration file already exists")
)

// Files selects the sources to lint, as doublestar globs relative to the
// lint root.
type Files struct {
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

type fileFormat struct {
	ContractRules map[string]bool `toml:"contract_rules"`
	EnumRules     map[string]bool `toml:"enum_rules"`
	ErrorRules    map[string]bool `toml:"error_rules"`
	EventRules    map[string]bool `toml:"event_rules"`
	FunctionRules map[string]bool `toml:"function_rules"`
	StructRules   map[string]bool `toml:"struct_rules"`
	TypeRules     map[string]bool `toml:"type_rules"`
	VariableRules map[string]bool `toml:"variable_rules"`
	Files         *Files          `toml:"files,omitempty"`
}

func (f *fileFormat) section(kind ast.DeclKind) *map[string]bool {
	switch kind {
	case ast.KindContract:
		return &f.ContractRules
	case ast.KindEnum:
		return &f.EnumRules
	case ast.KindError:
		return &f.ErrorRules
	case ast.KindEvent:
		return &f.EventRules
	case ast.KindFunction:
		return &f.FunctionRules
	case ast.KindStruct:
		return &f.StructRules
	case ast.KindType:
		return &f.TypeRules
	case ast.KindVariable:
		return &f.VariableRules
	}
	return nil
}

// SectionName is the TOML table holding the rules of kind.
func SectionName(kind ast.DeclKind) string {
	return kind.String() + "_rules"
}

// Config is a resolved configuration.
type Config struct {
	// Path is the file it was loaded from, empty for defaults.
	Path string
	// Overrides maps a kind to the rule names switched explicitly.
	Overrides map[ast.DeclKind]map[string]bool
	Files     Files
}

// Default is the configuration used without a file.
func Default() *Config {
	return &Config{Overrides: map[ast.DeclKind]map[string]bool{}}
}

// Load reads the configuration at path. A missing file yields Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes a configuration document.
func Parse(doc string) (*Config, error) {
	var raw fileFormat
	meta, err := toml.Decode(doc, &raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse TOML")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := lo.Map(undecoded, func(k toml.Key, _ int) string { return k.String() })
		return nil, errors.Wrapf(ErrUnknownKey, "%s", strings.Join(keys, ", "))
	}

	cfg := Default()
	for _, kind := range ast.Kinds {
		section := *raw.section(kind)
		if len(section) == 0 {
			continue
		}
		overrides := make(map[string]bool, len(section))
		for key, enabled := range section {
			r, ok := lookupKey(kind, key)
			if !ok {
				return nil, errors.Wrapf(ErrUnknownKey, "%s.%s", SectionName(kind), key)
			}
			overrides[r.Name()] = enabled
		}
		cfg.Overrides[kind] = overrides
	}
	if raw.Files != nil {
		cfg.Files = *raw.Files
	}
	return cfg, nil
}

func lookupKey(kind ast.DeclKind, key string) (rules.Rule, bool) {
	return lo.Find(rules.ForKind(kind), func(r rules.Rule) bool {
		return rules.ConfigKey(r.Name()) == key
	})
}

// Enabled reports whether r is switched on.
func (c *Config) Enabled(r rules.Rule) bool {
	if enabled, ok := c.Overrides[r.Target()][r.Name()]; ok {
		return enabled
	}
	return r.EnabledByDefault()
}

// Active returns the enabled rules in catalog order.
func (c *Config) Active() []rules.Rule {
	return lo.Filter(rules.All(), func(r rules.Rule, _ int) bool { return c.Enabled(r) })
}

// Fingerprint identifies the active rule set, for cache keys.
func (c *Config) Fingerprint() string {
	names := lo.Map(c.Active(), func(r rules.Rule, _ int) string {
		return r.Target().String() + "." + r.Name()
	})
	slices.Sort(names)
	return strings.Join(names, ",")
}
