// Package config reads the optional lore.yml project configuration from the
// working directory. The file is optional: a missing file means defaults. A
// present file is validated strictly so a typo'd category fails at startup
// instead of seeding an oddly-grouped playbook.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/dyluth/lore/pkg/playbook"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the project config is looked up, relative to the
// working directory.
const DefaultPath = "lore.yml"

// Config is the top-level lore.yml structure.
type Config struct {
	// PlaybookDir overrides the default .playbook directory
	PlaybookDir string `yaml:"playbook_dir,omitempty"`

	// SeedPatterns are project-specific starter lessons appended to the
	// built-in set when the playbook is seeded
	SeedPatterns []SeedPattern `yaml:"seed_patterns,omitempty"`
}

// SeedPattern is one project-specific starter lesson.
type SeedPattern struct {
	Category string `yaml:"category"`
	Content  string `yaml:"content"`
}

// Load reads and validates the config at path. A missing file is not an
// error; it yields the zero config and defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate performs strict validation on the configuration.
func (c *Config) Validate() error {
	for i, p := range c.SeedPatterns {
		if strings.TrimSpace(p.Content) == "" {
			return fmt.Errorf("seed_patterns[%d]: content is required", i)
		}
		if !playbook.Category(p.Category).Valid() {
			return fmt.Errorf("seed_patterns[%d]: unknown category %q (valid: %s)",
				i, p.Category, playbook.CategoryNames())
		}
	}
	return nil
}
