package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// Habitat maps a deployment tier to the GCP project hosting it.
type Habitat struct {
	Project string `mapstructure:"project"`
}

// Config holds every habitat the tool knows about, keyed by habitat name.
type Config struct {
	Habitats map[string]Habitat `mapstructure:"habitats"`
}

// UnknownHabitatError reports a habitat name with no project mapping.
type UnknownHabitatError struct {
	Habitat string
	Known   []string
}

func (e *UnknownHabitatError) Error() string {
	return fmt.Sprintf("unknown habitat %q (known habitats: %s)", e.Habitat, strings.Join(e.Known, ", "))
}

// setDefaults registers the standard three-tier setup so the tool works
// out of the box. A config file or HABLS_* env vars override these.
func setDefaults(v *viper.Viper) {
	v.SetDefault("habitats.int.project", "integration-project")
	v.SetDefault("habitats.stg.project", "staging-project")
	v.SetDefault("habitats.prd.project", "production-project")
}

// Load unmarshals the habitat mapping from viper. Call after viper has
// read its config file.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Nested keys need the replacer so HABLS_HABITATS_INT_PROJECT can
	// reach habitats.int.project.
	v.SetEnvPrefix("habls")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &c, nil
}

// Resolve returns the project for the named habitat. Habitat names are
// case-insensitive since viper lowercases config keys.
func (c *Config) Resolve(habitat string) (string, error) {
	h, ok := c.Habitats[strings.ToLower(habitat)]
	if !ok || h.Project == "" {
		return "", &UnknownHabitatError{Habitat: habitat, Known: c.Names()}
	}
	return h.Project, nil
}

// Names returns the configured habitat names, sorted.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Habitats))
	for name, h := range c.Habitats {
		if h.Project == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
