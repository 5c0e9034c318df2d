package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	project, err := cfg.Resolve("int")
	if err != nil {
		t.Fatalf("Resolve(int) failed: %v", err)
	}
	if project != "integration-project" {
		t.Errorf("Expected 'integration-project', got %q", project)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	first, _ := cfg.Resolve("prd")
	for i := 0; i < 5; i++ {
		got, err := cfg.Resolve("prd")
		if err != nil {
			t.Fatalf("Resolve(prd) failed: %v", err)
		}
		if got != first {
			t.Fatalf("Resolve(prd) not deterministic: %q vs %q", got, first)
		}
	}
}

func TestResolveUnknownHabitat(t *testing.T) {
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	_, err = cfg.Resolve("qa7")
	if err == nil {
		t.Fatal("Expected error for unknown habitat, got nil")
	}

	uhe, ok := err.(*UnknownHabitatError)
	if !ok {
		t.Fatalf("Expected *UnknownHabitatError, got %T", err)
	}
	if uhe.Habitat != "qa7" {
		t.Errorf("Expected error to name 'qa7', got %q", uhe.Habitat)
	}

	// The message must enumerate the valid choices.
	for _, want := range []string{"int", "stg", "prd"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error message to list %q, got: %s", want, err.Error())
		}
	}
}

func TestConfigFileOverridesDefaults(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(`
habitats:
  int:
    project: acme-int-override
  sandbox:
    project: acme-sandbox
`)); err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if project, _ := cfg.Resolve("int"); project != "acme-int-override" {
		t.Errorf("Expected override 'acme-int-override', got %q", project)
	}
	if project, _ := cfg.Resolve("sandbox"); project != "acme-sandbox" {
		t.Errorf("Expected 'acme-sandbox', got %q", project)
	}
	// Defaults for untouched habitats survive the merge.
	if project, _ := cfg.Resolve("stg"); project != "staging-project" {
		t.Errorf("Expected default 'staging-project', got %q", project)
	}
}

func TestEnvVarOverridesProject(t *testing.T) {
	t.Setenv("HABLS_HABITATS_INT_PROJECT", "env-override-project")

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	project, err := cfg.Resolve("int")
	if err != nil {
		t.Fatalf("Resolve(int) failed: %v", err)
	}
	if project != "env-override-project" {
		t.Errorf("Expected env override 'env-override-project', got %q", project)
	}

	// Untouched habitats keep their defaults.
	if project, _ := cfg.Resolve("stg"); project != "staging-project" {
		t.Errorf("Expected default 'staging-project', got %q", project)
	}
}

func TestNamesSorted(t *testing.T) {
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	names := cfg.Names()
	if len(names) != 3 {
		t.Fatalf("Expected 3 habitats, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Names not sorted: %v", names)
		}
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	project, err := cfg.Resolve("INT")
	if err != nil {
		t.Fatalf("Resolve(INT) failed: %v", err)
	}
	if project != "integration-project" {
		t.Errorf("Expected 'integration-project', got %q", project)
	}
}
