package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func (s *sample) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("ZOODESK_TEST_NAME", "penguins")
	p := writeConfig(t, "name: ${ZOODESK_TEST_NAME}\ncount: 3\n")
	var s sample
	if err := Load(p, &s); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "penguins" || s.Count != 3 {
		t.Errorf("sample = %+v", s)
	}
}

func TestLoad_KeepsDefaults(t *testing.T) {
	p := writeConfig(t, "name: lions\n")
	s := sample{Count: 7}
	if err := Load(p, &s); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Count != 7 {
		t.Errorf("count = %d, want default 7", s.Count)
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	p := writeConfig(t, "name: lions\ncolour: gold\n")
	var s sample
	if err := Load(p, &s); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoad_ValidationError(t *testing.T) {
	p := writeConfig(t, "count: 1\n")
	var s sample
	err := Load(p, &s)
	if err == nil || !strings.Contains(err.Error(), "name is required") {
		t.Fatalf("err = %v, want validation failure", err)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	p := writeConfig(t, "")
	s := sample{Name: "default"}
	if err := Load(p, &s); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoadOptional_Missing(t *testing.T) {
	s := sample{Name: "default"}
	found, err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), &s)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if found {
		t.Error("found = true for missing file")
	}
	if s.Name != "default" {
		t.Errorf("defaults overwritten: %+v", s)
	}
}
