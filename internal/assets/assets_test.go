package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "neon", false},
		{"hyphenated", "dark-neon", false},
		{"underscore", "print_v2", false},
		{"empty", "", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"traversal", "..", true},
		{"extension", "neon.css", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", tt.input, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	for _, name := range []string{DefaultStyleName, PrintStyleName} {
		css, err := loader.LoadStyle(name)
		if err != nil {
			t.Fatalf("LoadStyle(%q) error = %v", name, err)
		}
		if !strings.Contains(css, "--brand") {
			t.Errorf("LoadStyle(%q) missing brand variable", name)
		}
	}

	if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadStyle("../neon"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle(../neon) error = %v, want ErrInvalidAssetName", err)
	}
}

func TestEmbeddedLoader_LoadTemplateSet(t *testing.T) {
	t.Parallel()

	ts, err := NewEmbeddedLoader().LoadTemplateSet(DefaultTemplateSetName)
	if err != nil {
		t.Fatalf("LoadTemplateSet() error = %v", err)
	}
	if ts.Name != DefaultTemplateSetName {
		t.Errorf("Name = %q", ts.Name)
	}

	for _, want := range []string{`define "card"`, `define "chart"`, `define "callout"`, "세부 목차 없음 (본문 참조)", "정규 강의"} {
		if !strings.Contains(ts.Page, want) {
			t.Errorf("page template missing %q", want)
		}
	}
	if !strings.Contains(ts.Document, "</head>") || !strings.Contains(ts.Document, "{{.Body}}") {
		t.Error("document template missing head or body slot")
	}

	if _, err := NewEmbeddedLoader().LoadTemplateSet("missing"); !errors.Is(err, ErrTemplateSetNotFound) {
		t.Errorf("LoadTemplateSet(missing) error = %v, want ErrTemplateSetNotFound", err)
	}
}

func TestPackageLoaders(t *testing.T) {
	t.Parallel()

	if _, err := LoadStyle(DefaultStyleName); err != nil {
		t.Errorf("LoadStyle() error = %v", err)
	}
	if _, err := LoadTemplateSet(DefaultTemplateSetName); err != nil {
		t.Errorf("LoadTemplateSet() error = %v", err)
	}
}

func TestBuiltinNames(t *testing.T) {
	t.Parallel()

	styles := StyleNames()
	if len(styles) != 2 || styles[0] != DefaultStyleName || styles[1] != PrintStyleName {
		t.Errorf("StyleNames() = %v, want [%s %s]", styles, DefaultStyleName, PrintStyleName)
	}
	sets := TemplateSetNames()
	if len(sets) != 1 || sets[0] != DefaultTemplateSetName {
		t.Errorf("TemplateSetNames() = %v, want [%s]", sets, DefaultTemplateSetName)
	}
}
