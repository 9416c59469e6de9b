package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/refgen/internal/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "refgen-config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	path := filepath.Join(tmpDir, "refgen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(os.TempDir(), "refgen-does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ReferenceDir != "reference" {
		t.Errorf("ReferenceDir = %q, want %q", cfg.ReferenceDir, "reference")
	}
	if len(cfg.Packages) != 0 {
		t.Errorf("Packages = %v, want none", cfg.Packages)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `reference_dir: docs/reference
packages:
  - name: mypkg
    path: src
    exclude_files:
      - conftest.py
    exclude_dirs:
      - vendor
    options:
      show_root_heading: "true"
      summary:
        modules: true
  - name: otherpkg
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ReferenceDir != "docs/reference" {
		t.Errorf("ReferenceDir = %q, want %q", cfg.ReferenceDir, "docs/reference")
	}
	if len(cfg.Packages) != 2 {
		t.Fatalf("len(Packages) = %d, want 2", len(cfg.Packages))
	}

	pkg := cfg.Packages[0]
	if pkg.Name != "mypkg" || pkg.Path != "src" {
		t.Errorf("Packages[0] = %+v, want name mypkg path src", pkg)
	}
	if len(pkg.ExcludeFiles) != 1 || pkg.ExcludeFiles[0] != "conftest.py" {
		t.Errorf("ExcludeFiles = %v, want [conftest.py]", pkg.ExcludeFiles)
	}
	if len(pkg.ExcludeDirs) != 1 || pkg.ExcludeDirs[0] != "vendor" {
		t.Errorf("ExcludeDirs = %v, want [vendor]", pkg.ExcludeDirs)
	}

	if v, ok := pkg.Options.Get("show_root_heading"); !ok || v != "true" {
		t.Errorf("options show_root_heading = %v, %v, want true (string)", v, ok)
	}
	if pkg.Options[0].Key != "show_root_heading" {
		t.Errorf("options[0] = %q, want file order preserved", pkg.Options[0].Key)
	}
	nested, ok := pkg.Options.Get("summary")
	if !ok {
		t.Fatal("options summary missing")
	}
	if v, _ := nested.(types.Options).Get("modules"); v != true {
		t.Errorf("options summary.modules = %v, want true (bool)", v)
	}

	if cfg.Packages[1].Name != "otherpkg" {
		t.Errorf("Packages[1].Name = %q, want otherpkg", cfg.Packages[1].Name)
	}
}

func TestLoad_DefaultsApplyWhenFieldsOmitted(t *testing.T) {
	path := writeConfig(t, "packages:\n  - name: mypkg\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ReferenceDir != "reference" {
		t.Errorf("ReferenceDir = %q, want default", cfg.ReferenceDir)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "packages: [\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "valid",
			cfg:     Config{ReferenceDir: "reference", Packages: []types.PackageSpec{{Name: "pkg"}}},
			wantErr: false,
		},
		{
			name:    "no packages is valid",
			cfg:     Config{ReferenceDir: "reference"},
			wantErr: false,
		},
		{
			name:    "missing package name",
			cfg:     Config{ReferenceDir: "reference", Packages: []types.PackageSpec{{Path: "src"}}},
			wantErr: true,
		},
		{
			name:    "empty reference dir",
			cfg:     Config{Packages: []types.PackageSpec{{Name: "pkg"}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var cfgErr *ConfigError
				if !errors.As(err, &cfgErr) {
					t.Errorf("Validate() error type = %T, want *ConfigError", err)
				}
			}
		})
	}
}
