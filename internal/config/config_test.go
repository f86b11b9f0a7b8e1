package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewDefaults(t *testing.T) {
	cfg := New()
	if cfg.RoutesDir != DefaultRoutesDir {
		t.Errorf("RoutesDir = %q, want %q", cfg.RoutesDir, DefaultRoutesDir)
	}
	if cfg.Extension != DefaultExtension {
		t.Errorf("Extension = %q, want %q", cfg.Extension, DefaultExtension)
	}
	if cfg.IndexName != DefaultIndexName {
		t.Errorf("IndexName = %q, want %q", cfg.IndexName, DefaultIndexName)
	}
	if cfg.MiddlewareMarker != DefaultMiddlewareMarker {
		t.Errorf("MiddlewareMarker = %q, want %q", cfg.MiddlewareMarker, DefaultMiddlewareMarker)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{
  "name": "demo",
  "root_directory": "app/routes",
  "method_aliases": {"del": "DELETE", "fetch": "GET"}
}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "demo" {
		t.Errorf("Name = %q, want demo", cfg.Name)
	}
	if cfg.RoutesDir != "app/routes" {
		t.Errorf("RoutesDir = %q, want app/routes", cfg.RoutesDir)
	}
	// Omitted fields fall back to defaults.
	if cfg.Extension != ".go" {
		t.Errorf("Extension = %q, want .go", cfg.Extension)
	}
	if cfg.MethodAliases["del"] != "DELETE" {
		t.Errorf("alias del = %q, want DELETE", cfg.MethodAliases["del"])
	}
	if cfg.Path() != filepath.Join(dir, ConfigFileName) {
		t.Errorf("Path() = %q", cfg.Path())
	}
	if cfg.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), dir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing routewind.json")
	}
	if !strings.Contains(err.Error(), "E220") {
		t.Errorf("error = %q, want E220", err.Error())
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"name": `)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "E200") {
		t.Errorf("error = %q, want E200", err.Error())
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"extension without dot", `{"extension": "go"}`},
		{"index with slash", `{"index_name": "a/b"}`},
		{"marker with dot", `{"middleware_marker": "_mw.x"}`},
		{"alias to unknown verb", `{"method_aliases": {"fetch": "FETCH"}}`},
		{"alias with dot", `{"method_aliases": {"a.b": "GET"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			_, err := Load(dir)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), "E201") {
				t.Errorf("error = %q, want E201", err.Error())
			}
		})
	}
}

func TestAliasToLowercaseVerbAccepted(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"method_aliases": {"del": "delete"}}`)
	if _, err := Load(dir); err != nil {
		t.Fatalf("lowercase canonical verb should validate: %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := New()
	cfg.Name = "demo"
	cfg.MethodAliases = map[string]string{"del": "DELETE"}

	path := filepath.Join(dir, ConfigFileName)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name != "demo" || loaded.MethodAliases["del"] != "DELETE" {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestRoutesPath(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"root_directory": "app/routes"}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "app", "routes")
	if cfg.RoutesPath() != want {
		t.Errorf("RoutesPath() = %q, want %q", cfg.RoutesPath(), want)
	}
}

func TestEnsureRoutesDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := cfg.EnsureRoutesDir(); err == nil {
		t.Error("expected error for missing routes directory")
	}

	if err := os.Mkdir(filepath.Join(dir, "routes"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := cfg.EnsureRoutesDir(); err != nil {
		t.Errorf("EnsureRoutesDir() = %v, want nil", err)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{}`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	// t.TempDir may sit behind a symlink; compare resolved paths.
	wantResolved, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("FindProjectRoot = %q, want %q", got, root)
	}
}

func TestFindProjectRootNotFound(t *testing.T) {
	_, err := FindProjectRoot(t.TempDir())
	if err == nil {
		t.Fatal("expected error when no routewind.json exists")
	}
	if !strings.Contains(err.Error(), "E220") {
		t.Errorf("error = %q, want E220", err.Error())
	}
}
