package blueprint

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeBlueprint(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFile_Valid(t *testing.T) {
	path := writeBlueprint(t, `name: my_app
database_url: sqlite+aiosqlite:///./custom.db
version: 1.2.3
sql_echo: true
`)

	bp, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if bp.Name != "my_app" {
		t.Errorf("Name = %q, want %q", bp.Name, "my_app")
	}
	if bp.DatabaseURL != "sqlite+aiosqlite:///./custom.db" {
		t.Errorf("DatabaseURL = %q", bp.DatabaseURL)
	}
	if bp.Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", bp.Version, "1.2.3")
	}
	if !bp.SQLEcho {
		t.Error("SQLEcho = false, want true")
	}
}

func TestParseFile_NameOnly(t *testing.T) {
	path := writeBlueprint(t, "name: demo\n")

	bp, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if bp.Name != "demo" {
		t.Errorf("Name = %q, want %q", bp.Name, "demo")
	}
	if bp.DatabaseURL != "" || bp.Version != "" || bp.SQLEcho {
		t.Errorf("optional fields should be zero: %+v", bp)
	}
}

func TestParseFile_MissingName(t *testing.T) {
	path := writeBlueprint(t, "database_url: sqlite:///./app.db\n")

	_, err := ParseFile(path)
	if err == nil {
		t.Fatal("expected error for missing name, got nil")
	}
	if !strings.Contains(err.Error(), "name") {
		t.Errorf("error should mention the missing property: %v", err)
	}
}

func TestParseFile_BadVersion(t *testing.T) {
	path := writeBlueprint(t, "name: demo\nversion: not-semver\n")

	_, err := ParseFile(path)
	if err == nil {
		t.Fatal("expected error for bad version, got nil")
	}
	if !strings.Contains(err.Error(), "/version") {
		t.Errorf("error should carry the instance path: %v", err)
	}
}

func TestParseFile_UnknownKey(t *testing.T) {
	path := writeBlueprint(t, "name: demo\nport: 8000\n")

	_, err := ParseFile(path)
	if err == nil {
		t.Fatal("expected error for unknown key, got nil")
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestValidate_Issues(t *testing.T) {
	result, err := Validate([]byte("name: \"bad name!\"\n"))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
	if got := result.IssueSummary(); !strings.Contains(got, "/name") {
		t.Errorf("IssueSummary missing path: %q", got)
	}
}
