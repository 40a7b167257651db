package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetNewFlags() {
	newDatabaseURL = ""
	newProjectVersion = ""
	newBlueprintPath = ""
	newSkipMigrations = false
}

func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Cleanup(resetNewFlags)
}

func TestNamePattern(t *testing.T) {
	valid := []string{"my_app", "demo", "my_fastapi_app", "App2", "a.b-c"}
	for _, name := range valid {
		if !namePattern.MatchString(name) {
			t.Errorf("namePattern rejected valid name %q", name)
		}
	}
	invalid := []string{"", "-app", "my app", "a/b", "../escape"}
	for _, name := range invalid {
		if namePattern.MatchString(name) {
			t.Errorf("namePattern accepted invalid name %q", name)
		}
	}
}

func TestNewCommand_SkipMigrations(t *testing.T) {
	isolate(t)
	newSkipMigrations = true

	if err := newCmd.RunE(newCmd, []string{"my_app"}); err != nil {
		t.Fatalf("new my_app: %v", err)
	}

	readme, err := os.ReadFile(filepath.Join("my_app", "README.md"))
	if err != nil {
		t.Fatal(err)
	}
	firstLine, _, _ := strings.Cut(string(readme), "\n")
	if firstLine != "# my_app" {
		t.Errorf("README first line = %q, want %q", firstLine, "# my_app")
	}

	env, err := os.ReadFile(filepath.Join("my_app", ".env"))
	if err != nil {
		t.Fatal(err)
	}
	if string(env) != "DATABASE_URL=\"sqlite+aiosqlite:///./app.db\"\n" {
		t.Errorf(".env content = %q", env)
	}

	// The migration layout exists even though alembic never ran.
	for _, p := range []string{
		"alembic.ini",
		filepath.Join("alembic", "env.py"),
		filepath.Join("alembic", "versions"),
		"setup.sh",
		"setup.bat",
	} {
		if _, err := os.Stat(filepath.Join("my_app", p)); err != nil {
			t.Errorf("%s missing: %v", p, err)
		}
	}
}

func TestNewCommand_ExistingTarget(t *testing.T) {
	isolate(t)
	newSkipMigrations = true

	if err := os.Mkdir("taken", 0755); err != nil {
		t.Fatal(err)
	}

	if err := newCmd.RunE(newCmd, []string{"taken"}); err == nil {
		t.Fatal("expected error for existing target, got nil")
	}

	entries, err := os.ReadDir("taken")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("existing directory was modified: %d entries", len(entries))
	}
}

func TestNewCommand_InvalidName(t *testing.T) {
	isolate(t)

	if err := newCmd.RunE(newCmd, []string{"bad name"}); err == nil {
		t.Fatal("expected error for invalid name, got nil")
	}
}

func TestNewCommand_BadVersion(t *testing.T) {
	isolate(t)
	newProjectVersion = "not-a-version"

	if err := newCmd.RunE(newCmd, []string{"demo"}); err == nil {
		t.Fatal("expected error for bad version, got nil")
	}
	if _, err := os.Stat("demo"); !os.IsNotExist(err) {
		t.Error("target directory created despite usage error")
	}
}

func TestNewCommand_Blueprint(t *testing.T) {
	isolate(t)
	newSkipMigrations = true

	bp := "name: bp_app\ndatabase_url: sqlite+aiosqlite:///./bp.db\nversion: 2.0.0\n"
	if err := os.WriteFile("project.yaml", []byte(bp), 0644); err != nil {
		t.Fatal(err)
	}
	newBlueprintPath = "project.yaml"

	if err := newCmd.RunE(newCmd, nil); err != nil {
		t.Fatalf("new --blueprint: %v", err)
	}

	env, err := os.ReadFile(filepath.Join("bp_app", ".env"))
	if err != nil {
		t.Fatal(err)
	}
	if string(env) != "DATABASE_URL=\"sqlite+aiosqlite:///./bp.db\"\n" {
		t.Errorf(".env content = %q", env)
	}

	pyproject, err := os.ReadFile(filepath.Join("bp_app", "pyproject.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(pyproject), `version = "2.0.0"`) {
		t.Error("pyproject.toml missing blueprint version")
	}
}

func TestNewCommand_FlagOverridesBlueprint(t *testing.T) {
	isolate(t)
	newSkipMigrations = true

	bp := "name: bp_app\ndatabase_url: sqlite+aiosqlite:///./bp.db\n"
	if err := os.WriteFile("project.yaml", []byte(bp), 0644); err != nil {
		t.Fatal(err)
	}
	newBlueprintPath = "project.yaml"
	newDatabaseURL = "sqlite+aiosqlite:///./flag.db"

	if err := newCmd.RunE(newCmd, []string{"flag_app"}); err != nil {
		t.Fatalf("new flag_app: %v", err)
	}

	env, err := os.ReadFile(filepath.Join("flag_app", ".env"))
	if err != nil {
		t.Fatal(err)
	}
	if string(env) != "DATABASE_URL=\"sqlite+aiosqlite:///./flag.db\"\n" {
		t.Errorf(".env content = %q", env)
	}
}
