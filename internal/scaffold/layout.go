package scaffold

import "path/filepath"

// FileSpec pairs a destination path (relative to the project root) with the
// embedded template that produces it.
type FileSpec struct {
	Path     string
	Template string
}

// Directories returns the fixed directory tree of a new project, in creation
// order. The project root itself comes first.
func Directories() []string {
	return []string{
		".",
		filepath.Join("app", "api", "v1"),
		filepath.Join("app", "db"),
		filepath.Join("app", "models"),
		filepath.Join("app", "schemas"),
	}
}

// ProjectFiles returns the templated application and configuration files, in
// emission order.
func ProjectFiles() []FileSpec {
	return []FileSpec{
		{Path: "pyproject.toml", Template: "pyproject.toml.tmpl"},
		{Path: ".env", Template: "env.tmpl"},
		{Path: filepath.Join("app", "db", "base.py"), Template: "base.py.tmpl"},
		{Path: filepath.Join("app", "db", "session.py"), Template: "session.py.tmpl"},
		{Path: filepath.Join("app", "models", "user.py"), Template: "models_user.py.tmpl"},
		{Path: filepath.Join("app", "schemas", "user.py"), Template: "schemas_user.py.tmpl"},
		{Path: filepath.Join("app", "main.py"), Template: "main.py.tmpl"},
	}
}

// PackageMarkers returns the empty __init__.py files that make the generated
// directories importable Python packages.
func PackageMarkers() []string {
	return []string{
		filepath.Join("app", "__init__.py"),
		filepath.Join("app", "db", "__init__.py"),
		filepath.Join("app", "models", "__init__.py"),
		filepath.Join("app", "schemas", "__init__.py"),
		filepath.Join("app", "api", "__init__.py"),
		filepath.Join("app", "api", "v1", "__init__.py"),
	}
}

// MigrationFiles returns the migration-tool configuration files that overwrite
// whatever the alembic initializer produced. Last write wins.
func MigrationFiles() []FileSpec {
	return []FileSpec{
		{Path: "alembic.ini", Template: "alembic.ini.tmpl"},
		{Path: filepath.Join("alembic", "env.py"), Template: "alembic_env.py.tmpl"},
	}
}

// SetupScripts returns the platform-specific setup scripts. The .sh script is
// marked executable after emission on non-Windows hosts.
func SetupScripts() []FileSpec {
	return []FileSpec{
		{Path: "setup.bat", Template: "setup.bat.tmpl"},
		{Path: "setup.sh", Template: "setup.sh.tmpl"},
	}
}

// ReadmeFile returns the generated README spec.
func ReadmeFile() FileSpec {
	return FileSpec{Path: "README.md", Template: "README.md.tmpl"}
}
