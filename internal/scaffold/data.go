package scaffold

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Defaults substituted into templates when the caller provides nothing.
const (
	DefaultDatabaseURL    = "sqlite+aiosqlite:///./app.db"
	DefaultProjectVersion = "0.1.0"
)

// ProjectData holds all template variables available to project templates.
type ProjectData struct {
	Name            string // project name, used verbatim as the directory name
	DatabaseURL     string // async SQLAlchemy URL written to .env and session.py
	SyncDatabaseURL string // derived: DatabaseURL with the async driver suffix stripped
	ProjectVersion  string // semver written to pyproject.toml
	SQLEcho         bool   // when set, .env also enables SQL echo logging
}

// NewProjectData creates a ProjectData with derived fields populated.
// Empty databaseURL and version fall back to the package defaults.
func NewProjectData(name, databaseURL, version string, sqlEcho bool) *ProjectData {
	if databaseURL == "" {
		databaseURL = DefaultDatabaseURL
	}
	if version == "" {
		version = DefaultProjectVersion
	}
	return &ProjectData{
		Name:            name,
		DatabaseURL:     databaseURL,
		SyncDatabaseURL: syncDatabaseURL(databaseURL),
		ProjectVersion:  version,
		SQLEcho:         sqlEcho,
	}
}

// ValidateProjectVersion checks that v parses as semver.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func ValidateProjectVersion(v string) error {
	if _, err := semver.NewVersion(strings.TrimPrefix(v, "v")); err != nil {
		return fmt.Errorf("invalid project version %q: %w", v, err)
	}
	return nil
}

// syncDatabaseURL strips the async driver suffix from a SQLAlchemy URL scheme,
// e.g. "sqlite+aiosqlite:///./app.db" -> "sqlite:///./app.db". Alembic's ini
// file wants the synchronous form. URLs without a driver suffix pass through.
func syncDatabaseURL(url string) string {
	sep := strings.Index(url, "://")
	if sep < 0 {
		return url
	}
	scheme := url[:sep]
	if plus := strings.Index(scheme, "+"); plus >= 0 {
		scheme = scheme[:plus]
	}
	return scheme + url[sep:]
}
