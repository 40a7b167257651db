package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// PatchMigrationConfig overwrites alembic.ini and alembic/env.py with
// project-tailored content, wiring the database URL and model imports into the
// migration environment. No merging with whatever the alembic initializer
// generated: last write wins. The alembic/versions directory is created first
// so the layout is complete even when the initializer never ran.
func PatchMigrationConfig(data *ProjectData, outDir string) (*Result, error) {
	versionsDir := filepath.Join(outDir, "alembic", "versions")
	if err := os.MkdirAll(versionsDir, 0755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", versionsDir, err)
	}

	result := &Result{OutputDir: outDir}
	for _, spec := range MigrationFiles() {
		if err := renderFile(spec, data, outDir); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, spec.Path)
	}
	return result, nil
}
