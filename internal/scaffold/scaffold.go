package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/fastforge-dev/fastforge/internal/platform"
)

//go:embed templates
var templateFS embed.FS

// Result holds the outcome of a generation phase.
type Result struct {
	OutputDir string
	Dirs      []string // directories created, relative to OutputDir
	Files     []string // files written, relative to OutputDir
}

// Generate creates the project directory tree and writes the application and
// configuration files. It refuses to touch the filesystem if anything already
// exists at outDir.
func Generate(data *ProjectData, outDir string) (*Result, error) {
	if _, err := os.Stat(outDir); err == nil {
		return nil, fmt.Errorf("path %s already exists", outDir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking %s: %w", outDir, err)
	}

	result := &Result{OutputDir: outDir}

	for _, dir := range Directories() {
		abs := filepath.Join(outDir, dir)
		if err := os.MkdirAll(abs, 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", abs, err)
		}
		result.Dirs = append(result.Dirs, dir)
	}

	for _, spec := range ProjectFiles() {
		if err := renderFile(spec, data, outDir); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, spec.Path)
	}

	for _, marker := range PackageMarkers() {
		abs := filepath.Join(outDir, marker)
		if err := os.WriteFile(abs, nil, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", abs, err)
		}
		result.Files = append(result.Files, marker)
	}

	return result, nil
}

// EmitSetupAssets writes the platform-specific setup scripts and the README,
// marking setup.sh executable on non-Windows hosts.
func EmitSetupAssets(data *ProjectData, outDir string) (*Result, error) {
	result := &Result{OutputDir: outDir}

	for _, spec := range SetupScripts() {
		if err := renderFile(spec, data, outDir); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, spec.Path)
	}

	shPath := filepath.Join(outDir, "setup.sh")
	if err := platform.MarkExecutable(shPath); err != nil {
		return nil, fmt.Errorf("marking %s executable: %w", shPath, err)
	}

	readme := ReadmeFile()
	if err := renderFile(readme, data, outDir); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, readme.Path)

	return result, nil
}

// renderFile parses one embedded template, executes it with data, and writes
// the output to its destination under outDir.
func renderFile(spec FileSpec, data *ProjectData, outDir string) error {
	tmplBytes, err := fs.ReadFile(templateFS, "templates/"+spec.Template)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", spec.Template, err)
	}

	tmpl, err := template.New(spec.Template).Parse(string(tmplBytes))
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", spec.Template, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template %s: %w", spec.Template, err)
	}

	outPath := filepath.Join(outDir, spec.Path)
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
