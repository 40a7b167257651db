package cli

import (
	"fmt"
	"os"
	"regexp"
	"runtime"

	"github.com/fastforge-dev/fastforge/internal/blueprint"
	"github.com/fastforge-dev/fastforge/internal/config"
	"github.com/fastforge-dev/fastforge/internal/migrate"
	"github.com/fastforge-dev/fastforge/internal/scaffold"
	"github.com/spf13/cobra"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9_.-]*$`)

var (
	newDatabaseURL    string
	newProjectVersion string
	newBlueprintPath  string
	newSkipMigrations bool
)

func init() {
	newCmd.Flags().StringVar(&newDatabaseURL, "database-url", "", "SQLAlchemy database URL (default: "+scaffold.DefaultDatabaseURL+")")
	newCmd.Flags().StringVar(&newProjectVersion, "project-version", "", "Initial pyproject version (default: "+scaffold.DefaultProjectVersion+")")
	newCmd.Flags().StringVar(&newBlueprintPath, "blueprint", "", "Read project parameters from a YAML blueprint file")
	newCmd.Flags().BoolVar(&newSkipMigrations, "skip-migrations", false, "Skip invoking the alembic initializer")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <project_name>",
	Short: "Scaffold a new FastAPI + SQLite + Alembic project",
	Long: `Create a project directory with a FastAPI application skeleton, async
SQLAlchemy session management, Alembic migration configuration, platform
setup scripts, and a README.

Examples:
  fastforge new my_fastapi_app
  fastforge new demo --database-url "sqlite+aiosqlite:///./demo.db"
  fastforge new --blueprint project.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var bp *blueprint.Blueprint
		if newBlueprintPath != "" {
			parsed, err := blueprint.ParseFile(newBlueprintPath)
			if err != nil {
				return err
			}
			bp = parsed
		}

		name := ""
		if len(args) == 1 {
			name = args[0]
		} else if bp != nil {
			name = bp.Name
		}
		if name == "" {
			return fmt.Errorf("project name required: pass it as an argument or via --blueprint")
		}
		if !namePattern.MatchString(name) {
			return fmt.Errorf("invalid project name %q: must match pattern [a-zA-Z0-9_][a-zA-Z0-9_.-]*", name)
		}

		data, err := resolveProjectData(name, bp)
		if err != nil {
			return err
		}

		// Fail before any mutation when the target already exists.
		if _, err := os.Stat(name); err == nil {
			return fmt.Errorf("directory %q already exists", name)
		}

		fmt.Printf("Creating FastAPI SQLite project: %s\n", name)
		fmt.Printf("Platform: %s\n\n", runtime.GOOS)

		result, err := scaffold.Generate(data, name)
		if err != nil {
			return err
		}
		printGenerated(result)

		initFailed := false
		if newSkipMigrations {
			fmt.Println("Skipping Alembic initialization (--skip-migrations)")
			initFailed = true
		} else {
			fmt.Println("Initializing Alembic...")
			out, err := migrate.NewInitializer().Run(cmd.Context(), name)
			switch {
			case err != nil:
				fmt.Fprintf(os.Stderr, "WARNING: failed to initialize Alembic: %v\n", err)
				initFailed = true
			case out.ExitCode != 0:
				fmt.Fprintf(os.Stderr, "WARNING: alembic init exited with code %d\n%s\n", out.ExitCode, out.Stderr)
				initFailed = true
			default:
				fmt.Println("SUCCESS: Alembic initialized successfully")
			}
		}

		fmt.Println("Updating Alembic configuration...")
		patched, err := scaffold.PatchMigrationConfig(data, name)
		if err != nil {
			return err
		}
		printGenerated(patched)

		assets, err := scaffold.EmitSetupAssets(data, name)
		if err != nil {
			return err
		}
		printGenerated(assets)

		printSummary(name, initFailed)
		return nil
	},
}

// resolveProjectData merges flags, blueprint values, and user config into the
// template data, in that precedence order.
func resolveProjectData(name string, bp *blueprint.Blueprint) (*scaffold.ProjectData, error) {
	config.Load()

	databaseURL := newDatabaseURL
	if databaseURL == "" && bp != nil {
		databaseURL = bp.DatabaseURL
	}
	if databaseURL == "" {
		databaseURL = config.Get(config.KeyDatabaseURL)
	}

	version := newProjectVersion
	if version == "" && bp != nil {
		version = bp.Version
	}

	sqlEcho := config.Get(config.KeyDBEcho) == "true"
	if bp != nil && bp.SQLEcho {
		sqlEcho = true
	}

	data := scaffold.NewProjectData(name, databaseURL, version, sqlEcho)
	if err := scaffold.ValidateProjectVersion(data.ProjectVersion); err != nil {
		return nil, err
	}
	return data, nil
}

func printGenerated(result *scaffold.Result) {
	for _, dir := range result.Dirs {
		fmt.Printf("Created directory: %s\n", dir)
	}
	for _, f := range result.Files {
		fmt.Printf("Created file: %s\n", f)
	}
}

func printSummary(name string, initFailed bool) {
	fmt.Printf("\nSUCCESS: Project %q created successfully!\n\n", name)
	fmt.Println("Next steps:")
	fmt.Printf("  1. cd %s\n", name)
	fmt.Println("  2. Run setup script:")
	fmt.Println("     Windows: setup.bat")
	fmt.Println("     Linux:   ./setup.sh")
	fmt.Println("  3. Start coding!")
	if initFailed {
		fmt.Println("\nAlembic was not initialized. Run these commands manually inside the project:")
		fmt.Println("  alembic init alembic")
		fmt.Println("  alembic revision -m \"Initial migration\" --autogenerate")
		fmt.Println("  alembic upgrade head")
	}
	fmt.Println("\nThe application will be available at: http://localhost:8000")
}
