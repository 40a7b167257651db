package cli

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the generated project's toolchain is available",
	Long: `Verify that the external tools a scaffolded project relies on (python3,
pip, alembic, uvicorn) are present on PATH. Missing tools do not block
scaffolding; the setup scripts and migrations just need them later.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Toolchain check:")
		missing := 0
		for _, bin := range []string{"python3", "pip", "alembic", "uvicorn"} {
			if !checkBinary(bin) {
				missing++
			}
		}
		if missing > 0 {
			fmt.Printf("\n%d tool(s) missing. Generated projects will still be complete,\n", missing)
			fmt.Println("but setup scripts and migrations need the full toolchain.")
		}
		return nil
	},
}

func checkBinary(name string) bool {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Printf("  [MISS] %s not found\n", name)
		return false
	}
	fmt.Printf("  [ OK ] %s found at %s\n", name, path)
	return true
}
