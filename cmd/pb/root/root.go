package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pitchbuild/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "pb",
	Short:         "Pitchbuild: player build planner",
	Long:          "Pitchbuild plans a player build: pick an archetype, spend level-granted AP on attributes and save named builds locally.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newArchetypesCmd(),
		newCostsCmd(),
		newBudgetCmd(),
		newPlanCmd(),
		newBuildsCmd(),
		newEditCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
