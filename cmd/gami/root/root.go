package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iliskimuhendisi/gamicipline/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "gami",
	Short:         "Gamicipline — kişisel disiplin takipçisi",
	Long:          "Gamicipline is a local-first CLI/TUI discipline tracker: recurring tasks, timed sessions, XP and levels, streaks, and a daily routine ledger.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newAddCmd(),
		newTasksCmd(),
		newEditCmd(),
		newRmCmd(),
		newStartCmd(),
		newStopCmd(),
		newAmcaCmd(),
		newStreakCmd(),
		newRoutineCmd(),
		newProfileCmd(),
		newMenuCmd(),
		newBoardCmd(),
		newSnapshotsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
