package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tend/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "tend",
	Short:         "tend — ritual & habit tracker",
	Long:          "tend is a local-first habit tracker: recurring rituals promote to habits after a long enough streak, and fall back when the streak collapses.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newTaskCmd(),
		newDoneCmd(),
		newListCmd(),
		newStatusCmd(),
		newAchievementsCmd(),
		newEditCmd(),
		newRmCmd(),
		newDayCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
