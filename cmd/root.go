package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mholst/branchdeck/internal/git"
	"github.com/mholst/branchdeck/internal/logging"
	"github.com/mholst/branchdeck/internal/session"
	"github.com/mholst/branchdeck/internal/ui"
)

var logFile string

var rootCmd = &cobra.Command{
	Use:   "branchdeck",
	Short: "A terminal-based Git branch explorer",
	Long:  `branchdeck - browse, switch and fetch local branches from a single-screen terminal UI`,
	Run: func(cmd *cobra.Command, args []string) {
		logging.Configure(logFile)

		// Failing to open the repository is the one fatal error: report
		// it and exit before any UI is shown.
		repo, err := git.Open(".")
		if err != nil {
			logging.Error(err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		sess := session.New(repo)
		p := tea.NewProgram(ui.NewModel(sess), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			logging.Error(err)
			fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "append operation errors to this file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
