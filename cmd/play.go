package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizzy/internal/app"
	"github.com/abhisek/quizzy/internal/logger"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTerminal()
	},
}

// runTerminal launches the TUI. The TUI owns stdout, so logs only go to
// log.file when one is configured.
func runTerminal() error {
	_, catalog, err := setup(nil)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	log := logger.Get()
	log.Info("Starting terminal quiz", zap.Int("topics", catalog.Len()))
	return app.Run(app.Options{
		Catalog: catalog,
		Logger:  log,
	})
}
