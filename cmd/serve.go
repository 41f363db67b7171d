package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/quizzy/internal/logger"
	"github.com/abhisek/quizzy/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the quiz to a browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, catalog, err := setup(zapcore.Lock(os.Stderr))
		if err != nil {
			return err
		}
		defer func() { _ = logger.Close() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log := logger.Get()
		log.Info("Serving quiz", zap.String("addr", cfg.Server.Addr), zap.Int("topics", catalog.Len()))
		if err := web.New(catalog, cfg.Server, log).Run(ctx); err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
	_ = v.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}
