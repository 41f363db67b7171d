package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/quizzy/internal/config"
	"github.com/abhisek/quizzy/internal/content"
	"github.com/abhisek/quizzy/internal/logger"
)

var v = viper.New()

var rootCmd = &cobra.Command{
	Use:           "quizzy",
	Short:         "Multiple-choice quiz for the terminal",
	Long:          "Quizzy asks a short run of multiple-choice questions on a topic you pick and tells you how you did.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTerminal()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a config file (default: quizzy.yaml in . or ~/.config/quizzy)")
	flags.String("catalog", "", "Path to a YAML or JSON question catalog (overrides QUIZZY_CATALOG)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")

	_ = v.BindPFlag("config", flags.Lookup("config"))
	_ = v.BindPFlag("catalog", flags.Lookup("catalog"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup resolves configuration, installs the global logger writing to
// fallback (or log.file) and loads the catalog.
func setup(fallback zapcore.WriteSyncer) (*config.Config, *content.Catalog, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.Initialize(cfg.Log, fallback); err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	catalog, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, nil, err
	}
	return cfg, catalog, nil
}

// loadCatalog returns the built-in catalog unless path names a file.
func loadCatalog(path string) (*content.Catalog, error) {
	if path == "" {
		return content.Default(), nil
	}
	catalog, err := content.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog, nil
}
