package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/hayakil/internal/catalog"
	"github.com/abhisek/hayakil/internal/config"
	"github.com/abhisek/hayakil/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "hayakil",
	Short: "Arabic data structures course in the terminal",
	Long:  "Hayakil (هياكل) teaches arrays, linked lists, stacks, queues and trees with explanations, interactive simulators and quizzes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "", false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ./config.yaml or the user config dir)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a topics catalog (overrides catalog.path)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (overrides log.file)")
	rootCmd.Flags().String("topic", "", "Topic to open first (e.g. arrays, stack, trees)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// runtime bundles what every command needs after flags are resolved.
type runtime struct {
	cfg     *config.Config
	log     *zap.Logger
	catalog *catalog.Catalog
	cleanup func()
}

// setup loads config, applies flag overrides, then builds the logger
// and the catalog.
func setup(cmd *cobra.Command) (*runtime, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		cfg.Catalog.Path = p
	}
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		cfg.Log.File = p
	}

	log, cleanup, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		cleanup()
		return nil, err
	}
	log.Info("catalog loaded",
		zap.String("version", cat.Version()),
		zap.Int("topics", cat.Len()),
		zap.String("path", cfg.Catalog.Path))

	return &runtime{cfg: cfg, log: log, catalog: cat, cleanup: cleanup}, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}
