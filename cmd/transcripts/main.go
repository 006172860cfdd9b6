package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bigredeye/transcripts/internal/config"
	"github.com/bigredeye/transcripts/internal/scorer"
	"github.com/bigredeye/transcripts/internal/shell"
	"github.com/bigredeye/transcripts/internal/transcripts"
	zlog "github.com/bigredeye/transcripts/pkg/log"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "transcripts",
	Short:         "In-memory student transcripts",
	SilenceUsage:  true,
	SilenceErrors: true,
}

type app struct {
	logger *zap.Logger
	store  *transcripts.Store
	scorer *scorer.Scorer
}

func newApp() (*app, error) {
	conf, err := config.ParseConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := zlog.Init(conf.Log.Mode == config.LogModeProd, conf.Log.File)
	logger.Debug("Parsed config", zap.Any("config", conf))

	store, err := transcripts.NewFromConfig(conf, logger)
	if err != nil {
		return nil, err
	}

	return &app{
		logger: logger,
		store:  store,
		scorer: scorer.NewScorer(conf, store, logger),
	}, nil
}

func (a *app) close() {
	a.scorer.Close()
	zlog.Sync()
}

func (a *app) interpreter() *shell.Interpreter {
	return shell.NewInterpreter(a.store, a.scorer, os.Stdout, a.logger)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config")
	rootCmd.AddCommand(makeShellCommand())
	rootCmd.AddCommand(makeDemoCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Command failed: %+v\n", err)
		os.Exit(1)
	}
}
