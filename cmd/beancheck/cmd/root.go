package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nakamurakj/bean-validation/pkg/config"
	"github.com/nakamurakj/bean-validation/pkg/logger"
)

// Settings is read from the environment and an optional .env file.
type Settings struct {
	LogLevel  string `env:"BEANCHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"BEANCHECK_LOG_FORMAT" envDefault:"text"`
}

var (
	envFile  string
	logLevel string
	log      = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "beancheck",
	Short: "Check records against bean constraint declarations",
	Long: `beancheck evaluates YAML records against constraint tags such as
NumberString(min=1,max=18), ZipCode or DateFormat(pattern='yyyy/MM/dd').

Environment:
  BEANCHECK_LOG_LEVEL   debug, info, warn or error (default info)
  BEANCHECK_LOG_FORMAT  text or json (default text)`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default: ./.env if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides BEANCHECK_LOG_LEVEL")
}

// setup loads settings and builds the logger shared by subcommands.
// Logs go to the command's error stream.
func setup(cmd *cobra.Command, _ []string) error {
	var paths []string
	if envFile != "" {
		paths = append(paths, envFile)
	}
	if err := config.LoadEnv(paths...); err != nil {
		return err
	}
	var s Settings
	if err := config.Load(&s); err != nil {
		return err
	}
	if logLevel != "" {
		s.LogLevel = logLevel
	}

	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	format, err := logger.ParseFormat(s.LogFormat)
	if err != nil {
		return fmt.Errorf("log format: %w", err)
	}
	log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Component("beancheck")),
	)
	return nil
}
