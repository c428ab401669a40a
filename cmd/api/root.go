package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/config"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/logger"
)

var (
	cfgFile string
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "breakfree",
	Short: "BreakFree habit tracker API",
	Long: `BreakFree tracks habits you want to quit: log each day as a success or a
failure with a mood and a journal note, and follow your current and longest streaks.

Running without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: runServe,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml); environment variables still take precedence")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringP("port", "p", "", "HTTP port to listen on")

	_ = v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
}

func initConfig() {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}
}

// loadConfig resolves the configuration and builds the logger every command uses.
func loadConfig() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(cfg), nil
}
