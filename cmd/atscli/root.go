package main

import (
	"fmt"
	"os"
	"strings"

	"ats-resume-optimizer/internal/config"
	"ats-resume-optimizer/internal/domain"
	"ats-resume-optimizer/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:          "atscli",
	Short:        "Score a resume against a job description",
	Long:         "atscli runs the ATS resume analysis from the terminal. It extracts the PDF text, builds the prompt and asks the model.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine; the environment may already be set.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to YAML config file (default: CONFIG_FILE env var)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit flag > CONFIG_FILE env var > environment only.
func loadConfig() (*config.AppConfig, error) {
	path := cfgPath
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	return config.Load(path)
}

// setupLogger writes to stderr so stdout carries only the command output.
func setupLogger(cfg domain.Config) domain.Logger {
	level := cfg.GetLogLevel()
	if debug {
		level = "debug"
	}
	return logger.NewLoggerWithOutput(os.Stderr, level, cfg.GetLogFormat())
}

// readJobDescription returns the inline text, or the contents of path.
func readJobDescription(text, path string) (string, error) {
	if text != "" && path != "" {
		return "", fmt.Errorf("use either --jd or --jd-text, not both")
	}
	if path == "" {
		return text, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read job description: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
