package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fluo-io/fluo-go/pkg/config"
	"github.com/fluo-io/fluo-go/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	defaultConfigFile = "fluo.properties"
	defaultEnvFile    = ".env"
)

// addConfigFlags registers the flags shared by every command that reads a
// configuration file.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", defaultConfigFile, "Path to the fluo properties file")
	cmd.Flags().String("env-file", defaultEnvFile, "Path to the environment variables file")
	cmd.Flags().Bool("no-env", false, "Skip FLUO_* environment variable overrides")
}

// addLoggingFlags registers the shared logging flags and the debug override.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().Bool("log-json", false, "Output logs in JSON format")
	cmd.Flags().Bool("log-source", false, "Include source file and line in logs")
	cmd.Flags().Bool("debug", false, "Enable debug mode (sets log level to debug)")

	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		debug, err := getBoolFlag(cmd.Flags(), "debug")
		if err != nil {
			return err
		}
		if debug {
			return cmd.Flags().Set("log-level", "debug")
		}
		return nil
	}
}

func getStringFlag(flags *pflag.FlagSet, name string) (string, error) {
	value, err := flags.GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	return value, nil
}

func getBoolFlag(flags *pflag.FlagSet, name string) (bool, error) {
	value, err := flags.GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	return value, nil
}

// loadEnvFile loads environment variables from the file named by the
// env-file flag. A missing file is tolerated so the default works in
// directories without one.
func loadEnvFile(cmd *cobra.Command) (string, error) {
	envFile, err := getStringFlag(cmd.Flags(), "env-file")
	if err != nil {
		return "", err
	}
	if envFile == "" {
		return "", nil
	}
	absPath, err := filepath.Abs(filepath.Clean(envFile))
	if err != nil {
		return "", fmt.Errorf("failed to resolve env file path: %w", err)
	}
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return absPath, nil
		}
		return "", fmt.Errorf("failed to stat env file: %w", err)
	}
	if !fileInfo.Mode().IsRegular() {
		return "", fmt.Errorf("env file path '%s' is not a regular file", envFile)
	}
	if err := godotenv.Load(absPath); err != nil {
		return "", fmt.Errorf("failed to load env file %s: %w", absPath, err)
	}
	return absPath, nil
}

// setupContext prepares a command context: loads the env file, configures
// the process logger from the logging flags, and attaches the logger.
func setupContext(cmd *cobra.Command) (context.Context, error) {
	if _, err := loadEnvFile(cmd); err != nil {
		return nil, err
	}
	logLevel, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger.SetupLogger(logLevel, logJSON, logSource)
	return logger.ContextWithLogger(context.Background(), logger.GetDefault()), nil
}

// loadConfig builds a configuration from the config flag plus FLUO_*
// environment overrides. The default file is optional; an explicitly
// requested one is not. Returns the resolved file path, or "" when no
// file was read.
func loadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, string, error) {
	configFile, err := getStringFlag(cmd.Flags(), "config")
	if err != nil {
		return nil, "", err
	}
	noEnv, err := getBoolFlag(cmd.Flags(), "no-env")
	if err != nil {
		return nil, "", err
	}

	cfg := config.New()
	path := ""
	if configFile != "" {
		abs, err := filepath.Abs(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to resolve config file path: %w", err)
		}
		_, statErr := os.Stat(abs)
		switch {
		case statErr == nil:
			cfg, err = config.NewFromFile(abs)
			if err != nil {
				return nil, "", err
			}
			path = abs
		case os.IsNotExist(statErr) && !cmd.Flags().Changed("config"):
		default:
			return nil, "", fmt.Errorf("failed to read config file %s: %w", abs, statErr)
		}
	}

	cfg.WithLogger(logger.FromContext(ctx))
	if !noEnv {
		if err := cfg.LoadEnvironment(); err != nil {
			return nil, "", err
		}
	}
	return cfg, path, nil
}
