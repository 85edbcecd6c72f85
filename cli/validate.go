package cli

import (
	"fmt"

	"github.com/fluo-io/fluo-go/pkg/logger"
	"github.com/spf13/cobra"
)

// ValidateCmd returns the validate command.
func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate every property in a fluo configuration",
		RunE:  handleValidateCmd,
	}
	addConfigFlags(cmd)
	addLoggingFlags(cmd)
	return cmd
}

func handleValidateCmd(cmd *cobra.Command, _ []string) error {
	ctx, err := setupContext(cmd)
	if err != nil {
		return err
	}
	cfg, path, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	logger.FromContext(ctx).Info("configuration is valid", "file", path)
	return nil
}
