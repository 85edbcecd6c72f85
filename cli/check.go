package cli

import (
	"fmt"

	"github.com/fluo-io/fluo-go/pkg/config"
	"github.com/fluo-io/fluo-go/pkg/logger"
	"github.com/spf13/cobra"
)

// CheckCmd returns the check command.
func CheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the properties required by a deployment role are set",
		RunE:  handleCheckCmd,
	}
	cmd.Flags().String("role", "client", "Deployment role to check (client, admin, oracle, worker, mini)")
	addConfigFlags(cmd)
	addLoggingFlags(cmd)
	return cmd
}

func handleCheckCmd(cmd *cobra.Command, _ []string) error {
	ctx, err := setupContext(cmd)
	if err != nil {
		return err
	}
	roleName, err := getStringFlag(cmd.Flags(), "role")
	if err != nil {
		return err
	}
	role, err := config.ParseRole(roleName)
	if err != nil {
		return err
	}
	cfg, path, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	ok, err := cfg.CheckRole(role)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("missing required properties for role %s", role)
	}
	logger.FromContext(ctx).Info("required properties are set", "role", role.String(), "file", path)
	return nil
}
