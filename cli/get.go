package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// GetCmd returns the get command.
func GetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the resolved value of a single property",
		Args:  cobra.ExactArgs(1),
		RunE:  handleGetCmd,
	}
	addConfigFlags(cmd)
	addLoggingFlags(cmd)
	return cmd
}

func handleGetCmd(cmd *cobra.Command, args []string) error {
	ctx, err := setupContext(cmd)
	if err != nil {
		return err
	}
	cfg, _, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	value, err := cfg.GetRawString(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
