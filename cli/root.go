package cli

import (
	"fmt"

	"github.com/fluo-io/fluo-go/pkg/version"
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	build := version.Get()
	root := &cobra.Command{
		Use:          "fluo",
		Short:        "Fluo configuration tool",
		Version:      fmt.Sprintf("%s (commit %s, built %s)", build.Version, build.CommitHash, build.BuildDate),
		SilenceUsage: true,
	}

	root.AddCommand(
		ValidateCmd(),
		CheckCmd(),
		GetCmd(),
		ShowCmd(),
		DefaultsCmd(),
		WatchCmd(),
	)

	return root
}
