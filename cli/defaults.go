package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/fluo-io/fluo-go/pkg/config"
	"github.com/spf13/cobra"
)

// DefaultsCmd returns the defaults command.
func DefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default value of every property that has one",
		RunE:  handleDefaultsCmd,
	}
}

func handleDefaultsCmd(cmd *cobra.Command, _ []string) error {
	p := config.DefaultProperties()
	keys := p.Keys()
	sort.Strings(keys)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "KEY\tDEFAULT")
	fmt.Fprintln(w, "---\t-------")
	for _, key := range keys {
		value, _ := p.Get(key)
		fmt.Fprintf(w, "%s\t%s\n", key, value)
	}
	return nil
}
