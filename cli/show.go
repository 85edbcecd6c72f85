package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/fluo-io/fluo-go/pkg/config"
	"github.com/spf13/cobra"
)

const redactedValue = "<redacted>"

// ShowCmd returns the show command.
func ShowCmd() *cobra.Command {
	var (
		clientOnly  bool
		showSecrets bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration as a table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, clientOnly, showSecrets)
		},
	}

	cmd.Flags().BoolVar(&clientOnly, "client", false, "Show only the client connection properties")
	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "Print secret values instead of redacting them")
	addConfigFlags(cmd)
	addLoggingFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, clientOnly, showSecrets bool) error {
	ctx, err := setupContext(cmd)
	if err != nil {
		return err
	}
	cfg, _, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	values := make(map[string]string)
	if clientOnly {
		p := cfg.ClientProperties()
		for _, key := range p.Keys() {
			value, _ := p.Get(key)
			values[key] = value
		}
	} else {
		for _, key := range cfg.Keys() {
			values[key] = cfg.GetRawStringDefault(key, "")
		}
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "KEY\tVALUE")
	fmt.Fprintln(w, "---\t-----")
	for _, key := range keys {
		value := values[key]
		if !showSecrets && key == config.ClientAccumuloPasswordProp {
			value = redactedValue
		}
		fmt.Fprintf(w, "%s\t%s\n", key, value)
	}
	return nil
}
