package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	bv "github.com/nakamurakj/bean-validation/pkg/beanvalidator"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List constraint kinds with their parameters and default messages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg := bv.DefaultRegistry()
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KIND\tPARAMS\tMESSAGE")
		for _, k := range bv.Kinds() {
			cfg, err := reg.DefaultConfig(k)
			if err != nil {
				return err
			}
			msg, err := reg.DefaultMessage(k)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", k, paramNames(cfg), msg)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}

func paramNames(cfg bv.Config) string {
	params := cfg.Params()
	if len(params) == 0 {
		return "-"
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return strings.Join(names, ",")
}
