package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mechdyane/mechdyane/internal/catalog"
)

var domainCmd = &cobra.Command{
	Use:   "domain",
	Short: "Inspect learning domains",
}

var domainListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the learning domains",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-4s  %-18s  %-8s  %s\n", "", "Domain", "Color", "Starts with")
		for _, d := range catalog.Domains() {
			fmt.Fprintf(out, "%-4s  %-18s  %-8s  %s\n", d.Icon, d.Name, d.Color, catalog.IntroTopic(d.Name))
		}
	},
}

func init() {
	domainCmd.AddCommand(domainListCmd)
}
