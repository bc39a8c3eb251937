package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFamiliesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "Print record families available in the admin panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(cmd.Context(), opts)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTITLE\tPAGE SIZE\tOPERATIONS")
			for _, f := range ws.Families() {
				ops := make([]string, 0, len(f.Operations))
				for _, op := range f.Operations {
					ops = append(ops, string(op))
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", f.Name, f.Title, f.PageSize, strings.Join(ops, ","))
			}
			return tw.Flush()
		},
	}
}
