package main

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type listOptions struct {
	Page int
}

func newListCmd(root *rootOptions) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list <family> [--page n]",
		Short: "Print one page of records, one JSON object per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context(), root)
			if err != nil {
				return err
			}

			ctrl, err := ws.Controller(domain.FamilyName(args[0]))
			if err != nil {
				return err
			}
			if _, err := ctrl.EnsureLoaded(cmd.Context()); err != nil {
				return err
			}

			items, err := ctrl.Page(opts.Page)
			if err != nil {
				return err
			}

			idField := ctrl.Family().IDField
			out := cmd.OutOrStdout()
			for _, rec := range items {
				line, err := json.Marshal(rec.ToMap(idField))
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(line))
			}

			w := ctrl.Snapshot().Window
			fmt.Fprintf(cmd.ErrOrStderr(), "page %d/%d, %d records total\n", w.Page, w.TotalPages, w.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Page, "page", 1, "page number (1-based)")
	return cmd
}
