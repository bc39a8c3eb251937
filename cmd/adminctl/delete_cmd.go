package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
)

func newDeleteCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <family> <id>",
		Short: "Delete a record by id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context(), root)
			if err != nil {
				return err
			}

			ctrl, err := ws.Controller(domain.FamilyName(args[0]))
			if err != nil {
				return err
			}
			// удалять можно только загруженную запись
			if _, err := ctrl.EnsureLoaded(cmd.Context()); err != nil {
				return err
			}
			if err := ctrl.DeleteRecord(cmd.Context(), args[1]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %s\n", args[0], args[1])
			return nil
		},
	}
}
