package main

import (
	"fmt"

	"github.com/go-notes-nosql/internal/ui"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ui.ValidateTitle(title); err != nil {
				return err
			}
			n, err := a.client().Create(cmd.Context(), title, content)
			if err != nil {
				return fmt.Errorf("failed to create note: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Note created:")
			printNote(out, *n, a)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "Note title (required)")
	cmd.Flags().StringVarP(&content, "content", "c", "", "Note content")
	return cmd
}
