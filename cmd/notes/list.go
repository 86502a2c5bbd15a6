package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-notes-nosql/internal/domain"
	"github.com/go-notes-nosql/internal/ui"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.client().List(cmd.Context())
			if err != nil {
				slog.Debug("list failed", "err", err)
				return fmt.Errorf("failed to fetch notes: %w", err)
			}
			list := ui.NoteList{}.ReplaceAll(notes)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(list.Notes())
			}
			printNotes(out, list, a)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func printNotes(out io.Writer, list ui.NoteList, a *app) {
	fmt.Fprintf(out, "Your Notes (%d)\n", list.Len())
	if list.Len() == 0 {
		fmt.Fprintln(out, "No notes yet. Create your first note with `notes add`!")
		return
	}
	for _, n := range list.Notes() {
		fmt.Fprintln(out)
		printNote(out, n, a)
	}
}

func printNote(out io.Writer, n domain.Note, a *app) {
	fmt.Fprintf(out, "%s  [%s]\n", n.Title, n.NoteID)
	if n.Content != "" {
		fmt.Fprintf(out, "  %s\n", n.Content)
	}
	fmt.Fprintf(out, "  Created %s\n", ui.FormatCreatedAt(n.CreatedAt, a.loc))
}
