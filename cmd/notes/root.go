package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/go-notes-nosql/internal/client"
	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:8080"

// app carries the state shared by every subcommand.
type app struct {
	apiURL  string
	verbose bool
	loc     *time.Location
	envErr  error // result of loading .env, reported once logging is set up
}

func (a *app) client() *client.Client {
	return client.New(a.apiURL)
}

func newRootCmd(envErr error) *cobra.Command {
	a := &app{loc: time.Local, envErr: envErr}

	rootCmd := &cobra.Command{
		Use:   "notes",
		Short: "Terminal client for the notes API",
		Long: `notes lists, creates and deletes notes through the notes API.
Every command performs one request and waits for it before returning.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			if a.envErr != nil {
				slog.Debug("no .env file loaded, reading from environment", "err", a.envErr)
			}
		},
	}

	apiURL := os.Getenv("NOTES_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api", apiURL, "Notes API base URL (env NOTES_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(
		newListCmd(a),
		newAddCmd(a),
		newDeleteCmd(a),
		newHealthCmd(a),
	)
	return rootCmd
}
