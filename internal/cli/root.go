// Package cli wires the easydate commands: the interactive picker, the
// embedded docs, and the stored preferences.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/d-r-k-k-l-n-r-j-w-l/easy-date-timeline/internal/config"
	"github.com/d-r-k-k-l-n-r-j-w-l/easy-date-timeline/internal/format"
	"github.com/d-r-k-k-l-n-r-j-w-l/easy-date-timeline/internal/store"
)

type App struct {
	StateDir   string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "easydate",
		Short:        "Terminal month/year date picker",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the picker over the next two years
  easydate pick --first 2026-01-01 --last 2027-12-31

  # Bare invocation: picker over today +/- 10 years
  easydate

  # Start in the year view, German labels
  easydate pick --mode year --locale de

  # Remember a theme for future runs
  easydate prefs set ui.theme dark
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => open the picker with defaults.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runPick(cmd, app, pickFlags{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.StateDir, "state-dir", envOr("EASYDATE_STATE_DIR", ""), "Preferences directory (default: ~/.local/state/easydate)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("EASYDATE_FORMAT", "json"), "Output format (json|plain)")

	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newPrefsCmd(app))

	return cmd
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

// openPrefs opens the preferences database, honoring --state-dir.
func openPrefs(ctx context.Context, app *App) (*store.Prefs, error) {
	dir := app.StateDir
	if dir == "" {
		dir = store.DefaultDir()
	}
	return store.Open(ctx, dir)
}

// loadSettings merges stored preferences over the file/env configuration.
// Flags are applied on top by the caller.
func loadSettings(ctx context.Context, app *App) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	prefs, err := openPrefs(ctx, app)
	if err != nil {
		// Preferences are an overlay; a broken state dir must not block the
		// picker itself.
		return cfg, nil
	}
	defer prefs.Close()

	all, err := prefs.All(ctx)
	if err != nil {
		return cfg, nil
	}
	applyPrefs(&cfg, all)
	return cfg, nil
}

func applyPrefs(cfg *config.Config, prefs map[string]string) {
	if v, ok := prefs[store.KeyTheme]; ok {
		cfg.UI.Theme = v
	}
	if v, ok := prefs[store.KeyLocale]; ok {
		cfg.UI.Locale = v
	}
	if v, ok := prefs[store.KeyFirstWeekday]; ok {
		cfg.UI.FirstWeekday = v
	}
	if v, ok := prefs[store.KeyConfirmLabel]; ok {
		cfg.UI.ConfirmLabel = v
	}
	if v, ok := prefs[store.KeyCancelLabel]; ok {
		cfg.UI.CancelLabel = v
	}
	if v, ok := prefs[store.KeyInitialMode]; ok {
		cfg.Picker.InitialMode = v
	}
}
