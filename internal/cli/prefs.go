package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d-r-k-k-l-n-r-j-w-l/easy-date-timeline/internal/store"
)

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage stored UI preferences",
		Long:  "Preferences persist across runs (theme, locale, labels, initial view). The picked date itself is never stored.",
	}

	cmd.AddCommand(newPrefsListCmd(app))
	cmd.AddCommand(newPrefsGetCmd(app))
	cmd.AddCommand(newPrefsSetCmd(app))
	cmd.AddCommand(newPrefsUnsetCmd(app))

	return cmd
}

func newPrefsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored preferences and known keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := openPrefs(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer prefs.Close()

			all, err := prefs.All(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"prefs": all,
				"keys":  store.Keys(),
			}})
		},
	}
}

func newPrefsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Show one stored preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := openPrefs(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer prefs.Close()

			v, ok, err := prefs.Get(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if !ok {
				return writeErr(cmd, fmt.Errorf("preference not set: %s", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"key":   args[0],
				"value": v,
			}})
		},
	}
}

func newPrefsSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a preference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := openPrefs(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer prefs.Close()

			if err := prefs.Set(cmd.Context(), args[0], args[1]); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"key":   args[0],
				"value": args[1],
			}})
		},
	}
}

func newPrefsUnsetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a stored preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := openPrefs(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer prefs.Close()

			if err := prefs.Delete(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"key":     args[0],
				"removed": true,
			}})
		},
	}
}
