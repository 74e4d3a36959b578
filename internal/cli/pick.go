package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/d-r-k-k-l-n-r-j-w-l/easy-date-timeline/internal/config"
	"github.com/d-r-k-k-l-n-r-j-w-l/easy-date-timeline/internal/datepick"
	"github.com/d-r-k-k-l-n-r-j-w-l/easy-date-timeline/internal/tui"
)

const dateLayout = "2006-01-02"

// defaultRangeRadiusYears is the span used when --first/--last are omitted.
const defaultRangeRadiusYears = 10

type pickFlags struct {
	First        string
	Last         string
	Focus        string
	Current      string
	Mode         string
	ConfirmLabel string
	CancelLabel  string
	Locale       string
	FirstWeekday string
	Theme        string
}

func newPickCmd(app *App) *cobra.Command {
	var flags pickFlags

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open the interactive month/year picker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.First, "first", "", "First selectable date (YYYY-MM-DD; default: today minus 10 years)")
	cmd.Flags().StringVar(&flags.Last, "last", "", "Last selectable date (YYYY-MM-DD; default: today plus 10 years)")
	cmd.Flags().StringVar(&flags.Focus, "focus", "", "Initially focused date (YYYY-MM-DD; default: first selectable date)")
	cmd.Flags().StringVar(&flags.Current, "current", "", "Date highlighted as today (YYYY-MM-DD; default: today)")
	cmd.Flags().StringVar(&flags.Mode, "mode", "", "Initial view (month|year)")
	cmd.Flags().StringVar(&flags.ConfirmLabel, "confirm-label", "", "Confirm button label (default: locale)")
	cmd.Flags().StringVar(&flags.CancelLabel, "cancel-label", "", "Cancel button label (default: locale)")
	cmd.Flags().StringVar(&flags.Locale, "locale", "", "Locale tag for month and button labels (en|de|fr|es)")
	cmd.Flags().StringVar(&flags.FirstWeekday, "first-weekday", "", "First column of the month grid (monday|sunday)")
	cmd.Flags().StringVar(&flags.Theme, "theme", "", "Color theme (light|dark|auto)")

	return cmd
}

func runPick(cmd *cobra.Command, app *App, flags pickFlags) error {
	cfg, err := loadSettings(cmd.Context(), app)
	if err != nil {
		return writeErr(cmd, err)
	}

	opts, err := buildPickOptions(flags, cfg, time.Now().UTC())
	if err != nil {
		return writeErr(cmd, err)
	}

	res, err := tui.Run(opts)
	if err != nil {
		return writeErr(cmd, err)
	}

	if res.Cancelled {
		return writeOut(cmd, app, cancelResult{})
	}
	return writeOut(cmd, app, pickResult{Selected: res.Selected.Format(dateLayout)})
}

// pickResult is the envelope for a confirmed selection.
type pickResult struct {
	Selected string `json:"-"`
}

func (r pickResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"data": map[string]any{"selected": r.Selected}})
}

func (r pickResult) PlainText() string { return r.Selected }

// cancelResult is the envelope for a dismissed dialog.
type cancelResult struct{}

func (cancelResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"data": map[string]any{"selected": nil, "cancelled": true}})
}

func (cancelResult) PlainText() string { return "cancelled" }

// buildPickOptions turns flags plus merged configuration into picker
// options. now anchors the default range and the today highlight.
func buildPickOptions(flags pickFlags, cfg config.Config, now time.Time) (tui.Options, error) {
	now = datepick.Truncate(now)

	first := now.AddDate(-defaultRangeRadiusYears, 0, 0)
	last := now.AddDate(defaultRangeRadiusYears, 0, 0)

	var err error
	if flags.First != "" {
		if first, err = parseDateFlag("first", flags.First); err != nil {
			return tui.Options{}, err
		}
	}
	if flags.Last != "" {
		if last, err = parseDateFlag("last", flags.Last); err != nil {
			return tui.Options{}, err
		}
	}
	if last.Before(first) {
		return tui.Options{}, fmt.Errorf("--last %s is before --first %s", last.Format(dateLayout), first.Format(dateLayout))
	}

	var focus time.Time
	if flags.Focus != "" {
		if focus, err = parseDateFlag("focus", flags.Focus); err != nil {
			return tui.Options{}, err
		}
		if focus.Before(first) || focus.After(last) {
			return tui.Options{}, fmt.Errorf("--focus %s is outside %s..%s", focus.Format(dateLayout), first.Format(dateLayout), last.Format(dateLayout))
		}
	}

	current := now
	if flags.Current != "" {
		if current, err = parseDateFlag("current", flags.Current); err != nil {
			return tui.Options{}, err
		}
	}

	modeName := flags.Mode
	if modeName == "" {
		modeName = cfg.Picker.InitialMode
	}
	mode, err := datepick.ParseMode(modeName)
	if err != nil {
		return tui.Options{}, err
	}

	weekdayName := flags.FirstWeekday
	if weekdayName == "" {
		weekdayName = cfg.UI.FirstWeekday
	}
	weekday, err := parseWeekday(weekdayName)
	if err != nil {
		return tui.Options{}, err
	}

	confirm := flags.ConfirmLabel
	if confirm == "" {
		confirm = cfg.UI.ConfirmLabel
	}
	cancel := flags.CancelLabel
	if cancel == "" {
		cancel = cfg.UI.CancelLabel
	}
	locale := flags.Locale
	if locale == "" {
		locale = cfg.UI.Locale
	}
	theme := flags.Theme
	if theme == "" {
		theme = cfg.UI.Theme
	}

	return tui.Options{
		First:        first,
		Last:         last,
		Focus:        focus,
		Current:      current,
		InitialMode:  mode,
		ConfirmLabel: confirm,
		CancelLabel:  cancel,
		Locale:       locale,
		FirstWeekday: weekday,
		Theme:        theme,
	}, nil
}

func parseDateFlag(name, value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, errInvalidDate(name, value)
	}
	return t, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "monday":
		return time.Monday, nil
	case "sunday":
		return time.Sunday, nil
	default:
		return time.Monday, fmt.Errorf("invalid first weekday %q (want monday or sunday)", name)
	}
}
