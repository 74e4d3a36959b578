package tui

import (
	"fmt"
	"strings"
	"time"
)

// locale carries the handful of strings the picker needs. This is not a
// general i18n layer; unknown tags fall back to English.
type locale struct {
	tag           string
	months        [12]string
	weekdaysShort [7]string // indexed by time.Weekday (Sunday = 0)
	confirm       string
	cancel        string
	monthTitle    string
	yearTitle     string
}

var locales = map[string]locale{
	"en": {
		tag: "en",
		months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		weekdaysShort: [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
		confirm:       "OK",
		cancel:        "Cancel",
		monthTitle:    "Select month",
		yearTitle:     "Select year",
	},
	"de": {
		tag: "de",
		months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
		weekdaysShort: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		confirm:       "OK",
		cancel:        "Abbrechen",
		monthTitle:    "Monat wählen",
		yearTitle:     "Jahr wählen",
	},
	"fr": {
		tag: "fr",
		months: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		weekdaysShort: [7]string{"di", "lu", "ma", "me", "je", "ve", "sa"},
		confirm:       "OK",
		cancel:        "Annuler",
		monthTitle:    "Choisir le mois",
		yearTitle:     "Choisir l'année",
	},
	"es": {
		tag: "es",
		months: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		weekdaysShort: [7]string{"do", "lu", "ma", "mi", "ju", "vi", "sá"},
		confirm:       "OK",
		cancel:        "Cancelar",
		monthTitle:    "Elegir mes",
		yearTitle:     "Elegir año",
	},
}

// localeFor resolves a tag like "de" or "de-AT" to a locale, falling back to
// English.
func localeFor(tag string) locale {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if l, ok := locales[tag]; ok {
		return l
	}
	// Strip a region subtag ("de-AT", "fr_CA").
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		if l, ok := locales[tag[:i]]; ok {
			return l
		}
	}
	return locales["en"]
}

func (l locale) monthName(m time.Month) string {
	return l.months[int(m)-1]
}

// monthYear formats the header label, e.g. "March 2022".
func (l locale) monthYear(d time.Time) string {
	return fmt.Sprintf("%s %d", l.monthName(d.Month()), d.Year())
}
