package tui

import (
	"testing"
	"time"
)

func TestLocaleFor_RegionSubtagFallsBackToBase(t *testing.T) {
	if got := localeFor("de-AT").tag; got != "de" {
		t.Fatalf("localeFor(de-AT)=%q, want de", got)
	}
	if got := localeFor("fr_CA").tag; got != "fr" {
		t.Fatalf("localeFor(fr_CA)=%q, want fr", got)
	}
	if got := localeFor("xx").tag; got != "en" {
		t.Fatalf("localeFor(xx)=%q, want en fallback", got)
	}
	if got := localeFor("").tag; got != "en" {
		t.Fatalf("localeFor(\"\")=%q, want en fallback", got)
	}
}

func TestLocale_MonthYearHeader(t *testing.T) {
	d := time.Date(2022, time.March, 20, 0, 0, 0, 0, time.UTC)
	if got := localeFor("en").monthYear(d); got != "March 2022" {
		t.Fatalf("monthYear=%q, want March 2022", got)
	}
	if got := localeFor("es").monthYear(d); got != "marzo 2022" {
		t.Fatalf("monthYear=%q, want marzo 2022", got)
	}
}
