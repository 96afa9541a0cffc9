package model

import (
	"fmt"
	"time"
)

// Closed is the sentinel stored in an hours column for a day the food bank
// does not open.  AlwaysOpen is the reserved midnight-to-midnight pair
// meaning open all day; it is distinct from Closed on purpose, because
// equal open/close pairs are normalized to Closed before they are stored.
const (
	Closed     = ""
	AlwaysOpen = "00:00:00"
)

// DayNames lists weekday names in the column order of the `hours` table.
var DayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayHours is one day's open and close time of day, zero-padded HH:MM:SS,
// or the Closed sentinel in both fields.
type DayHours struct {
	Open  string
	Close string
}

// Closed reports whether either end of the pair carries the closed sentinel.
func (d DayHours) Closed() bool { return d.Open == Closed || d.Close == Closed }

// WeekHours holds one week of opening hours for a food bank, mirroring the
// fourteen time columns of the `hours` table.  Index 0 is Monday.
type WeekHours struct {
	FoodBankID uint64
	Days       [7]DayHours
}

// Normalize applies the creation-time rules to every day: a pair whose open
// and close are equal collapses to the closed sentinel, and an open time
// after the close time is an error.  The receiver is mutated in place.
func (w *WeekHours) Normalize() error {
	for i := range w.Days {
		d := w.Days[i]
		switch {
		case d.Open == d.Close:
			w.Days[i] = DayHours{Closed, Closed}
		case d.Open > d.Close:
			return fmt.Errorf("open time %s is after close time %s on %s", d.Open, d.Close, DayNames[i])
		}
	}
	return nil
}

// AnyOpen reports whether at least one day of the week is open.  A new food
// bank must be open at least one day.
func (w *WeekHours) AnyOpen() bool {
	for _, d := range w.Days {
		if !d.Closed() {
			return true
		}
	}
	return false
}

// DayIndex converts a time.Weekday (Sunday == 0) into the Monday-first
// index used by WeekHours and the hours table columns.
func DayIndex(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}
