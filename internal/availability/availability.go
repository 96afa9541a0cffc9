// Package availability decides whether food banks are currently open and
// ranks locations for donor matching.  Open/closed is evaluated against
// the weekly hours rows using same-day lexicographic time comparison on
// zero-padded HH:MM:SS strings, so no time zone arithmetic is involved
// beyond choosing "now".
package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/laurvh/food-for-you/internal/model"
	"github.com/laurvh/food-for-you/internal/repository"
)

// Evaluator answers read-only open/closed and need-ranking questions for
// the donor and recipient tools.
type Evaluator struct {
	Hours *repository.HoursRepo
	Items *repository.ItemRepo
}

// NewEvaluator constructs an Evaluator from its repositories.
func NewEvaluator(hours *repository.HoursRepo, items *repository.ItemRepo) *Evaluator {
	if hours == nil || items == nil {
		panic("nil repository passed to NewEvaluator")
	}
	return &Evaluator{Hours: hours, Items: items}
}

// Clock formats a wall-clock instant as the zero-padded HH:MM:SS string
// used throughout the hours table.
func Clock(now time.Time) string {
	return fmt.Sprintf("%02d:%02d:%02d", now.Hour(), now.Minute(), now.Second())
}

// OpenAt reports whether a single day's hours cover the given clock
// string.  A closed sentinel on either end means closed all day.  The
// 00:00:00/00:00:00 pair is reserved to mean open all day; equal pairs
// entered through the admin tool normalize to the closed sentinel before
// storage, so only the deliberate always-open case survives to this
// check.  Otherwise the location is open iff open <= now <= close.
func OpenAt(d model.DayHours, clock string) bool {
	if d.Closed() {
		return false
	}
	if d.Open == model.AlwaysOpen && d.Close == model.AlwaysOpen {
		return true
	}
	return d.Open <= clock && clock <= d.Close
}

// IsOpenNow reports whether the food bank is open at the given instant,
// using that instant's weekday.  An id with no hours row is closed.
func (e *Evaluator) IsOpenNow(ctx context.Context, fbID uint64, now time.Time) (bool, error) {
	d, err := e.Hours.HoursOn(ctx, fbID, now.Weekday())
	if err != nil {
		return false, err
	}
	return OpenAt(d, Clock(now)), nil
}

// OpenLocationsToday returns the names of every location open at the
// given instant, along with the raw per-location hours rows for today's
// weekday.  The raw rows include locations that open later or closed
// earlier today; callers use them to print today's hours.  An empty
// neighborhood matches everywhere.
func (e *Evaluator) OpenLocationsToday(ctx context.Context, neighborhood string, now time.Time) ([]string, []repository.OpenHoursRow, error) {
	rows, err := e.Hours.OpenOn(ctx, now.Weekday(), neighborhood)
	if err != nil {
		return nil, nil, err
	}
	clock := Clock(now)
	var open []string
	seen := map[string]bool{}
	for _, row := range rows {
		if !OpenAt(model.DayHours{Open: row.Open, Close: row.Close}, clock) {
			continue
		}
		if !seen[row.Location] {
			seen[row.Location] = true
			open = append(open, row.Location)
		}
	}
	return open, rows, nil
}

// CategoryTotals ranks food banks by how little of a category they hold,
// ascending, for donor matching.  Filters are optional.
func (e *Evaluator) CategoryTotals(ctx context.Context, neighborhood, category string) ([]repository.CategoryTotal, error) {
	return e.Items.CategoryTotals(ctx, neighborhood, category)
}
