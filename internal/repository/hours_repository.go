package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/laurvh/food-for-you/internal/model"
)

// HoursRepo provides read access to the hours table.  One row exists per
// food bank, holding fourteen time-of-day columns (an open and close pair
// per weekday).  Times are zero-padded HH:MM:SS strings; the empty string
// marks a day the food bank is closed.  Writes happen only through
// FoodBankRepo.Create.
type HoursRepo struct {
	db *sql.DB
}

// NewHoursRepo returns a new HoursRepo bound to the given database.
func NewHoursRepo(db *sql.DB) *HoursRepo { return &HoursRepo{db: db} }

// dayColumns maps a Monday-first day index to the pair of column names
// holding that day's hours.  The day column is interpolated into queries,
// so it must always come from this fixed table, never from input.
var dayColumns = [7][2]string{
	{"Monday", "Monday_close"},
	{"Tuesday", "Tuesday_close"},
	{"Wednesday", "Wednesday_close"},
	{"Thursday", "Thursday_close"},
	{"Friday", "Friday_close"},
	{"Saturday", "Saturday_close"},
	{"Sunday", "Sunday_close"},
}

// HoursOn returns the (open, close) pair for the given food bank on the
// given weekday.  A food bank without an hours row yields the closed
// sentinel pair rather than an error, matching how the search tools treat
// unknown ids.
func (r *HoursRepo) HoursOn(ctx context.Context, fbID uint64, wd time.Weekday) (model.DayHours, error) {
	cols := dayColumns[model.DayIndex(wd)]
	q := fmt.Sprintf(`SELECT h.%s, h.%s FROM hours h WHERE h.fb_ID = ?`, cols[0], cols[1])
	var d model.DayHours
	if err := r.db.QueryRowContext(ctx, q, fbID).Scan(&d.Open, &d.Close); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DayHours{Open: model.Closed, Close: model.Closed}, nil
		}
		return model.DayHours{}, err
	}
	return d, nil
}

// OpenHoursRow is one location's hours for a single day, produced by
// OpenOn for locations that are not closed that day.
type OpenHoursRow struct {
	Open     string
	Close    string
	Location string
}

// OpenOn returns the (open, close, location) rows for every food bank that
// is open at some point on the given weekday, optionally restricted to a
// neighborhood.  An empty neighborhood matches all rows.
func (r *HoursRepo) OpenOn(ctx context.Context, wd time.Weekday, neighborhood string) ([]OpenHoursRow, error) {
	cols := dayColumns[model.DayIndex(wd)]
	q := fmt.Sprintf(`SELECT h.%s, h.%s, fb.Location
	                  FROM hours h
	                  JOIN food_bank fb USING(fb_ID)
	                  WHERE h.%s <> '' AND h.%s <> ''`, cols[0], cols[1], cols[0], cols[1])
	args := []any{}
	if neighborhood != "" {
		q += ` AND fb.Neighborhood = ?`
		args = append(args, neighborhood)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OpenHoursRow
	for rows.Next() {
		var o OpenHoursRow
		if err := rows.Scan(&o.Open, &o.Close, &o.Location); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
