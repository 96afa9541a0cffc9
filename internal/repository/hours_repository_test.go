package repository

import (
	"testing"
	"time"

	"github.com/laurvh/food-for-you/internal/model"
)

func TestHoursOn(t *testing.T) {
	db := newTestDB(t)
	seedBank(t, db, model.FoodBank{ID: 1, Location: "River Pantry"})
	var week [7]model.DayHours
	week[0] = model.DayHours{Open: "09:00:00", Close: "17:00:00"} // Monday
	week[6] = model.DayHours{Open: "10:00:00", Close: "14:00:00"} // Sunday
	seedHours(t, db, 1, week)
	repo := NewHoursRepo(db)

	day, err := repo.HoursOn(ctx(), 1, time.Monday)
	if err != nil {
		t.Fatalf("monday: %v", err)
	}
	if day.Open != "09:00:00" || day.Close != "17:00:00" {
		t.Fatalf("monday = %+v", day)
	}

	// The weekday conversion is Monday-first; Sunday maps to the last pair.
	day, err = repo.HoursOn(ctx(), 1, time.Sunday)
	if err != nil {
		t.Fatalf("sunday: %v", err)
	}
	if day.Open != "10:00:00" {
		t.Fatalf("sunday = %+v", day)
	}

	day, err = repo.HoursOn(ctx(), 1, time.Tuesday)
	if err != nil {
		t.Fatalf("tuesday: %v", err)
	}
	if !day.Closed() {
		t.Fatalf("tuesday = %+v, want closed", day)
	}
}

func TestHoursOnMissingRowIsClosed(t *testing.T) {
	db := newTestDB(t)
	repo := NewHoursRepo(db)
	day, err := repo.HoursOn(ctx(), 42, time.Friday)
	if err != nil {
		t.Fatalf("hours on: %v", err)
	}
	if !day.Closed() {
		t.Fatalf("day = %+v, want closed sentinel pair", day)
	}
}

func TestOpenOn(t *testing.T) {
	db := newTestDB(t)
	seedBank(t, db, model.FoodBank{ID: 1, Location: "River Pantry", Neighborhood: "Whiteaker"})
	seedBank(t, db, model.FoodBank{ID: 2, Location: "Hill Pantry", Neighborhood: "Churchill"})
	seedBank(t, db, model.FoodBank{ID: 3, Location: "Park Pantry", Neighborhood: "Whiteaker"})

	open := [7]model.DayHours{}
	open[0] = model.DayHours{Open: "09:00:00", Close: "17:00:00"}
	seedHours(t, db, 1, open)
	seedHours(t, db, 2, open)
	seedHours(t, db, 3, [7]model.DayHours{}) // closed every day

	repo := NewHoursRepo(db)

	rows, err := repo.OpenOn(ctx(), time.Monday, "")
	if err != nil {
		t.Fatalf("open on: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %+v, want the two open banks", rows)
	}

	rows, err = repo.OpenOn(ctx(), time.Monday, "Whiteaker")
	if err != nil {
		t.Fatalf("open on filtered: %v", err)
	}
	if len(rows) != 1 || rows[0].Location != "River Pantry" {
		t.Fatalf("filtered rows = %+v", rows)
	}

	// Tuesday nobody is open.
	rows, err = repo.OpenOn(ctx(), time.Tuesday, "")
	if err != nil {
		t.Fatalf("open on tuesday: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("tuesday rows = %+v, want none", rows)
	}
}
