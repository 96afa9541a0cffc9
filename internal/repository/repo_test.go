package repository

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/laurvh/food-for-you/internal/model"
)

// testSchema mirrors the food resource store.  SQLite accepts the same
// placeholder style and join syntax the repositories use against MySQL,
// which keeps these tests driverless of a running server.
var testSchema = []string{
	`CREATE TABLE food_bank (
		Location     TEXT,
		Address      TEXT,
		Neighborhood TEXT,
		Phone_number TEXT,
		fb_ID        INTEGER
	)`,
	`CREATE TABLE hours (
		fb_ID           INTEGER,
		Monday          TEXT, Monday_close    TEXT,
		Tuesday         TEXT, Tuesday_close   TEXT,
		Wednesday       TEXT, Wednesday_close TEXT,
		Thursday        TEXT, Thursday_close  TEXT,
		Friday          TEXT, Friday_close    TEXT,
		Saturday        TEXT, Saturday_close  TEXT,
		Sunday          TEXT, Sunday_close    TEXT
	)`,
	`CREATE TABLE food_item (
		Item_name TEXT,
		Category  TEXT,
		Quantity  INTEGER,
		Units     TEXT,
		Location  TEXT,
		fb_ID     INTEGER,
		fd_ID     INTEGER
	)`,
	`CREATE TABLE outgoing (
		Item_name TEXT,
		Category  TEXT,
		Quantity  INTEGER,
		Units     TEXT,
		Location  TEXT,
		fb_ID     INTEGER,
		fd_ID     INTEGER
	)`,
}

// newTestDB opens an in-memory store carrying the full schema.  A single
// connection is enforced so every statement, transactional or not, sees
// the same memory database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	for _, stmt := range testSchema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedBank(t *testing.T, db *sql.DB, fb model.FoodBank) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO food_bank (Location, Address, Neighborhood, Phone_number, fb_ID) VALUES (?, ?, ?, ?, ?)`,
		fb.Location, fb.Address, fb.Neighborhood, fb.Phone, fb.ID)
	if err != nil {
		t.Fatalf("seed food bank: %v", err)
	}
}

func seedHours(t *testing.T, db *sql.DB, fbID uint64, days [7]model.DayHours) {
	t.Helper()
	args := make([]any, 0, 15)
	args = append(args, fbID)
	for _, d := range days {
		args = append(args, d.Open, d.Close)
	}
	_, err := db.Exec(`INSERT INTO hours (fb_ID,
		Monday, Monday_close, Tuesday, Tuesday_close,
		Wednesday, Wednesday_close, Thursday, Thursday_close,
		Friday, Friday_close, Saturday, Saturday_close,
		Sunday, Sunday_close)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	if err != nil {
		t.Fatalf("seed hours: %v", err)
	}
}

func seedItem(t *testing.T, db *sql.DB, it model.FoodItem) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO food_item (Item_name, Category, Quantity, Units, Location, fb_ID, fd_ID) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		it.Name, it.Category, it.Quantity, it.Units, it.Location, it.FoodBankID, it.ID)
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}
}

// itemByID reads a food item row back out for assertions.
func itemByID(t *testing.T, db *sql.DB, fdID uint64) (model.FoodItem, bool) {
	t.Helper()
	var it model.FoodItem
	err := db.QueryRow(`SELECT Item_name, Category, Quantity, Units, Location, fb_ID, fd_ID FROM food_item WHERE fd_ID = ?`, fdID).
		Scan(&it.Name, &it.Category, &it.Quantity, &it.Units, &it.Location, &it.FoodBankID, &it.ID)
	if err == sql.ErrNoRows {
		return model.FoodItem{}, false
	}
	if err != nil {
		t.Fatalf("read item %d: %v", fdID, err)
	}
	return it, true
}

// outgoingQty reads the accumulated ledger quantity for an fd_ID, or -1
// when no ledger row exists.
func outgoingQty(t *testing.T, db *sql.DB, fdID uint64) int64 {
	t.Helper()
	var q int64
	err := db.QueryRow(`SELECT Quantity FROM outgoing WHERE fd_ID = ?`, fdID).Scan(&q)
	if err == sql.ErrNoRows {
		return -1
	}
	if err != nil {
		t.Fatalf("read outgoing %d: %v", fdID, err)
	}
	return q
}

func ctx() context.Context { return context.Background() }
