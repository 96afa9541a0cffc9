package repository

import (
	"database/sql"
	"testing"

	"github.com/laurvh/food-for-you/internal/model"
)

func seedOutgoing(t *testing.T, db *sql.DB, rec model.OutgoingRecord) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO outgoing (Item_name, Category, Quantity, Units, Location, fb_ID, fd_ID) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Name, rec.Category, rec.Quantity, rec.Units, rec.Location, rec.FoodBankID, rec.FoodItemID)
	if err != nil {
		t.Fatalf("seed outgoing: %v", err)
	}
}

func TestOutgoingSearchSharesFilterEngine(t *testing.T) {
	db := newTestDB(t)
	seedBank(t, db, model.FoodBank{ID: 1, Location: "River Pantry"})
	seedBank(t, db, model.FoodBank{ID: 2, Location: "Hill Pantry"})
	seedOutgoing(t, db, model.OutgoingRecord{Name: "Rice", Category: "Grain", Quantity: 40, Units: "lbs", Location: "River Pantry", FoodBankID: 1, FoodItemID: 1})
	seedOutgoing(t, db, model.OutgoingRecord{Name: "Beans", Category: "Legume", Quantity: 3, Units: "cans", Location: "Hill Pantry", FoodBankID: 2, FoodItemID: 2})
	repo := NewOutgoingRepo(db)

	rows, err := repo.Search(ctx(), ItemSearchQuery{Name: "Rice"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != 1 || rows[0].Quantity != 40 {
		t.Fatalf("rows = %+v", rows)
	}

	rows, err = repo.Search(ctx(), ItemSearchQuery{AscendingQty: true})
	if err != nil {
		t.Fatalf("search all: %v", err)
	}
	if len(rows) != 2 || rows[0].Name != "Beans" {
		t.Fatalf("ascending rows = %+v", rows)
	}
}

func TestOutgoingAll(t *testing.T) {
	db := newTestDB(t)
	seedOutgoing(t, db, model.OutgoingRecord{Name: "Rice", Category: "Grain", Quantity: 40, Units: "lbs", Location: "River Pantry", FoodBankID: 1, FoodItemID: 1})
	repo := NewOutgoingRepo(db)

	recs, err := repo.All(ctx())
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(recs) != 1 || recs[0].Name != "Rice" || recs[0].FoodItemID != 1 {
		t.Fatalf("recs = %+v", recs)
	}
}
