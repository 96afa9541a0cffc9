package repository

import (
	"context"
	"database/sql"

	"github.com/laurvh/food-for-you/internal/model"
)

// OutgoingRepo provides read access to the outgoing ledger.  Ledger rows
// are written only by ItemRepo.Update when a quantity decrease is booked;
// this repository serves the admin data-log view and the CSV export.
type OutgoingRepo struct {
	db *sql.DB
}

// NewOutgoingRepo returns a new OutgoingRepo bound to the given database.
func NewOutgoingRepo(db *sql.DB) *OutgoingRepo { return &OutgoingRepo{db: db} }

// Search runs the shared filter engine against the outgoing table.  The
// admin data-log view renders exactly the same columns as the staff item
// view, just sourced from the ledger.
func (r *OutgoingRepo) Search(ctx context.Context, q ItemSearchQuery) ([]ItemRow, error) {
	return searchRows(ctx, r.db, "outgoing", q)
}

// All returns every ledger row in store-native order for the CSV export.
func (r *OutgoingRepo) All(ctx context.Context) ([]model.OutgoingRecord, error) {
	const q = `SELECT o.Item_name, o.Category, o.Quantity, o.Units, o.Location, o.fb_ID, o.fd_ID FROM outgoing o`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.OutgoingRecord
	for rows.Next() {
		var rec model.OutgoingRecord
		if err := rows.Scan(&rec.Name, &rec.Category, &rec.Quantity, &rec.Units, &rec.Location, &rec.FoodBankID, &rec.FoodItemID); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
