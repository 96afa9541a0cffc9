// This file defines the ItemRepo, the mutation core of the inventory.  The
// four reconciliation operations (insert, update, move, delete) validate
// fully before writing, run their multi-statement paths inside a single
// transaction, and keep two invariants: a move conserves total quantity
// across source and destination, and every quantity decrease through
// update is mirrored into the outgoing ledger.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/laurvh/food-for-you/internal/model"
)

// ItemRepo encapsulates queries and mutations over the food_item table.
type ItemRepo struct {
	db *sql.DB
}

// NewItemRepo constructs an ItemRepo with the provided DB handle.
func NewItemRepo(db *sql.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

// Search runs the shared filter engine against the food_item table.
func (r *ItemRepo) Search(ctx context.Context, q ItemSearchQuery) ([]ItemRow, error) {
	return searchRows(ctx, r.db, "food_item", q)
}

// ListCategories returns the distinct item categories ascending, for the
// staff insert dropdown and the donor category filter.
func (r *ItemRepo) ListCategories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT fi.Category FROM food_item fi ORDER BY fi.Category ASC`)
}

// ListNames returns the distinct item names ascending, for the recipient
// food dropdown.
func (r *ItemRepo) ListNames(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT fi.Item_name FROM food_item fi ORDER BY fi.Item_name ASC`)
}

func (r *ItemRepo) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert creates a new food item row.  All five fields are required, the
// quantity must be non-negative, and the location must resolve to an
// existing food bank.  An existing row with the identical (name, category,
// units, location) tuple is a duplicate; the caller must update that
// entry instead.  On success the item's ID holds the freshly allocated
// fd_ID (max existing + 1, never reused).  Insert is not a removal, so the
// outgoing ledger is untouched.
func (r *ItemRepo) Insert(ctx context.Context, item *model.FoodItem) (err error) {
	if strings.TrimSpace(item.Name) == "" || strings.TrimSpace(item.Category) == "" ||
		strings.TrimSpace(item.Units) == "" || strings.TrimSpace(item.Location) == "" {
		return fmt.Errorf("%w: all fields are required to insert an item", ErrValidation)
	}
	if item.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be non-negative", ErrValidation)
	}

	tx, txErr := r.db.BeginTx(ctx, nil)
	if txErr != nil {
		return txErr
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var fbID uint64
	err = tx.QueryRowContext(ctx, `SELECT fb.fb_ID FROM food_bank fb WHERE fb.Location = ?`, item.Location).Scan(&fbID)
	if errors.Is(err, sql.ErrNoRows) {
		err = fmt.Errorf("%w: location %q is not valid", ErrFoodBankNotFound, item.Location)
		return err
	}
	if err != nil {
		return err
	}

	var dup uint64
	err = tx.QueryRowContext(ctx,
		`SELECT fi.fd_ID FROM food_item fi
		 WHERE fi.Item_name = ? AND fi.Category = ? AND fi.Units = ? AND fi.fb_ID = ?`,
		item.Name, item.Category, item.Units, fbID).Scan(&dup)
	if err == nil {
		err = ErrDuplicateItem
		return err
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	item.ID, err = nextID(ctx, tx, `SELECT MAX(fd_ID) FROM food_item`)
	if err != nil {
		return err
	}
	item.FoodBankID = fbID

	const ins = `INSERT INTO food_item (Item_name, Category, Quantity, Units, Location, fb_ID, fd_ID)
	             VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, ins, item.Name, item.Category, item.Quantity, item.Units, item.Location, fbID, item.ID)
	return err
}

// Update applies new name, quantity and units to the row identified by
// fdID.  The prior quantity is read first; when the new quantity is lower,
// the difference is a removal and is accumulated into the outgoing ledger:
// an existing outgoing row for this fd_ID gains the difference, otherwise
// one is created seeded with it, copying the prior row's tuple.
// Replenishment (new >= prior) has no ledger effect.  The ledger record
// written, if any, is returned with its accumulated total alongside the
// quantity removed by this update.
func (r *ItemRepo) Update(ctx context.Context, fdID uint64, name string, quantity int64, units string) (rec *model.OutgoingRecord, removed int64, err error) {
	if quantity < 0 {
		return nil, 0, fmt.Errorf("%w: quantity must be non-negative", ErrValidation)
	}

	tx, txErr := r.db.BeginTx(ctx, nil)
	if txErr != nil {
		return nil, 0, txErr
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	prior, err := getItemTx(ctx, tx, fdID)
	if err != nil {
		return nil, 0, err
	}

	const upd = `UPDATE food_item SET Item_name = ?, Quantity = ?, Units = ? WHERE fd_ID = ?`
	if _, err = tx.ExecContext(ctx, upd, name, quantity, units, fdID); err != nil {
		return nil, 0, err
	}

	if quantity >= prior.Quantity {
		return nil, 0, err
	}
	removed = prior.Quantity - quantity
	rec, err = recordOutgoingTx(ctx, tx, prior, removed)
	return rec, removed, err
}

// Move transfers moveQty of the item identified by fdID to the food bank
// named destLocation.  The destination is resolved in two stages: an item
// there matching the source's (name, units) is located first, then
// verified to match on (name, category, units).  A genuine match absorbs
// the quantity; a near-match is ErrItemMismatch; no match creates a new
// row at the destination with a fresh fd_ID.  Total quantity across source
// and destination is conserved and the outgoing ledger is never written;
// a move is a transfer, not a removal from the system.  The destination
// row is returned along with whether it was newly created.
func (r *ItemRepo) Move(ctx context.Context, fdID uint64, moveQty int64, destLocation string) (moved *model.FoodItem, created bool, err error) {
	if moveQty < 0 {
		return nil, false, fmt.Errorf("%w: the move quantity cannot be negative", ErrValidation)
	}
	if strings.TrimSpace(destLocation) == "" {
		return nil, false, fmt.Errorf("%w: a destination location must be selected", ErrValidation)
	}

	tx, txErr := r.db.BeginTx(ctx, nil)
	if txErr != nil {
		return nil, false, txErr
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	source, err := getItemTx(ctx, tx, fdID)
	if err != nil {
		return nil, false, err
	}
	if destLocation == source.Location {
		err = fmt.Errorf("%w: the destination cannot be the same location", ErrValidation)
		return nil, false, err
	}
	if moveQty > source.Quantity {
		err = fmt.Errorf("%w: the move quantity cannot be greater than the current quantity", ErrValidation)
		return nil, false, err
	}

	var destFB uint64
	err = tx.QueryRowContext(ctx, `SELECT fb.fb_ID FROM food_bank fb WHERE fb.Location = ?`, destLocation).Scan(&destFB)
	if errors.Is(err, sql.ErrNoRows) {
		err = fmt.Errorf("%w: location %q is not valid", ErrFoodBankNotFound, destLocation)
		return nil, false, err
	}
	if err != nil {
		return nil, false, err
	}

	const setQty = `UPDATE food_item SET Quantity = ? WHERE fd_ID = ?`

	// Stage one: find a candidate at the destination by name and units.
	var dest model.FoodItem
	err = tx.QueryRowContext(ctx,
		`SELECT fi.Item_name, fi.Category, fi.Quantity, fi.Units, fi.Location, fi.fb_ID, fi.fd_ID
		 FROM food_item fi WHERE fi.Item_name = ? AND fi.Units = ? AND fi.fb_ID = ?`,
		source.Name, source.Units, destFB).Scan(
		&dest.Name, &dest.Category, &dest.Quantity, &dest.Units, &dest.Location, &dest.FoodBankID, &dest.ID)

	switch {
	case err == nil:
		// Stage two: the candidate must be genuinely the same item.
		if !source.SameItem(dest) {
			err = ErrItemMismatch
			return nil, false, err
		}
		if _, err = tx.ExecContext(ctx, setQty, source.Quantity-moveQty, source.ID); err != nil {
			return nil, false, err
		}
		dest.Quantity += moveQty
		if _, err = tx.ExecContext(ctx, setQty, dest.Quantity, dest.ID); err != nil {
			return nil, false, err
		}
		return &dest, false, err

	case errors.Is(err, sql.ErrNoRows):
		// No candidate: create the item at the destination.
		var newID uint64
		newID, err = nextID(ctx, tx, `SELECT MAX(fd_ID) FROM food_item`)
		if err != nil {
			return nil, false, err
		}
		if _, err = tx.ExecContext(ctx, setQty, source.Quantity-moveQty, source.ID); err != nil {
			return nil, false, err
		}
		dest = model.FoodItem{
			Name:       source.Name,
			Category:   source.Category,
			Quantity:   moveQty,
			Units:      source.Units,
			Location:   destLocation,
			FoodBankID: destFB,
			ID:         newID,
		}
		const ins = `INSERT INTO food_item (Item_name, Category, Quantity, Units, Location, fb_ID, fd_ID)
		             VALUES (?, ?, ?, ?, ?, ?, ?)`
		if _, err = tx.ExecContext(ctx, ins, dest.Name, dest.Category, dest.Quantity, dest.Units, dest.Location, dest.FoodBankID, dest.ID); err != nil {
			return nil, false, err
		}
		return &dest, true, err

	default:
		return nil, false, err
	}
}

// Delete removes the food item row with the given id.  Deleting an id that
// is already gone is a success: the row was absent either way.  Delete is
// not tracked in the outgoing ledger.
func (r *ItemRepo) Delete(ctx context.Context, fdID uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM food_item WHERE fd_ID = ?`, fdID)
	return err
}

// CategoryTotal is one donor-ranking row: a food bank and its summed
// quantity for the filtered category.
type CategoryTotal struct {
	FoodBankID uint64 `json:"fb_id"`
	Location   string `json:"location"`
	Total      int64  `json:"total"`
}

// CategoryTotals aggregates item quantity per food bank for the given
// category filter, restricted to a neighborhood when one is supplied.
// Empty filters match everything.  Rows come back ascending by total so
// the donor tool can rank locations by need, lowest stock first.
func (r *ItemRepo) CategoryTotals(ctx context.Context, neighborhood, category string) ([]CategoryTotal, error) {
	if neighborhood == "" {
		neighborhood = "%"
	}
	if category == "" {
		category = "%"
	}
	const q = `SELECT temp.fb_ID, temp.Location, SUM(temp.total) AS final_total
	           FROM food_bank fb JOIN
	             (SELECT fi.fb_ID, fi.Location, fi.Category, SUM(fi.Quantity) AS total
	              FROM food_item fi
	              WHERE fi.Category LIKE ?
	              GROUP BY fi.fb_ID, fi.Location, fi.Category) AS temp USING(fb_ID, Location)
	           WHERE fb.Neighborhood LIKE ?
	           GROUP BY temp.fb_ID, temp.Location
	           ORDER BY final_total`
	rows, err := r.db.QueryContext(ctx, q, category, neighborhood)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategoryTotal
	for rows.Next() {
		var t CategoryTotal
		if err := rows.Scan(&t.FoodBankID, &t.Location, &t.Total); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// StockRow is one recipient-view row: where an item can be found and how
// well stocked it is there.
type StockRow struct {
	Item     string `json:"item"`
	Location string `json:"location"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
}

// Availability lists where the named item (or every item, when the name is
// empty) is stocked, labelled Unavailable / Low Stock / Available and
// ordered descending by quantity so the best-stocked locations lead.  An
// empty neighborhood matches all neighborhoods.
func (r *ItemRepo) Availability(ctx context.Context, itemName, neighborhood string) ([]StockRow, error) {
	query := `SELECT fi.Item_name, fi.Location, fb.Address, fb.Phone_number,
	            CASE WHEN Quantity = 0 THEN 'Unavailable'
	                 WHEN Quantity < 21 THEN 'Low Stock'
	                 ELSE 'Available' END AS stock_status
	          FROM food_item fi
	          LEFT JOIN food_bank fb USING(fb_ID)`
	where := []string{}
	args := []any{}
	if itemName != "" {
		where = append(where, "fi.Item_name = ?")
		args = append(args, itemName)
	}
	if neighborhood != "" {
		where = append(where, "fb.Neighborhood = ?")
		args = append(args, neighborhood)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY fi.Quantity DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StockRow
	for rows.Next() {
		var s StockRow
		if err := rows.Scan(&s.Item, &s.Location, &s.Address, &s.Phone, &s.Status); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// getItemTx reads a full food item row by id within a transaction,
// translating a missing row into ErrItemNotFound.
func getItemTx(ctx context.Context, tx *sql.Tx, fdID uint64) (*model.FoodItem, error) {
	const q = `SELECT fi.Item_name, fi.Category, fi.Quantity, fi.Units, fi.Location, fi.fb_ID, fi.fd_ID
	           FROM food_item fi WHERE fi.fd_ID = ?`
	var it model.FoodItem
	err := tx.QueryRowContext(ctx, q, fdID).Scan(&it.Name, &it.Category, &it.Quantity, &it.Units, &it.Location, &it.FoodBankID, &it.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// recordOutgoingTx books a quantity decrease into the outgoing ledger.
// The record for prior's fd_ID accumulates delta, or is created seeded
// with it.  Ledger quantities only ever grow and rows are never deleted.
func recordOutgoingTx(ctx context.Context, tx *sql.Tx, prior *model.FoodItem, delta int64) (*model.OutgoingRecord, error) {
	rec := model.OutgoingRecord{
		Name:       prior.Name,
		Category:   prior.Category,
		Units:      prior.Units,
		Location:   prior.Location,
		FoodBankID: prior.FoodBankID,
		FoodItemID: prior.ID,
	}

	var existing int64
	err := tx.QueryRowContext(ctx, `SELECT o.Quantity FROM outgoing o WHERE o.fd_ID = ?`, prior.ID).Scan(&existing)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		rec.Quantity = delta
		const ins = `INSERT INTO outgoing (Item_name, Category, Quantity, Units, Location, fb_ID, fd_ID)
		             VALUES (?, ?, ?, ?, ?, ?, ?)`
		if _, err := tx.ExecContext(ctx, ins, rec.Name, rec.Category, rec.Quantity, rec.Units, rec.Location, rec.FoodBankID, rec.FoodItemID); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		rec.Quantity = existing + delta
		if _, err := tx.ExecContext(ctx, `UPDATE outgoing SET Quantity = ? WHERE fd_ID = ?`, rec.Quantity, prior.ID); err != nil {
			return nil, err
		}
	}
	return &rec, nil
}
