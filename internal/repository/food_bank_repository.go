// This file defines the FoodBankRepo: catalog lookups over the food_bank
// table and the admin-side creation flow.  Creating a food bank is the one
// multi-table write in the admin tool: it inserts the food_bank row, its
// hours row and an optional bulk-imported batch of food items inside a
// single transaction so a rejected import leaves nothing behind.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/laurvh/food-for-you/internal/model"
)

// FoodBankRepo encapsulates all database queries related to food banks.
// It depends on a sql.DB connection which should be configured elsewhere.
type FoodBankRepo struct {
	db *sql.DB
}

// NewFoodBankRepo constructs a FoodBankRepo with the provided DB handle.
// This function allows dependency injection of the database in tests and
// at startup.
func NewFoodBankRepo(db *sql.DB) *FoodBankRepo {
	return &FoodBankRepo{db: db}
}

// ListLocations returns every food bank location in ascending order with a
// leading empty sentinel, ready for dropdown use where the first entry
// means "unselected".
func (r *FoodBankRepo) ListLocations(ctx context.Context) ([]string, error) {
	const q = `SELECT fb.Location FROM food_bank fb ORDER BY fb.Location ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{""}
	for rows.Next() {
		var loc string
		if err := rows.Scan(&loc); err != nil {
			return nil, err
		}
		out = append(out, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListNeighborhoods returns the distinct neighborhoods containing a food
// bank, ascending.  Used by the donor and recipient search dropdowns.
func (r *FoodBankRepo) ListNeighborhoods(ctx context.Context) ([]string, error) {
	const q = `SELECT DISTINCT fb.Neighborhood FROM food_bank fb ORDER BY fb.Neighborhood`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByLocation fetches a food bank by its unique location name.  It
// returns ErrFoodBankNotFound if no row matches.
func (r *FoodBankRepo) GetByLocation(ctx context.Context, location string) (*model.FoodBank, error) {
	const q = `SELECT fb.fb_ID, fb.Location, fb.Address, fb.Neighborhood, fb.Phone_number
	           FROM food_bank fb WHERE fb.Location = ?`
	var b model.FoodBank
	if err := r.db.QueryRowContext(ctx, q, location).Scan(&b.ID, &b.Location, &b.Address, &b.Neighborhood, &b.Phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFoodBankNotFound
		}
		return nil, err
	}
	return &b, nil
}

// GetByID fetches a food bank by id.  It returns ErrFoodBankNotFound if no
// row is found.  Donor results are annotated with this record's address
// and phone number.
func (r *FoodBankRepo) GetByID(ctx context.Context, id uint64) (*model.FoodBank, error) {
	const q = `SELECT fb.fb_ID, fb.Location, fb.Address, fb.Neighborhood, fb.Phone_number
	           FROM food_bank fb WHERE fb.fb_ID = ?`
	var b model.FoodBank
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Location, &b.Address, &b.Neighborhood, &b.Phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFoodBankNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Create inserts a new food bank together with its weekly hours and an
// optional batch of imported food items.  The week is normalized first
// (equal open/close pairs collapse to the closed sentinel) and must keep
// at least one open day.  Duplicate names or street addresses are
// rejected.  On success the food bank's ID field is populated with the
// freshly allocated fb_ID.
func (r *FoodBankRepo) Create(ctx context.Context, fb *model.FoodBank, week *model.WeekHours, items []model.ImportItem) (err error) {
	if strings.TrimSpace(fb.Location) == "" {
		return fmt.Errorf("%w: food bank name is required", ErrValidation)
	}
	if strings.TrimSpace(fb.Address) == "" {
		return fmt.Errorf("%w: street address is required", ErrValidation)
	}
	if strings.TrimSpace(fb.Neighborhood) == "" {
		return fmt.Errorf("%w: neighborhood is required", ErrValidation)
	}
	if !model.ValidPhone(fb.Phone) {
		return fmt.Errorf("%w: phone number must be formatted as (XXX) XXX-XXXX", ErrValidation)
	}
	if err := week.Normalize(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !week.AnyOpen() {
		return fmt.Errorf("%w: a food bank must have at least one open day", ErrValidation)
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

	// Reject name and address collisions before allocating an id.
	var existing uint64
	err = tx.QueryRowContext(ctx, `SELECT fb_ID FROM food_bank WHERE Location = ?`, fb.Location).Scan(&existing)
	if err == nil {
		err = fmt.Errorf("%w: name %q is taken", ErrDuplicateFoodBank, fb.Location)
		return err
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	err = tx.QueryRowContext(ctx, `SELECT fb_ID FROM food_bank WHERE Address = ?`, fb.Address).Scan(&existing)
	if err == nil {
		err = fmt.Errorf("%w: address %q is taken", ErrDuplicateFoodBank, fb.Address)
		return err
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	fb.ID, err = nextID(ctx, tx, `SELECT MAX(fb_ID) FROM food_bank`)
	if err != nil {
		return err
	}

	const insBank = `INSERT INTO food_bank (Location, Address, Neighborhood, Phone_number, fb_ID)
	                 VALUES (?, ?, ?, ?, ?)`
	if _, err = tx.ExecContext(ctx, insBank, fb.Location, fb.Address, fb.Neighborhood, fb.Phone, fb.ID); err != nil {
		return err
	}

	const insHours = `INSERT INTO hours (fb_ID,
	                  Monday, Monday_close, Tuesday, Tuesday_close,
	                  Wednesday, Wednesday_close, Thursday, Thursday_close,
	                  Friday, Friday_close, Saturday, Saturday_close,
	                  Sunday, Sunday_close)
	                  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	args := make([]any, 0, 15)
	args = append(args, fb.ID)
	for _, d := range week.Days {
		args = append(args, d.Open, d.Close)
	}
	if _, err = tx.ExecContext(ctx, insHours, args...); err != nil {
		return err
	}
	week.FoodBankID = fb.ID

	if len(items) > 0 {
		err = importItemsTx(ctx, tx, fb, items)
	}
	return err
}

// Import applies a validated bulk-import batch to an existing food bank
// identified by its location name.  Batch semantics match the import that
// runs during creation: duplicate tuples merge their quantity onto the
// existing row, new tuples are inserted with fresh ids.
func (r *FoodBankRepo) Import(ctx context.Context, location string, items []model.ImportItem) (err error) {
	fb, err := r.GetByLocation(ctx, location)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
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

	err = importItemsTx(ctx, tx, fb, items)
	return err
}

// importItemsTx applies a validated bulk-import batch to the food_item
// table for a freshly created food bank.  Rows whose (name, category,
// units, location) tuple already exists are merged by accumulating the
// quantity on the existing fd_ID; new tuples each get the next free id.
func importItemsTx(ctx context.Context, tx *sql.Tx, fb *model.FoodBank, items []model.ImportItem) error {
	next, err := nextID(ctx, tx, `SELECT MAX(fd_ID) FROM food_item`)
	if err != nil {
		return err
	}

	const dupQ = `SELECT fd_ID, Quantity FROM food_item
	              WHERE Item_name = ? AND Units = ? AND Category = ? AND Location = ?`
	const insQ = `INSERT INTO food_item (Item_name, Category, Quantity, Units, Location, fb_ID, fd_ID)
	              VALUES (?, ?, ?, ?, ?, ?, ?)`
	const mergeQ = `UPDATE food_item SET Quantity = ? WHERE fd_ID = ?`

	for _, it := range items {
		var dupID uint64
		var dupQty int64
		err := tx.QueryRowContext(ctx, dupQ, it.Name, it.Units, it.Category, fb.Location).Scan(&dupID, &dupQty)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			if _, err := tx.ExecContext(ctx, insQ, it.Name, it.Category, it.Quantity, it.Units, fb.Location, fb.ID, next); err != nil {
				return err
			}
			next++
		case err != nil:
			return err
		default:
			if _, err := tx.ExecContext(ctx, mergeQ, dupQty+it.Quantity, dupID); err != nil {
				return err
			}
		}
	}
	return nil
}

// nextID runs a MAX(id) query inside tx and returns max+1, or 1 when the
// table is empty.  Identifiers are allocated this way for both food banks
// and food items and are never reused.
func nextID(ctx context.Context, tx *sql.Tx, query string) (uint64, error) {
	var max sql.NullInt64
	if err := tx.QueryRowContext(ctx, query).Scan(&max); err != nil {
		return 0, err
	}
	if !max.Valid {
		return 1, nil
	}
	return uint64(max.Int64) + 1, nil
}
