package repository

import (
	"context"
	"database/sql"
	"strings"
)

// ItemSearchQuery defines the filters for searching item rows.  Absent
// filters are wildcards: an empty value matches every row.  ID must
// contain a decimal integer when set; the surrounding tool rejects
// non-numeric input before a search is issued.
type ItemSearchQuery struct {
	Name         string
	ID           string
	Location     string
	AscendingQty bool
}

// ItemRow is one row of a staff, admin or data-log table view.
type ItemRow struct {
	Name     string `json:"item"`
	Quantity int64  `json:"quantity"`
	Units    string `json:"units"`
	ID       uint64 `json:"fd_id"`
	Location string `json:"location"`
}

// searchRows builds and runs the filtered item query against the given
// table, which must be one of the food_item or outgoing literals.  The
// same engine backs the staff table, the admin food bank view and the
// admin data log; only the table differs.  When ascending sort is not
// requested the rows come back in store-native order.
func searchRows(ctx context.Context, db *sql.DB, table string, q ItemSearchQuery) ([]ItemRow, error) {
	where := []string{}
	args := []any{}

	if q.Name != "" {
		where = append(where, "fi.Item_name LIKE ?")
		args = append(args, q.Name)
	}
	if q.Location != "" {
		where = append(where, "fb.Location LIKE ?")
		args = append(args, q.Location)
	}
	if q.ID != "" {
		where = append(where, "fi.fd_ID = ?")
		args = append(args, q.ID)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	query := `SELECT fi.Item_name, fi.Quantity, fi.Units, fi.fd_ID, fb.Location
		FROM ` + table + ` fi
		JOIN food_bank fb USING(fb_ID)
		WHERE ` + cond
	if q.AscendingQty {
		query += ` ORDER BY fi.Quantity ASC`
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ItemRow{}
	for rows.Next() {
		var r ItemRow
		if err := rows.Scan(&r.Name, &r.Quantity, &r.Units, &r.ID, &r.Location); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
