package bulk

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/laurvh/food-for-you/internal/model"
)

// exportHeader is the column order of the outgoing ledger export.
var exportHeader = []string{"Item_name", "Category", "Quantity", "Units", "Location", "fb_ID", "fd_ID"}

// ExportFilename derives the export file name from the time of export,
// e.g. FoodForYou_Export_142301.csv.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("FoodForYou_Export_%02d%02d%02d.csv", now.Hour(), now.Minute(), now.Second())
}

// WriteOutgoing writes the complete outgoing ledger as comma-delimited
// text with a header row.
func WriteOutgoing(w io.Writer, recs []model.OutgoingRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, rec := range recs {
		row := []string{
			rec.Name,
			rec.Category,
			strconv.FormatInt(rec.Quantity, 10),
			rec.Units,
			rec.Location,
			strconv.FormatUint(rec.FoodBankID, 10),
			strconv.FormatUint(rec.FoodItemID, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
