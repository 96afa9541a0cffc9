package report

import (
	"fmt"
	"strings"

	"github.com/laurvh/food-for-you/internal/model"
)

// DonorRow is one food bank in a donor report, already ranked by need.
type DonorRow struct {
	Location string
	Address  string
	Phone    string
	Hours    model.DayHours // today's hours
	OpenNow  bool
}

// DonorReport describes a donor search result ready for rendering.
// Neighborhood and Category carry the display labels of the active
// selections ("All Locations", "All Categories" when unfiltered).
type DonorReport struct {
	Neighborhood string
	Category     string
	OpenOnly     bool
	ShowAddress  bool
	ShowHours    bool
	ShowPhone    bool
	Rows         []DonorRow
}

// Filename derives the report file name from the filter selections, e.g.
// FoodNeedsAtWhiteakerForGrain.txt.
func (r DonorReport) Filename() string {
	return fmt.Sprintf("FoodNeedsAt%sFor%s.txt", stripSpaces(r.Neighborhood), stripSpaces(r.Category))
}

// Render produces the fixed-width report text.  Food banks are listed in
// ranking order (least stocked first); when OpenOnly is set, closed food
// banks are dropped entirely.
func (r DonorReport) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Results for Food Banks in %s in Need of %s\n", r.Neighborhood, r.Category)
	if r.OpenOnly {
		b.WriteString("showing those open now\n")
	}

	rows := r.Rows
	if r.OpenOnly {
		kept := rows[:0:0]
		for _, row := range rows {
			if row.OpenNow {
				kept = append(kept, row)
			}
		}
		rows = kept
	}
	if len(rows) == 0 {
		b.WriteString("No Results\n")
		return b.String()
	}

	headers := []string{"Name"}
	if r.ShowAddress {
		headers = append(headers, "Address")
	}
	if r.ShowHours {
		headers = append(headers, "Hours")
	}
	if r.ShowPhone {
		headers = append(headers, "Phone #")
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := []string{row.Location}
		if r.ShowAddress {
			line = append(line, row.Address)
		}
		if r.ShowHours {
			if row.Hours.Closed() {
				line = append(line, "Closed Today")
			} else {
				line = append(line, row.Hours.Open+" - "+row.Hours.Close)
			}
		}
		if r.ShowPhone {
			line = append(line, row.Phone)
		}
		cells = append(cells, line)
	}

	widths := colWidths(headers, cells)
	writeRow(&b, widths, headers)
	for _, line := range cells {
		writeRow(&b, widths, line)
	}
	return b.String()
}
