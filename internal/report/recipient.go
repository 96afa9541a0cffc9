package report

import (
	"fmt"
	"strings"
)

// RecipientRow is one availability row in a recipient report.  Status is
// the stock label from the store query (Unavailable / Low Stock /
// Available); Open and Close hold today's hours or "Closed".
type RecipientRow struct {
	Item     string
	Location string
	Address  string
	Phone    string
	Status   string
	Open     string
	Close    string
	OpenNow  bool
}

// RecipientReport describes a recipient search result ready for
// rendering.  Food and Neighborhood carry the display labels of the
// active selections ("All Food", "All Neighborhoods" when unfiltered).
type RecipientReport struct {
	Food         string
	Neighborhood string
	OpenOnly     bool
	ShowAddress  bool
	ShowPhone    bool
	ShowHours    bool
	Rows         []RecipientRow
}

// Filename derives the report file name from the filter selections, e.g.
// RiceAvailabilityAtWhiteaker.txt.
func (r RecipientReport) Filename() string {
	return fmt.Sprintf("%sAvailabilityAt%s.txt", stripSpaces(r.Food), stripSpaces(r.Neighborhood))
}

// Render produces the fixed-width report text.  Rows arrive descending by
// quantity; unavailable rows are never printed, and when OpenOnly is set
// only food banks open right now remain.
func (r RecipientReport) Render() string {
	var b strings.Builder
	b.WriteString("Entries are listed in Descending order by Quantity.\n")
	b.WriteString("Entries at the top of the table have the greatest availability.\n")
	b.WriteString("Entries marked as Low Stock have 20 units or less available.\n")

	headers := []string{"Item", "Location", "Status"}
	if r.ShowAddress {
		headers = append(headers, "Address")
	}
	if r.ShowPhone {
		headers = append(headers, "Phone Number")
	}
	if r.ShowHours {
		headers = append(headers, "Open", "Close")
	}
	headers = append(headers, "Hours")

	cells := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		if row.Status == "Unavailable" {
			continue
		}
		if r.OpenOnly && !row.OpenNow {
			continue
		}
		hours := "Closed"
		if row.OpenNow {
			hours = "Open Now"
		}
		line := []string{row.Item, row.Location, row.Status}
		if r.ShowAddress {
			line = append(line, row.Address)
		}
		if r.ShowPhone {
			line = append(line, row.Phone)
		}
		if r.ShowHours {
			line = append(line, row.Open, row.Close)
		}
		line = append(line, hours)
		cells = append(cells, line)
	}

	if len(cells) == 0 {
		fmt.Fprintf(&b, "%s is not available at the food banks located in %s. "+
			"Please either select a different food item or neighborhood. Thank you!\n",
			r.Food, r.Neighborhood)
		return b.String()
	}

	widths := colWidths(headers, cells)
	total := 0
	for _, w := range widths {
		total += w
	}
	writeRow(&b, widths, headers)
	b.WriteString(strings.Repeat("-", total))
	b.WriteByte('\n')
	for _, line := range cells {
		writeRow(&b, widths, line)
	}
	return b.String()
}
