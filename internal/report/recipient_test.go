package report

import (
	"strings"
	"testing"
)

func recipientFixture() RecipientReport {
	return RecipientReport{
		Food:         "Rice",
		Neighborhood: "Whiteaker",
		Rows: []RecipientRow{
			{Item: "Rice", Location: "River Pantry", Address: "12 Bridge St", Phone: "(541) 555-0101",
				Status: "Available", Open: "09:00:00", Close: "17:00:00", OpenNow: true},
			{Item: "Rice", Location: "Hill Pantry", Address: "3 Summit Ave", Phone: "(541) 555-0102",
				Status: "Low Stock", OpenNow: false},
			{Item: "Rice", Location: "Park Pantry", Address: "88 Park Row", Phone: "(541) 555-0103",
				Status: "Unavailable", OpenNow: true},
		},
	}
}

func TestRecipientFilename(t *testing.T) {
	r := recipientFixture()
	if got := r.Filename(); got != "RiceAvailabilityAtWhiteaker.txt" {
		t.Fatalf("filename = %q", got)
	}
	r.Food = "Canned Soup"
	r.Neighborhood = "All Neighborhoods"
	if got := r.Filename(); got != "CannedSoupAvailabilityAtAllNeighborhoods.txt" {
		t.Fatalf("filename = %q, want spaces stripped", got)
	}
}

func TestRecipientRenderSkipsUnavailable(t *testing.T) {
	out := recipientFixture().Render()
	if strings.Contains(out, "Park Pantry") {
		t.Fatalf("unavailable row rendered:\n%s", out)
	}
	if !strings.Contains(out, "River Pantry") || !strings.Contains(out, "Hill Pantry") {
		t.Fatalf("stocked rows missing:\n%s", out)
	}
}

func TestRecipientRenderPreambleAndSeparator(t *testing.T) {
	out := recipientFixture().Render()
	lines := strings.Split(out, "\n")
	if lines[0] != "Entries are listed in Descending order by Quantity." {
		t.Fatalf("line 1 = %q", lines[0])
	}
	if !strings.Contains(lines[2], "Low Stock have 20 units or less") {
		t.Fatalf("line 3 = %q", lines[2])
	}
	// A dashed separator sits between the header and the data rows.
	if !strings.HasPrefix(lines[4], "----") {
		t.Fatalf("separator = %q", lines[4])
	}
}

func TestRecipientRenderHoursColumn(t *testing.T) {
	r := recipientFixture()
	r.ShowHours = true
	out := r.Render()
	if !strings.Contains(out, "Open Now") {
		t.Fatalf("open row missing Open Now:\n%s", out)
	}
	if !strings.Contains(out, "Closed") {
		t.Fatalf("closed row missing Closed:\n%s", out)
	}
	if !strings.Contains(out, "09:00:00") || !strings.Contains(out, "17:00:00") {
		t.Fatalf("hours columns missing:\n%s", out)
	}
}

func TestRecipientRenderOpenOnly(t *testing.T) {
	r := recipientFixture()
	r.OpenOnly = true
	out := r.Render()
	if strings.Contains(out, "Hill Pantry") {
		t.Fatalf("closed location rendered:\n%s", out)
	}
}

func TestRecipientRenderNotAvailableMessage(t *testing.T) {
	r := recipientFixture()
	r.Rows = r.Rows[2:3] // only the unavailable row
	out := r.Render()
	if !strings.Contains(out, "Rice is not available at the food banks located in Whiteaker") {
		t.Fatalf("out = %q", out)
	}
}
