package report

import (
	"strings"
	"testing"

	"github.com/laurvh/food-for-you/internal/model"
)

func donorFixture() DonorReport {
	return DonorReport{
		Neighborhood: "Whiteaker",
		Category:     "Grain",
		Rows: []DonorRow{
			{Location: "River Pantry", Address: "12 Bridge St", Phone: "(541) 555-0101",
				Hours: model.DayHours{Open: "09:00:00", Close: "17:00:00"}, OpenNow: true},
			{Location: "Park Pantry", Address: "88 Park Row", Phone: "(541) 555-0103",
				Hours: model.DayHours{}, OpenNow: false},
		},
	}
}

func TestDonorFilename(t *testing.T) {
	r := donorFixture()
	if got := r.Filename(); got != "FoodNeedsAtWhiteakerForGrain.txt" {
		t.Fatalf("filename = %q", got)
	}
	r.Neighborhood = "All Locations"
	r.Category = "Canned Goods"
	if got := r.Filename(); got != "FoodNeedsAtAllLocationsForCannedGoods.txt" {
		t.Fatalf("filename = %q, want spaces stripped", got)
	}
}

func TestDonorRenderColumns(t *testing.T) {
	r := donorFixture()
	r.ShowAddress = true
	r.ShowHours = true
	r.ShowPhone = true

	out := r.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "Results for Food Banks in Whiteaker in Need of Grain" {
		t.Fatalf("title = %q", lines[0])
	}
	header := lines[1]
	for _, col := range []string{"Name", "Address", "Hours", "Phone #"} {
		if !strings.Contains(header, col) {
			t.Fatalf("header %q missing column %q", header, col)
		}
	}
	// Ranking order is preserved: River Pantry first.
	if !strings.HasPrefix(lines[2], "River Pantry") {
		t.Fatalf("first row = %q", lines[2])
	}
	if !strings.Contains(lines[2], "09:00:00 - 17:00:00") {
		t.Fatalf("open row = %q, want hours range", lines[2])
	}
	if !strings.Contains(lines[3], "Closed Today") {
		t.Fatalf("closed row = %q", lines[3])
	}
}

func TestDonorRenderHidesUnselectedColumns(t *testing.T) {
	r := donorFixture()
	out := r.Render()
	if strings.Contains(out, "12 Bridge St") || strings.Contains(out, "(541) 555-0101") {
		t.Fatalf("render leaked hidden columns:\n%s", out)
	}
}

func TestDonorRenderOpenOnly(t *testing.T) {
	r := donorFixture()
	r.OpenOnly = true
	out := r.Render()
	if !strings.Contains(out, "showing those open now") {
		t.Fatalf("missing open-now note:\n%s", out)
	}
	if strings.Contains(out, "Park Pantry") {
		t.Fatalf("closed location still listed:\n%s", out)
	}
	if !strings.Contains(out, "River Pantry") {
		t.Fatalf("open location dropped:\n%s", out)
	}
}

func TestDonorRenderNoResults(t *testing.T) {
	r := donorFixture()
	r.Rows = nil
	if out := r.Render(); !strings.Contains(out, "No Results") {
		t.Fatalf("out = %q", out)
	}

	// OpenOnly filtering everything away is also a no-results render.
	r = donorFixture()
	r.OpenOnly = true
	r.Rows[0].OpenNow = false
	if out := r.Render(); !strings.Contains(out, "No Results") {
		t.Fatalf("out = %q", out)
	}
}
