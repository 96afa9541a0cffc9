package bulk

import (
	"strings"
	"testing"
	"time"

	"github.com/laurvh/food-for-you/internal/model"
)

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 3, 4, 14, 23, 1, 0, time.UTC)
	if got := ExportFilename(now); got != "FoodForYou_Export_142301.csv" {
		t.Fatalf("filename = %q", got)
	}
}

func TestWriteOutgoing(t *testing.T) {
	recs := []model.OutgoingRecord{
		{Name: "Rice", Category: "Grain", Quantity: 40, Units: "lbs", Location: "River Pantry", FoodBankID: 1, FoodItemID: 3},
	}
	var b strings.Builder
	if err := WriteOutgoing(&b, recs); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %q", lines)
	}
	if lines[0] != "Item_name,Category,Quantity,Units,Location,fb_ID,fd_ID" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "Rice,Grain,40,lbs,River Pantry,1,3" {
		t.Fatalf("row = %q", lines[1])
	}
}

func TestWriteOutgoingEmptyLedger(t *testing.T) {
	var b strings.Builder
	if err := WriteOutgoing(&b, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := b.String(); got != "Item_name,Category,Quantity,Units,Location,fb_ID,fd_ID\n" {
		t.Fatalf("output = %q, want header only", got)
	}
}
