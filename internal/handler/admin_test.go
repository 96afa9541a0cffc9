package handler_test

import (
	"bytes"
	"database/sql"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/laurvh/food-for-you/internal/handler"
	"github.com/laurvh/food-for-you/internal/repository"
	"github.com/laurvh/food-for-you/internal/router"
)

func newAdminServer(t *testing.T) (*echo.Echo, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	stmts := []string{
		`CREATE TABLE food_bank (Location TEXT, Address TEXT, Neighborhood TEXT, Phone_number TEXT, fb_ID INTEGER)`,
		`CREATE TABLE hours (fb_ID INTEGER,
			Monday TEXT, Monday_close TEXT, Tuesday TEXT, Tuesday_close TEXT,
			Wednesday TEXT, Wednesday_close TEXT, Thursday TEXT, Thursday_close TEXT,
			Friday TEXT, Friday_close TEXT, Saturday TEXT, Saturday_close TEXT,
			Sunday TEXT, Sunday_close TEXT)`,
		`CREATE TABLE food_item (Item_name TEXT, Category TEXT, Quantity INTEGER, Units TEXT, Location TEXT, fb_ID INTEGER, fd_ID INTEGER)`,
		`CREATE TABLE outgoing (Item_name TEXT, Category TEXT, Quantity INTEGER, Units TEXT, Location TEXT, fb_ID INTEGER, fd_ID INTEGER)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("schema: %v", err)
		}
	}

	e := echo.New()
	router.RegisterAdmin(e, handler.NewAdminHandler(repository.NewFoodBankRepo(db), repository.NewOutgoingRepo(db)))
	return e, db
}

const createBankBody = `{
	"location": "River Pantry",
	"address": "12 Bridge St",
	"neighborhood": "Whiteaker",
	"phone": "(541) 555-0101",
	"hours": [
		{"open": "09:00:00", "close": "17:00:00"},
		{"open": "", "close": ""},
		{"open": "", "close": ""},
		{"open": "", "close": ""},
		{"open": "", "close": ""},
		{"open": "", "close": ""},
		{"open": "", "close": ""}
	],
	"items": [{"item": "Rice", "category": "Grain", "quantity": 50, "units": "lbs"}]
}`

func TestAdminCreateFoodBank(t *testing.T) {
	e, db := newAdminServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/admin/food-banks", createBankBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM hours WHERE fb_ID = 1`).Scan(&n); err != nil {
		t.Fatalf("count hours: %v", err)
	}
	if n != 1 {
		t.Fatal("hours row missing")
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM food_item WHERE fb_ID = 1`).Scan(&n); err != nil {
		t.Fatalf("count items: %v", err)
	}
	if n != 1 {
		t.Fatal("starting inventory missing")
	}

	// The same name again is a conflict.
	rec = doJSON(e, http.MethodPost, "/v1/admin/food-banks", createBankBody)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want 409", rec.Code)
	}
}

func TestAdminCreateFoodBankBadHours(t *testing.T) {
	e, _ := newAdminServer(t)
	body := `{"location":"X","address":"Y","neighborhood":"Z","phone":"(541) 555-0101","hours":[{"open":"","close":""}]}`
	rec := doJSON(e, http.MethodPost, "/v1/admin/food-banks", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for a short hours list", rec.Code)
	}
}

func postCSV(t *testing.T, e *echo.Echo, path, csvBody string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "import.csv")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write([]byte(csvBody)); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAdminImportCSV(t *testing.T) {
	e, db := newAdminServer(t)
	if rec := doJSON(e, http.MethodPost, "/v1/admin/food-banks", createBankBody); rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body)
	}

	rec := postCSV(t, e, "/v1/admin/food-banks/River%20Pantry/import",
		"item,category,quantity,units\nRice,Grain,25,lbs\nBeans,Legume,10,cans\n")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}

	var qty int64
	if err := db.QueryRow(`SELECT Quantity FROM food_item WHERE Item_name = 'Rice'`).Scan(&qty); err != nil {
		t.Fatalf("read rice: %v", err)
	}
	if qty != 75 {
		t.Fatalf("rice quantity = %d, want merged 75", qty)
	}

	// A bad batch is rejected whole with a row number.
	rec = postCSV(t, e, "/v1/admin/food-banks/River%20Pantry/import",
		"item,category,quantity,units\nOats,Grain,5,lbs\nCorn,Vegetable,ten,cans\n")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad batch status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "row 3") {
		t.Fatalf("body = %s, want row 3 mentioned", rec.Body)
	}
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM food_item WHERE Item_name = 'Oats'`).Scan(&n); err != nil {
		t.Fatalf("count oats: %v", err)
	}
	if n != 0 {
		t.Fatal("rejected batch partially applied")
	}
}

func TestAdminImportUnknownLocation(t *testing.T) {
	e, _ := newAdminServer(t)
	rec := postCSV(t, e, "/v1/admin/food-banks/Nowhere/import",
		"item,category,quantity,units\nRice,Grain,5,lbs\n")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestAdminExportOutgoing(t *testing.T) {
	e, db := newAdminServer(t)
	if _, err := db.Exec(`INSERT INTO outgoing VALUES ('Rice', 'Grain', 40, 'lbs', 'River Pantry', 1, 3)`); err != nil {
		t.Fatalf("seed outgoing: %v", err)
	}

	rec := doJSON(e, http.MethodGet, "/v1/admin/outgoing/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(got, "FoodForYou_Export_") {
		t.Fatalf("disposition = %q", got)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "Item_name,Category,Quantity,Units,Location,fb_ID,fd_ID\n") {
		t.Fatalf("body = %q", body)
	}
	if !strings.Contains(body, "Rice,Grain,40,lbs,River Pantry,1,3") {
		t.Fatalf("body = %q", body)
	}
}
