package handler // handler contains the donor-tool endpoints

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/laurvh/food-for-you/internal/availability"
	"github.com/laurvh/food-for-you/internal/report"
	"github.com/laurvh/food-for-you/internal/repository"
)

// DonorHandler serves the donor tool: ranking food banks by need within a
// category and neighborhood, annotated with whether each is open right
// now, plus the printable needs report.
type DonorHandler struct {
	FoodBanks *repository.FoodBankRepo
	Hours     *repository.HoursRepo
	Eval      *availability.Evaluator
	ReportDir string
}

// NewDonorHandler constructs a DonorHandler and panics if a dependency is nil.
func NewDonorHandler(foodBanks *repository.FoodBankRepo, hours *repository.HoursRepo, eval *availability.Evaluator, reportDir string) *DonorHandler {
	if foodBanks == nil || hours == nil || eval == nil {
		panic("nil dependency passed to NewDonorHandler")
	}
	return &DonorHandler{FoodBanks: foodBanks, Hours: hours, Eval: eval, ReportDir: reportDir}
}

// needRow is one donor search result: a food bank ranked by how little of
// the chosen category it holds.
type needRow struct {
	FoodBankID uint64 `json:"fb_id"`
	Location   string `json:"location"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Total      int64  `json:"total"`
	Open       string `json:"open,omitempty"`
	Close      string `json:"close,omitempty"`
	OpenNow    bool   `json:"open_now"`
}

// needRows runs the donor aggregate and annotates each food bank with its
// contact details and today's open state.
func (h *DonorHandler) needRows(c echo.Context, neighborhood, category string, now time.Time) ([]needRow, error) {
	ctx := c.Request().Context()
	totals, err := h.Eval.CategoryTotals(ctx, neighborhood, category)
	if err != nil {
		return nil, err
	}
	clock := availability.Clock(now)
	out := make([]needRow, 0, len(totals))
	for _, t := range totals {
		fb, err := h.FoodBanks.GetByID(ctx, t.FoodBankID)
		if err != nil {
			return nil, err
		}
		day, err := h.Hours.HoursOn(ctx, t.FoodBankID, now.Weekday())
		if err != nil {
			return nil, err
		}
		out = append(out, needRow{
			FoodBankID: t.FoodBankID,
			Location:   t.Location,
			Address:    fb.Address,
			Phone:      fb.Phone,
			Total:      t.Total,
			Open:       day.Open,
			Close:      day.Close,
			OpenNow:    availability.OpenAt(day, clock),
		})
	}
	return out, nil
}

// Needs handles GET /v1/donor/needs.  Query parameters: neighborhood,
// category (both optional, empty matches all) and open (restrict to food
// banks open right now).  Results come back least stocked first.
func (h *DonorHandler) Needs(c echo.Context) error {
	rows, err := h.needRows(c,
		strings.TrimSpace(c.QueryParam("neighborhood")),
		strings.TrimSpace(c.QueryParam("category")),
		time.Now())
	if err != nil {
		return writeErr(c, err)
	}
	if queryFlag(c, "open") {
		kept := rows[:0:0]
		for _, r := range rows {
			if r.OpenNow {
				kept = append(kept, r)
			}
		}
		rows = kept
	}
	return c.JSON(http.StatusOK, map[string]any{"items": rows})
}

// Report handles POST /v1/donor/report.  It renders the fixed-width needs
// report, writes it under the configured report directory and returns the
// text along with the file name.
func (h *DonorHandler) Report(c echo.Context) error {
	var body struct {
		Neighborhood string `json:"neighborhood"`
		Category     string `json:"category"`
		OpenOnly     bool   `json:"open_only"`
		ShowAddress  bool   `json:"show_address"`
		ShowHours    bool   `json:"show_hours"`
		ShowPhone    bool   `json:"show_phone"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	now := time.Now()
	rows, err := h.needRows(c, strings.TrimSpace(body.Neighborhood), strings.TrimSpace(body.Category), now)
	if err != nil {
		return writeErr(c, err)
	}

	rep := report.DonorReport{
		Neighborhood: displayLabel(body.Neighborhood, "All Locations"),
		Category:     displayLabel(body.Category, "All Categories"),
		OpenOnly:     body.OpenOnly,
		ShowAddress:  body.ShowAddress,
		ShowHours:    body.ShowHours,
		ShowPhone:    body.ShowPhone,
	}
	for _, r := range rows {
		rep.Rows = append(rep.Rows, report.DonorRow{
			Location: r.Location,
			Address:  r.Address,
			Phone:    r.Phone,
			Hours:    dayHoursOf(r.Open, r.Close),
			OpenNow:  r.OpenNow,
		})
	}

	text := rep.Render()
	name := rep.Filename()
	if err := writeReportFile(h.ReportDir, name, text); err != nil {
		logrus.WithError(err).Warn("could not write donor report file")
	}
	return c.JSON(http.StatusOK, map[string]any{"filename": name, "report": text})
}

// displayLabel substitutes the all-selected label when a filter is empty.
func displayLabel(v, all string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return all
	}
	return v
}

// writeReportFile persists a rendered report under dir, creating the
// directory on first use.
func writeReportFile(dir, name, text string) error {
	if dir == "" {
		dir = "reports"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644)
}
