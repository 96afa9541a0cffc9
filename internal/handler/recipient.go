package handler // handler contains the recipient-tool endpoints

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/laurvh/food-for-you/internal/availability"
	"github.com/laurvh/food-for-you/internal/report"
	"github.com/laurvh/food-for-you/internal/repository"
)

// RecipientHandler serves the recipient tool: finding where a food item
// is in stock, labelled by stock level and annotated with open hours,
// plus the printable availability report.
type RecipientHandler struct {
	Items     *repository.ItemRepo
	FoodBanks *repository.FoodBankRepo
	Hours     *repository.HoursRepo
	Eval      *availability.Evaluator
	ReportDir string
}

// NewRecipientHandler constructs a RecipientHandler and panics if a
// dependency is nil.
func NewRecipientHandler(items *repository.ItemRepo, foodBanks *repository.FoodBankRepo, hours *repository.HoursRepo, eval *availability.Evaluator, reportDir string) *RecipientHandler {
	if items == nil || foodBanks == nil || hours == nil || eval == nil {
		panic("nil dependency passed to NewRecipientHandler")
	}
	return &RecipientHandler{Items: items, FoodBanks: foodBanks, Hours: hours, Eval: eval, ReportDir: reportDir}
}

// stockRow is one recipient search result with today's hours attached.
type stockRow struct {
	Item     string `json:"item"`
	Location string `json:"location"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
	Open     string `json:"open,omitempty"`
	Close    string `json:"close,omitempty"`
	OpenNow  bool   `json:"open_now"`
}

// stockRows runs the availability query and annotates each result with
// today's hours for its food bank.  Locations repeat across items, so
// hours lookups are memoized per location.
func (h *RecipientHandler) stockRows(c echo.Context, item, neighborhood string, now time.Time) ([]stockRow, error) {
	ctx := c.Request().Context()
	raw, err := h.Items.Availability(ctx, item, neighborhood)
	if err != nil {
		return nil, err
	}
	clock := availability.Clock(now)
	type dayState struct {
		open, close string
		openNow     bool
	}
	seen := map[string]dayState{}
	out := make([]stockRow, 0, len(raw))
	for _, r := range raw {
		state, ok := seen[r.Location]
		if !ok {
			fb, err := h.FoodBanks.GetByLocation(ctx, r.Location)
			if err != nil {
				return nil, err
			}
			day, err := h.Hours.HoursOn(ctx, fb.ID, now.Weekday())
			if err != nil {
				return nil, err
			}
			state = dayState{open: day.Open, close: day.Close, openNow: availability.OpenAt(day, clock)}
			seen[r.Location] = state
		}
		out = append(out, stockRow{
			Item:     r.Item,
			Location: r.Location,
			Address:  r.Address,
			Phone:    r.Phone,
			Status:   r.Status,
			Open:     state.open,
			Close:    state.close,
			OpenNow:  state.openNow,
		})
	}
	return out, nil
}

// Availability handles GET /v1/recipient/availability.  Query parameters:
// item (exact name, empty matches all) and neighborhood (exact, empty
// matches all).  Results come back best stocked first.
func (h *RecipientHandler) Availability(c echo.Context) error {
	rows, err := h.stockRows(c,
		strings.TrimSpace(c.QueryParam("item")),
		strings.TrimSpace(c.QueryParam("neighborhood")),
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

// Report handles POST /v1/recipient/report.  It renders the fixed-width
// availability report, writes it under the configured report directory
// and returns the text along with the file name.
func (h *RecipientHandler) Report(c echo.Context) error {
	var body struct {
		Item         string `json:"item"`
		Neighborhood string `json:"neighborhood"`
		OpenOnly     bool   `json:"open_only"`
		ShowAddress  bool   `json:"show_address"`
		ShowPhone    bool   `json:"show_phone"`
		ShowHours    bool   `json:"show_hours"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	rows, err := h.stockRows(c, strings.TrimSpace(body.Item), strings.TrimSpace(body.Neighborhood), time.Now())
	if err != nil {
		return writeErr(c, err)
	}

	rep := report.RecipientReport{
		Food:         displayLabel(body.Item, "All Food"),
		Neighborhood: displayLabel(body.Neighborhood, "All Neighborhoods"),
		OpenOnly:     body.OpenOnly,
		ShowAddress:  body.ShowAddress,
		ShowPhone:    body.ShowPhone,
		ShowHours:    body.ShowHours,
	}
	for _, r := range rows {
		rep.Rows = append(rep.Rows, report.RecipientRow{
			Item:     r.Item,
			Location: r.Location,
			Address:  r.Address,
			Phone:    r.Phone,
			Status:   r.Status,
			Open:     r.Open,
			Close:    r.Close,
			OpenNow:  r.OpenNow,
		})
	}

	text := rep.Render()
	name := rep.Filename()
	if err := writeReportFile(h.ReportDir, name, text); err != nil {
		logrus.WithError(err).Warn("could not write recipient report file")
	}
	return c.JSON(http.StatusOK, map[string]any{"filename": name, "report": text})
}
