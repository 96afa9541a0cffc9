package handler // handler contains the admin-tool endpoints

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/laurvh/food-for-you/internal/bulk"
	"github.com/laurvh/food-for-you/internal/model"
	"github.com/laurvh/food-for-you/internal/repository"
)

// AdminHandler bundles the repositories backing the administrator tool:
// food bank creation, bulk CSV import, the outgoing data log and its
// CSV export.
type AdminHandler struct {
	FoodBanks *repository.FoodBankRepo
	Outgoing  *repository.OutgoingRepo
}

// NewAdminHandler constructs an AdminHandler and panics if a dependency is nil.
func NewAdminHandler(foodBanks *repository.FoodBankRepo, outgoing *repository.OutgoingRepo) *AdminHandler {
	if foodBanks == nil || outgoing == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{FoodBanks: foodBanks, Outgoing: outgoing}
}

// dayPayload is one day's opening hours in a creation request.  Empty
// strings mean closed; "00:00:00" for both ends means always open.
type dayPayload struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// createFoodBankPayload is the JSON body for POST /v1/admin/food-banks.
// Hours are Monday-first and must cover all seven days.
type createFoodBankPayload struct {
	Location     string        `json:"location"`
	Address      string        `json:"address"`
	Neighborhood string        `json:"neighborhood"`
	Phone        string        `json:"phone"`
	Hours        []dayPayload  `json:"hours"`
	Items        []itemPayload `json:"items"`
}

// itemPayload is one inline inventory row accepted at creation time.
type itemPayload struct {
	Item     string `json:"item"`
	Category string `json:"category"`
	Quantity int64  `json:"quantity"`
	Units    string `json:"units"`
}

// CreateFoodBank handles POST /v1/admin/food-banks.  It validates and
// inserts the food bank, its weekly hours and any inline starting
// inventory in a single transaction.
func (h *AdminHandler) CreateFoodBank(c echo.Context) error {
	var body createFoodBankPayload
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if len(body.Hours) != len(model.DayNames) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "hours must cover all seven days, Monday first"})
	}

	fb := &model.FoodBank{
		Location:     strings.TrimSpace(body.Location),
		Address:      strings.TrimSpace(body.Address),
		Neighborhood: strings.TrimSpace(body.Neighborhood),
		Phone:        strings.TrimSpace(body.Phone),
	}
	var week model.WeekHours
	for i, d := range body.Hours {
		week.Days[i] = model.DayHours{Open: strings.TrimSpace(d.Open), Close: strings.TrimSpace(d.Close)}
	}
	items := make([]model.ImportItem, 0, len(body.Items))
	for i, it := range body.Items {
		if strings.TrimSpace(it.Item) == "" || strings.TrimSpace(it.Category) == "" || strings.TrimSpace(it.Units) == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("item %d: every field is required", i+1)})
		}
		if it.Quantity < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("item %d: quantity cannot be negative", i+1)})
		}
		items = append(items, model.ImportItem{Name: it.Item, Category: it.Category, Quantity: it.Quantity, Units: it.Units})
	}

	if err := h.FoodBanks.Create(c.Request().Context(), fb, &week, items); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"fb_id":    fb.ID,
		"location": fb.Location,
		"hours":    week.Days,
		"imported": len(items),
	})
}

// ImportItems handles POST /v1/admin/food-banks/:location/import.  The
// request carries a CSV file under the "file" form field.  The file is
// validated in full before anything is written; one bad row rejects the
// batch with its row number.
func (h *AdminHandler) ImportItems(c echo.Context) error {
	location := strings.TrimSpace(c.Param("location"))
	if location == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "location is required"})
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "a CSV file is required under the \"file\" field"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "could not read uploaded file"})
	}
	defer f.Close()

	items, err := bulk.ParseImport(f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := h.FoodBanks.Import(c.Request().Context(), location, items); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"location": location, "imported": len(items)})
}

// SearchOutgoing handles GET /v1/admin/outgoing and runs the shared
// filter engine against the outgoing data log.  Query parameters: item
// (partial name), location (partial), id (exact fd_ID), ascending
// (order by quantity).
func (h *AdminHandler) SearchOutgoing(c echo.Context) error {
	q := repository.ItemSearchQuery{
		Name:         strings.TrimSpace(c.QueryParam("item")),
		Location:     strings.TrimSpace(c.QueryParam("location")),
		AscendingQty: queryFlag(c, "ascending"),
	}
	if raw := strings.TrimSpace(c.QueryParam("id")); raw != "" {
		for _, r := range raw {
			if r < '0' || r > '9' {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "id must be numeric"})
			}
		}
		q.ID = raw
	}
	rows, err := h.Outgoing.Search(c.Request().Context(), q)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": rows})
}

// ExportOutgoing handles GET /v1/admin/outgoing/export and streams the
// complete outgoing table as a CSV attachment named after the current
// wall-clock time.
func (h *AdminHandler) ExportOutgoing(c echo.Context) error {
	recs, err := h.Outgoing.All(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	name := bulk.ExportFilename(time.Now())
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().WriteHeader(http.StatusOK)
	return bulk.WriteOutgoing(c.Response(), recs)
}
