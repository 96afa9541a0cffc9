package handler // handler contains the staff inventory endpoints

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/laurvh/food-for-you/internal/model"
	"github.com/laurvh/food-for-you/internal/queue"
	"github.com/laurvh/food-for-you/internal/repository"
	queue_publisher "github.com/laurvh/food-for-you/internal/service"
)

// StaffHandler bundles the repositories behind the staff inventory tool:
// search plus the four reconciliation operations (insert, update, move,
// delete).
type StaffHandler struct {
	Items *repository.ItemRepo
}

// NewStaffHandler constructs a StaffHandler and panics if the repo is nil.
func NewStaffHandler(items *repository.ItemRepo) *StaffHandler {
	if items == nil {
		panic("nil repository passed to NewStaffHandler")
	}
	return &StaffHandler{Items: items}
}

// SearchItems handles GET /v1/staff/items.  Query parameters: item
// (partial name), location (partial), id (exact fd_ID), ascending
// (order by quantity ascending).
func (h *StaffHandler) SearchItems(c echo.Context) error {
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
	rows, err := h.Items.Search(c.Request().Context(), q)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": rows})
}

// InsertItem handles POST /v1/staff/items and creates a new inventory row
// at the named location with a freshly allocated fd_ID.
func (h *StaffHandler) InsertItem(c echo.Context) error {
	var body struct {
		Item     string `json:"item"`
		Category string `json:"category"`
		Quantity int64  `json:"quantity"`
		Units    string `json:"units"`
		Location string `json:"location"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	item := &model.FoodItem{
		Name:     strings.TrimSpace(body.Item),
		Category: strings.TrimSpace(body.Category),
		Quantity: body.Quantity,
		Units:    strings.TrimSpace(body.Units),
		Location: strings.TrimSpace(body.Location),
	}
	if err := h.Items.Insert(c.Request().Context(), item); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /v1/staff/items/:id.  A quantity drop is a
// distribution: the difference lands in the outgoing ledger and an
// outgoing.recorded event is published for the data log consumer.
func (h *StaffHandler) UpdateItem(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body struct {
		Item     string `json:"item"`
		Quantity int64  `json:"quantity"`
		Units    string `json:"units"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Item)
	units := strings.TrimSpace(body.Units)
	if name == "" || units == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "item and units are required"})
	}

	rec, removed, err := h.Items.Update(c.Request().Context(), id, name, body.Quantity, units)
	if err != nil {
		return writeErr(c, err)
	}
	if rec != nil {
		go publishOutgoing(rec, removed)
	}
	resp := map[string]any{"fd_id": id, "item": name, "quantity": body.Quantity, "units": units}
	if rec != nil {
		resp["outgoing_total"] = rec.Quantity
	}
	return c.JSON(http.StatusOK, resp)
}

// MoveItem handles POST /v1/staff/items/:id/move and transfers part of a
// row's quantity to another food bank.
func (h *StaffHandler) MoveItem(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body struct {
		Quantity    int64  `json:"quantity"`
		Destination string `json:"destination"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	moved, created, err := h.Items.Move(c.Request().Context(), id, body.Quantity, strings.TrimSpace(body.Destination))
	if err != nil {
		return writeErr(c, err)
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, moved)
}

// DeleteItem handles DELETE /v1/staff/items/:id.  Deletion is
// unconditional and idempotent: a missing id still returns 204.
func (h *StaffHandler) DeleteItem(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.Items.Delete(c.Request().Context(), id); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// publishOutgoing fires the outgoing.recorded event for a ledger write.
// It runs in its own goroutine with a fresh context: the mutation has
// already committed, so a broker failure is logged and otherwise ignored.
func publishOutgoing(rec *model.OutgoingRecord, removed int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ev := queue.OutgoingRecordedEvent{
		FoodItemID:    rec.FoodItemID,
		ItemName:      rec.Name,
		Category:      rec.Category,
		Units:         rec.Units,
		Location:      rec.Location,
		FoodBankID:    rec.FoodBankID,
		Removed:       removed,
		TotalOutgoing: rec.Quantity,
		RecordedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := queue_publisher.PublishOutgoingRecorded(ctx, ev); err != nil {
		logrus.WithError(err).Warn("failed to publish outgoing.recorded event")
	}
}
