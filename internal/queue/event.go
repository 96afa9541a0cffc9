// Package queue defines message payloads exchanged over the message broker.
package queue

// OutgoingRecordedEvent is published when a staff quantity decrease is
// booked into the outgoing ledger.  It carries enough information for
// downstream consumers to log or report distributions without querying
// the primary database.
type OutgoingRecordedEvent struct {
	FoodItemID    uint64 `json:"fd_id"`
	ItemName      string `json:"item_name"`
	Category      string `json:"category"`
	Units         string `json:"units"`
	Location      string `json:"location"`
	FoodBankID    uint64 `json:"fb_id"`
	Removed       int64  `json:"removed"`
	TotalOutgoing int64  `json:"total_outgoing"`
	RecordedAt    string `json:"recorded_at"`
}
