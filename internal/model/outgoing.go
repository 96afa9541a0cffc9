package model

// OutgoingRecord is a cumulative-removal ledger entry mirroring a food
// item's identifying tuple.  There is at most one record per originating
// fd_ID; it is created lazily on the first quantity decrease and its
// quantity only ever grows.  Corresponds to a row in the `outgoing` table.
type OutgoingRecord struct {
	Name       string // outgoing.Item_name
	Category   string // outgoing.Category
	Quantity   int64  // outgoing.Quantity, accumulated amount removed
	Units      string // outgoing.Units
	Location   string // outgoing.Location
	FoodBankID uint64 // outgoing.fb_ID
	FoodItemID uint64 // outgoing.fd_ID
}
