package model

// FoodItem represents a stocked item record at a specific food bank.  The
// fd_ID is unique across the whole store, not per location; the same item
// stocked at two food banks has two rows with distinct ids.  This struct
// corresponds to a row in the `food_item` table.
type FoodItem struct {
	Name       string // food_item.Item_name
	Category   string // food_item.Category
	Quantity   int64  // food_item.Quantity, never negative
	Units      string // food_item.Units
	Location   string // food_item.Location (denormalized food bank name)
	FoodBankID uint64 // food_item.fb_ID
	ID         uint64 // food_item.fd_ID
}

// SameItem reports whether two rows describe the same physical item for
// merge purposes.  Identity is name, category and units; location and ids
// are deliberately ignored so rows at different food banks can be compared.
func (f FoodItem) SameItem(other FoodItem) bool {
	return f.Name == other.Name && f.Category == other.Category && f.Units == other.Units
}
