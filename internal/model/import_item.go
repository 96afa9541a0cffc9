package model

// ImportItem is one validated data row of an admin bulk-import file
// ("item, category, quantity, units").  Quantity has already been checked
// to be a non-negative integer by the time a batch reaches the store.
type ImportItem struct {
	Name     string
	Category string
	Quantity int64
	Units    string
}
