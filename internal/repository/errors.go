// Package repository contains data access logic for the shared food
// resource store, separated from HTTP handlers.  This file defines the
// sentinel error values reused across repositories.  Higher layers use
// them to distinguish failure scenarios: a validation failure keeps the
// triggering screen open for correction, a duplicate or mismatch becomes a
// conflict response, and a missing record becomes not-found.  Every
// operation validates fully before issuing any mutating statement, so a
// returned sentinel implies no partial state was written.
package repository

import "errors"

// ErrValidation is returned when input is malformed or missing: an empty
// required field, a non-numeric or negative quantity, an oversized move,
// or an invalid hours pair.  Wrapped errors carry the specific rule that
// was violated; handlers should translate this into an HTTP 400 response.
var ErrValidation = errors.New("validation failed")

// ErrDuplicateItem is returned when an insert collides with an existing
// food item carrying the identical (name, category, units, location)
// tuple.  The caller must update the existing entry instead.
var ErrDuplicateItem = errors.New("item already exists")

// ErrDuplicateFoodBank is returned when a new food bank reuses the name or
// street address of an existing one.
var ErrDuplicateFoodBank = errors.New("food bank already exists")

// ErrItemMismatch is returned when a move finds an item at the destination
// that matches the source's name and units but fails the stricter
// name+category+units comparison.  The near-match is a hard conflict,
// never a fall-through to creating a second row.  Handlers should
// translate this into an HTTP 409 response.
var ErrItemMismatch = errors.New("items are not the same")

// ErrItemNotFound is returned when a food item id does not resolve.
var ErrItemNotFound = errors.New("item not found")

// ErrFoodBankNotFound is returned when a location name or food bank id
// does not resolve to an existing food bank.
var ErrFoodBankNotFound = errors.New("food bank not found")
