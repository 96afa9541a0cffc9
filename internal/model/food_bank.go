package model

// FoodBank represents a physical distribution site.  Each food bank is
// identified by a unique fb_ID and a unique location label.  A food bank
// owns one hours row (1:1) and is referenced by many food item rows.
// This struct corresponds to a row in the `food_bank` table.
//
// Fields:
//  ID           – primary key identifier (food_bank.fb_ID).
//  Location     – unique human-friendly site name (food_bank.Location).
//  Address      – street address (food_bank.Address).
//  Neighborhood – neighborhood the site serves (food_bank.Neighborhood).
//  Phone        – contact number, "(XXX) XXX-XXXX" (food_bank.Phone_number).
type FoodBank struct {
	ID           uint64 // food_bank.fb_ID
	Location     string // food_bank.Location
	Address      string // food_bank.Address
	Neighborhood string // food_bank.Neighborhood
	Phone        string // food_bank.Phone_number
}

// ValidPhone reports whether num matches the "(XXX) XXX-XXXX" format the
// admin tool requires for new food banks.
func ValidPhone(num string) bool {
	if len(num) != 14 {
		return false
	}
	for i := 0; i < 14; i++ {
		switch i {
		case 0:
			if num[i] != '(' {
				return false
			}
		case 4:
			if num[i] != ')' {
				return false
			}
		case 5:
			if num[i] != ' ' {
				return false
			}
		case 9:
			if num[i] != '-' {
				return false
			}
		default:
			if num[i] < '0' || num[i] > '9' {
				return false
			}
		}
	}
	return true
}
