// Package fees holds the static fee schedule agreed with the parish
// council. Amounts are assigned once at request creation.
package fees

// Table maps a request sub-type to a fee, with a fallback for unknown or
// absent sub-types.
type Table struct {
	BySubType map[string]float64
	Default   float64
}

// Lookup returns the fee for subType, falling back to the table default.
// Pure function; unknown sub-types never error.
func (t Table) Lookup(subType string) float64 {
	if amount, ok := t.BySubType[subType]; ok {
		return amount
	}
	return t.Default
}

// Flat returns a table charging the same amount regardless of sub-type.
func Flat(amount float64) Table {
	return Table{Default: amount}
}

// Free is the table for request types with no fee collected.
var Free = Table{}

// Per-type schedules.
var (
	Baptism      = Table{BySubType: map[string]float64{"solo": 500, "common": 300}, Default: 500}
	Confirmation = Table{BySubType: map[string]float64{"solo": 500, "common": 300}, Default: 500}
	Marriage     = Flat(5000)
	Funeral      = Flat(1000)
	Pamisa       = Flat(500)
	Blessing     = Table{
		BySubType: map[string]float64{
			"BUSINESS": 1000,
			"HOUSE":    800,
			"VEHICLE":  500,
			"OTHER":    600,
		},
		Default: 500,
	}
)
