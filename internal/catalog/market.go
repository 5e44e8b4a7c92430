package catalog

import "slices"

// sectors are the market sectors brapi accepts on /quote/list.
var sectors = []string{
	"Retail Trade",
	"Energy Minerals",
	"Health Services",
	"Utilities",
	"Finance",
	"Consumer Services",
	"Consumer Non-Durables",
	"Non-Energy Minerals",
	"Commercial Services",
	"Distribution Services",
	"Transportation",
	"Technology Services",
	"Process Industries",
	"Communications",
	"Producer Manufacturing",
	"Miscellaneous",
	"Electronic Technology",
	"Industrial Services",
	"Health Technology",
	"Consumer Durables",
}

// sortFields are the listing sort keys accepted by brapi.
var sortFields = []string{
	"name",
	"close",
	"change",
	"change_abs",
	"volume",
	"market_cap_basic",
	"sector",
}

// Sort orders.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SectorExists reports whether s is a known market sector.
func SectorExists(s string) bool { return slices.Contains(sectors, s) }

// SortFieldExists reports whether f is an accepted listing sort field.
func SortFieldExists(f string) bool { return slices.Contains(sortFields, f) }

// SortOrderExists reports whether o is "asc" or "desc".
func SortOrderExists(o string) bool { return o == SortAsc || o == SortDesc }

// Sectors returns the sector enumeration in display order.
func Sectors() []string { return append([]string(nil), sectors...) }

// SortFields returns the sort field enumeration.
func SortFields() []string { return append([]string(nil), sortFields...) }
