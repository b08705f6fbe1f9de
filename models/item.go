package models

// Item is the projection of one Paradox catalog record that the UI and the
// export care about. JSON field names follow the catalog's original column
// names, which the web pages rely on.
type Item struct {
	// ID is the catalog record identifier, kept as text because the
	// underlying Paradox column may be numeric or alphanumeric.
	ID string `json:"id"`

	// Code is the internal article code.
	Code string `json:"Code"`

	// Name is the item description ("Марка" in the exported table).
	Name string `json:"Item"`

	// ClientPrice is the sale price including VAT, as stored in the catalog.
	ClientPrice string `json:"ClientPrice"`

	// Vendor is the supplier name.
	Vendor string `json:"Vendor"`

	// VendorPrice is the purchase price excluding VAT.
	VendorPrice string `json:"VendorPrice"`
}
