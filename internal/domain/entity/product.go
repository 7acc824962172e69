package entity

// Product is a catalog item. Rows are created in bulk by the schema
// bootstrapper and read by the catalog layer; this core never mutates them.
type Product struct {
	ID          string  // Fixed-width four character product code.
	Description string  // Human-readable item description.
	UnitPrice   float64 // Price per unit, non-negative.
	Image       string  // Filename of the product image inside the image folder.
	InStock     int     // Units in stock; the storage layer enforces InStock >= 0.
}
