package models

import "github.com/google/uuid"

// Product is the snapshot returned by the Product Service.
type Product struct {
	ProductID   uuid.UUID  `json:"product_id"`
	ProductName string     `json:"product_name,omitempty"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	InventoryID *uuid.UUID `json:"inventory_id,omitempty"`
}

// Inventory is the stock record for a product. Reads go through the
// product-keyed combined endpoint; writes are keyed by InventoryID.
type Inventory struct {
	InventoryID   uuid.UUID `json:"inventory_id"`
	StockQuantity int       `json:"stock_quantity"`
}

// InventoryUpdate is the payload for PUT /inventories/{inventory_id}.
type InventoryUpdate struct {
	StockQuantity int `json:"stock_quantity"`
}
