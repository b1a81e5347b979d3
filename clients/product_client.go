package clients

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/COMS4153EcommerceProject/Composite-microservice/models"
)

// ProductClient is the typed call surface of the Product Service. Inventory
// reads are keyed by product id through the combined lookup endpoint;
// inventory writes are keyed by the inventory record's own id.
type ProductClient struct {
	up *Upstream
}

func NewProductClient(up *Upstream) *ProductClient {
	return &ProductClient{up: up}
}

func (c *ProductClient) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, *Error) {
	var product models.Product
	if err := c.up.GetJSON(ctx, "/products/"+id.String(), nil, "Product", &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *ProductClient) GetProductInventory(ctx context.Context, productID uuid.UUID) (*models.Inventory, *Error) {
	var inv models.Inventory
	if err := c.up.GetJSON(ctx, "/products/"+productID.String()+"/inventory", nil, "Inventory", &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (c *ProductClient) UpdateInventory(ctx context.Context, inventoryID uuid.UUID, stockQuantity int) (*models.Inventory, *Error) {
	payload := models.InventoryUpdate{StockQuantity: stockQuantity}
	var inv models.Inventory
	if err := c.up.SendJSON(ctx, http.MethodPut, "/inventories/"+inventoryID.String(), "InventoryUpdate", payload, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}
