package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/COMS4153EcommerceProject/Composite-microservice/clients"
	"github.com/COMS4153EcommerceProject/Composite-microservice/models"
)

// UserAPI is the slice of the User Service the composite services consume.
// Implemented by clients.UserClient.
type UserAPI interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, *clients.Error)
	GetPreference(ctx context.Context, userID uuid.UUID) (*models.Preference, *clients.Error)
	ListUserAddresses(ctx context.Context, userID uuid.UUID) ([]models.UserAddress, *clients.Error)
	GetAddress(ctx context.Context, id uuid.UUID) (*models.Address, *clients.Error)
}

// ProductAPI is the slice of the Product Service the composite services
// consume. Implemented by clients.ProductClient.
type ProductAPI interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, *clients.Error)
	GetProductInventory(ctx context.Context, productID uuid.UUID) (*models.Inventory, *clients.Error)
	UpdateInventory(ctx context.Context, inventoryID uuid.UUID, stockQuantity int) (*models.Inventory, *clients.Error)
}

// OrderAPI is the slice of the Order Service the composite services consume.
// Implemented by clients.OrderClient.
type OrderAPI interface {
	CreateOrder(ctx context.Context, req models.OrderCreate) (*models.Order, *clients.Error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) *clients.Error
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, *clients.Error)
	CreateOrderDetail(ctx context.Context, req models.OrderDetailCreate) (*models.OrderDetail, *clients.Error)
	ListOrderDetails(ctx context.Context, orderID uuid.UUID) ([]models.OrderDetail, *clients.Error)
	CreatePayment(ctx context.Context, req models.PaymentCreate) (*models.Payment, *clients.Error)
	ListPayments(ctx context.Context, orderID uuid.UUID) ([]models.Payment, *clients.Error)
}
