package services

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/COMS4153EcommerceProject/Composite-microservice/clients"
	"github.com/COMS4153EcommerceProject/Composite-microservice/models"
)

func notFoundErr(resource string) *clients.Error {
	return &clients.Error{Resource: resource, Code: http.StatusNotFound, Status: http.StatusNotFound}
}

func upstreamErr(resource string, status int) *clients.Error {
	return &clients.Error{Resource: resource, Code: http.StatusBadGateway, Status: status}
}

// ---- fake User Service ----

type fakeUsers struct {
	user        *models.User
	userErr     *clients.Error
	preference  *models.Preference
	prefErr     *clients.Error
	mappings    []models.UserAddress
	mappingsErr *clients.Error
	addresses   map[uuid.UUID]models.Address
}

func (f *fakeUsers) GetUser(_ context.Context, id uuid.UUID) (*models.User, *clients.Error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	if f.user == nil || f.user.UserID != id {
		return nil, notFoundErr("User")
	}
	return f.user, nil
}

func (f *fakeUsers) GetPreference(_ context.Context, _ uuid.UUID) (*models.Preference, *clients.Error) {
	if f.prefErr != nil {
		return nil, f.prefErr
	}
	if f.preference == nil {
		return nil, notFoundErr("Preference")
	}
	return f.preference, nil
}

func (f *fakeUsers) ListUserAddresses(_ context.Context, _ uuid.UUID) ([]models.UserAddress, *clients.Error) {
	if f.mappingsErr != nil {
		return nil, f.mappingsErr
	}
	return f.mappings, nil
}

func (f *fakeUsers) GetAddress(_ context.Context, id uuid.UUID) (*models.Address, *clients.Error) {
	addr, ok := f.addresses[id]
	if !ok {
		return nil, notFoundErr("Address")
	}
	return &addr, nil
}

// ---- fake Product Service ----

type inventoryWrite struct {
	inventoryID   uuid.UUID
	stockQuantity int
}

type fakeProducts struct {
	mu          sync.Mutex
	products    map[uuid.UUID]models.Product
	inventories map[uuid.UUID]models.Inventory // keyed by product id
	updateErr   *clients.Error
	writes      []inventoryWrite
}

func (f *fakeProducts) GetProduct(_ context.Context, id uuid.UUID) (*models.Product, *clients.Error) {
	p, ok := f.products[id]
	if !ok {
		return nil, notFoundErr("Product")
	}
	return &p, nil
}

func (f *fakeProducts) GetProductInventory(_ context.Context, productID uuid.UUID) (*models.Inventory, *clients.Error) {
	inv, ok := f.inventories[productID]
	if !ok {
		return nil, notFoundErr("Inventory")
	}
	return &inv, nil
}

func (f *fakeProducts) UpdateInventory(_ context.Context, inventoryID uuid.UUID, stockQuantity int) (*models.Inventory, *clients.Error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.mu.Lock()
	f.writes = append(f.writes, inventoryWrite{inventoryID: inventoryID, stockQuantity: stockQuantity})
	f.mu.Unlock()
	return &models.Inventory{InventoryID: inventoryID, StockQuantity: stockQuantity}, nil
}

// ---- fake Order Service ----

type fakeOrders struct {
	mu sync.Mutex

	createOrderErr   *clients.Error
	createDetailErr  *clients.Error
	failDetailAt     int // 1-based index of the detail create that fails, 0 = never
	createPaymentErr *clients.Error

	ordersByUser  []models.Order
	listOrdersErr *clients.Error
	payments      map[uuid.UUID][]models.Payment
	details       map[uuid.UUID][]models.OrderDetail

	createdOrders  []models.OrderCreate
	createdDetails []models.OrderDetailCreate
	createdPayment *models.PaymentCreate
	statusUpdates  map[uuid.UUID]string
	lastOrderID    uuid.UUID
}

func (f *fakeOrders) CreateOrder(_ context.Context, req models.OrderCreate) (*models.Order, *clients.Error) {
	if f.createOrderErr != nil {
		return nil, f.createOrderErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdOrders = append(f.createdOrders, req)
	f.lastOrderID = uuid.New()
	return &models.Order{
		OrderID:    f.lastOrderID,
		UserID:     req.UserID,
		OrderDate:  req.OrderDate,
		TotalPrice: req.TotalPrice,
		Status:     req.Status,
	}, nil
}

func (f *fakeOrders) UpdateOrderStatus(_ context.Context, orderID uuid.UUID, status string) *clients.Error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statusUpdates == nil {
		f.statusUpdates = make(map[uuid.UUID]string)
	}
	f.statusUpdates[orderID] = status
	return nil
}

func (f *fakeOrders) ListOrdersByUser(_ context.Context, _ uuid.UUID) ([]models.Order, *clients.Error) {
	if f.listOrdersErr != nil {
		return nil, f.listOrdersErr
	}
	return f.ordersByUser, nil
}

func (f *fakeOrders) CreateOrderDetail(_ context.Context, req models.OrderDetailCreate) (*models.OrderDetail, *clients.Error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createDetailErr != nil && (f.failDetailAt == 0 || len(f.createdDetails)+1 == f.failDetailAt) {
		return nil, f.createDetailErr
	}
	f.createdDetails = append(f.createdDetails, req)
	id := uuid.New()
	return &models.OrderDetail{
		OrderDetailID: &id,
		OrderID:       req.OrderID,
		ProdID:        req.ProdID,
		Quantity:      req.Quantity,
		Subtotal:      req.Subtotal,
	}, nil
}

func (f *fakeOrders) ListOrderDetails(_ context.Context, orderID uuid.UUID) ([]models.OrderDetail, *clients.Error) {
	return f.details[orderID], nil
}

func (f *fakeOrders) CreatePayment(_ context.Context, req models.PaymentCreate) (*models.Payment, *clients.Error) {
	if f.createPaymentErr != nil {
		return nil, f.createPaymentErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdPayment = &req
	id := uuid.New()
	return &models.Payment{
		PaymentID:     &id,
		OrderID:       req.OrderID,
		PaymentMethod: req.PaymentMethod,
		PaymentDate:   req.PaymentDate,
		Amount:        req.Amount,
	}, nil
}

func (f *fakeOrders) ListPayments(_ context.Context, orderID uuid.UUID) ([]models.Payment, *clients.Error) {
	return f.payments[orderID], nil
}
