package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/COMS4153EcommerceProject/Composite-microservice/models"
)

func newCheckoutFixture(stock int, price float64) (*fakeUsers, *fakeProducts, *fakeOrders, uuid.UUID, uuid.UUID, uuid.UUID) {
	userID := uuid.New()
	productID := uuid.New()
	inventoryID := uuid.New()

	users := &fakeUsers{user: &models.User{UserID: userID, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}}
	products := &fakeProducts{
		products: map[uuid.UUID]models.Product{
			productID: {ProductID: productID, ProductName: "Widget", Price: price},
		},
		inventories: map[uuid.UUID]models.Inventory{
			productID: {InventoryID: inventoryID, StockQuantity: stock},
		},
	}
	orders := &fakeOrders{}
	return users, products, orders, userID, productID, inventoryID
}

func TestCheckout_Success(t *testing.T) {
	users, products, orders, userID, productID, inventoryID := newCheckoutFixture(5, 10.00)
	svc := NewCheckoutService(users, products, orders)

	result, serr := svc.Checkout(context.Background(), userID, []models.CheckoutItem{
		{ProductID: productID, Quantity: 2},
	})
	if serr != nil {
		t.Fatalf("Checkout returned error: %v", serr)
	}

	if result.Order.TotalPrice != 20.00 {
		t.Fatalf("expected order total 20.00, got %v", result.Order.TotalPrice)
	}
	if result.Order.Status != models.OrderStatusPending {
		t.Fatalf("expected order status PENDING, got %s", result.Order.Status)
	}
	if result.Payment.Amount != 20.00 {
		t.Fatalf("expected payment amount 20.00, got %v", result.Payment.Amount)
	}
	if result.Payment.PaymentMethod != models.DefaultPaymentMethod {
		t.Fatalf("expected payment method %s, got %s", models.DefaultPaymentMethod, result.Payment.PaymentMethod)
	}
	if len(result.OrderDetails) != 1 {
		t.Fatalf("expected 1 order detail, got %d", len(result.OrderDetails))
	}
	if result.OrderDetails[0].Subtotal != 20.00 || result.OrderDetails[0].Quantity != 2 {
		t.Fatalf("unexpected order detail: %+v", result.OrderDetails[0])
	}

	// Stock 5 minus requested 2, written against the inventory record's id.
	if len(products.writes) != 1 {
		t.Fatalf("expected 1 inventory write, got %d", len(products.writes))
	}
	if products.writes[0].inventoryID != inventoryID || products.writes[0].stockQuantity != 3 {
		t.Fatalf("unexpected inventory write: %+v", products.writes[0])
	}
}

func TestCheckout_PaymentEqualsSumOfSubtotals(t *testing.T) {
	userID := uuid.New()
	p1, p2 := uuid.New(), uuid.New()
	i1, i2 := uuid.New(), uuid.New()

	users := &fakeUsers{user: &models.User{UserID: userID}}
	products := &fakeProducts{
		products: map[uuid.UUID]models.Product{
			p1: {ProductID: p1, Price: 3.50},
			p2: {ProductID: p2, Price: 12.25},
		},
		inventories: map[uuid.UUID]models.Inventory{
			p1: {InventoryID: i1, StockQuantity: 10},
			p2: {InventoryID: i2, StockQuantity: 10},
		},
	}
	orders := &fakeOrders{}
	svc := NewCheckoutService(users, products, orders)

	result, serr := svc.Checkout(context.Background(), userID, []models.CheckoutItem{
		{ProductID: p1, Quantity: 4},
		{ProductID: p2, Quantity: 2},
	})
	if serr != nil {
		t.Fatalf("Checkout returned error: %v", serr)
	}

	var sum float64
	for _, d := range result.OrderDetails {
		sum += d.Subtotal
	}
	if sum != result.Payment.Amount {
		t.Fatalf("payment amount %v != sum of subtotals %v", result.Payment.Amount, sum)
	}
	if result.Payment.Amount != 3.50*4+12.25*2 {
		t.Fatalf("unexpected payment amount %v", result.Payment.Amount)
	}
}

func TestCheckout_InsufficientStock_NoWrites(t *testing.T) {
	users, products, orders, userID, productID, _ := newCheckoutFixture(5, 10.00)
	svc := NewCheckoutService(users, products, orders)

	_, serr := svc.Checkout(context.Background(), userID, []models.CheckoutItem{
		{ProductID: productID, Quantity: 7},
	})
	if serr == nil {
		t.Fatal("expected insufficient stock error")
	}
	if serr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", serr.StatusCode)
	}
	if !strings.Contains(serr.Message, productID.String()) {
		t.Fatalf("error should name the offending product, got %q", serr.Message)
	}

	if len(orders.createdOrders) != 0 || len(orders.createdDetails) != 0 || orders.createdPayment != nil {
		t.Fatal("validation failure must not produce order-service writes")
	}
	if len(products.writes) != 0 {
		t.Fatal("validation failure must not touch inventory")
	}
}

func TestCheckout_UserNotFound(t *testing.T) {
	users, products, orders, _, productID, _ := newCheckoutFixture(5, 10.00)
	svc := NewCheckoutService(users, products, orders)

	_, serr := svc.Checkout(context.Background(), uuid.New(), []models.CheckoutItem{
		{ProductID: productID, Quantity: 1},
	})
	if serr == nil || serr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %+v", serr)
	}
	if len(orders.createdOrders) != 0 {
		t.Fatal("no order may be created for an unknown user")
	}
}

func TestCheckout_ProductNotFound(t *testing.T) {
	users, products, orders, userID, _, _ := newCheckoutFixture(5, 10.00)
	svc := NewCheckoutService(users, products, orders)

	_, serr := svc.Checkout(context.Background(), userID, []models.CheckoutItem{
		{ProductID: uuid.New(), Quantity: 1},
	})
	if serr == nil || serr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %+v", serr)
	}
	if len(orders.createdOrders) != 0 || len(products.writes) != 0 {
		t.Fatal("no writes may happen for an unknown product")
	}
}

func TestCheckout_PaymentFailure_Compensates(t *testing.T) {
	users, products, orders, userID, productID, inventoryID := newCheckoutFixture(5, 10.00)
	orders.createPaymentErr = upstreamErr("Payment", http.StatusInternalServerError)
	svc := NewCheckoutService(users, products, orders)

	_, serr := svc.Checkout(context.Background(), userID, []models.CheckoutItem{
		{ProductID: productID, Quantity: 2},
	})
	if serr == nil || serr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502 from failed payment, got %+v", serr)
	}

	// Decrement to 3, then restore to the pre-checkout snapshot of 5.
	if len(products.writes) != 2 {
		t.Fatalf("expected decrement + restore writes, got %d", len(products.writes))
	}
	if products.writes[0] != (inventoryWrite{inventoryID: inventoryID, stockQuantity: 3}) {
		t.Fatalf("unexpected decrement write: %+v", products.writes[0])
	}
	if products.writes[1] != (inventoryWrite{inventoryID: inventoryID, stockQuantity: 5}) {
		t.Fatalf("unexpected restore write: %+v", products.writes[1])
	}

	if got := orders.statusUpdates[orders.lastOrderID]; got != models.OrderStatusCancelled {
		t.Fatalf("expected order cancelled during compensation, got %q", got)
	}
}

func TestCheckout_DetailFailure_CompensatesEarlierItems(t *testing.T) {
	userID := uuid.New()
	p1, p2 := uuid.New(), uuid.New()
	i1, i2 := uuid.New(), uuid.New()

	users := &fakeUsers{user: &models.User{UserID: userID}}
	products := &fakeProducts{
		products: map[uuid.UUID]models.Product{
			p1: {ProductID: p1, Price: 5},
			p2: {ProductID: p2, Price: 5},
		},
		inventories: map[uuid.UUID]models.Inventory{
			p1: {InventoryID: i1, StockQuantity: 8},
			p2: {InventoryID: i2, StockQuantity: 8},
		},
	}
	orders := &fakeOrders{
		createDetailErr: upstreamErr("OrderDetail", http.StatusInternalServerError),
		failDetailAt:    2,
	}
	svc := NewCheckoutService(users, products, orders)

	_, serr := svc.Checkout(context.Background(), userID, []models.CheckoutItem{
		{ProductID: p1, Quantity: 3},
		{ProductID: p2, Quantity: 1},
	})
	if serr == nil || serr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502 from failed detail create, got %+v", serr)
	}

	// First item decremented to 5, then restored to 8. Second item never
	// reached its inventory write.
	if len(products.writes) != 2 {
		t.Fatalf("expected decrement + restore, got %v", products.writes)
	}
	if products.writes[0] != (inventoryWrite{inventoryID: i1, stockQuantity: 5}) {
		t.Fatalf("unexpected decrement: %+v", products.writes[0])
	}
	if products.writes[1] != (inventoryWrite{inventoryID: i1, stockQuantity: 8}) {
		t.Fatalf("unexpected restore: %+v", products.writes[1])
	}
	if got := orders.statusUpdates[orders.lastOrderID]; got != models.OrderStatusCancelled {
		t.Fatalf("expected order cancelled during compensation, got %q", got)
	}
}
