package clients

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/COMS4153EcommerceProject/Composite-microservice/models"
)

// OrderClient is the typed call surface of the Order Service.
type OrderClient struct {
	up *Upstream
}

func NewOrderClient(up *Upstream) *OrderClient {
	return &OrderClient{up: up}
}

func (c *OrderClient) CreateOrder(ctx context.Context, req models.OrderCreate) (*models.Order, *Error) {
	var order models.Order
	if err := c.up.SendJSON(ctx, http.MethodPost, "/orders", "Order", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *OrderClient) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) *Error {
	payload := map[string]string{"status": status}
	return c.up.SendJSON(ctx, http.MethodPatch, "/orders/"+orderID.String(), "Order", payload, nil)
}

func (c *OrderClient) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, *Error) {
	query := url.Values{"user_id": []string{userID.String()}}
	var orders []models.Order
	if err := c.up.GetJSON(ctx, "/orders", query, "Order", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *OrderClient) CreateOrderDetail(ctx context.Context, req models.OrderDetailCreate) (*models.OrderDetail, *Error) {
	var detail models.OrderDetail
	if err := c.up.SendJSON(ctx, http.MethodPost, "/order-details", "OrderDetail", req, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *OrderClient) ListOrderDetails(ctx context.Context, orderID uuid.UUID) ([]models.OrderDetail, *Error) {
	query := url.Values{"order_id": []string{orderID.String()}}
	var details []models.OrderDetail
	if err := c.up.GetJSON(ctx, "/order-details", query, "OrderDetail", &details); err != nil {
		return nil, err
	}
	return details, nil
}

func (c *OrderClient) CreatePayment(ctx context.Context, req models.PaymentCreate) (*models.Payment, *Error) {
	var payment models.Payment
	if err := c.up.SendJSON(ctx, http.MethodPost, "/payments", "Payment", req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *OrderClient) ListPayments(ctx context.Context, orderID uuid.UUID) ([]models.Payment, *Error) {
	query := url.Values{"order_id": []string{orderID.String()}}
	var payments []models.Payment
	if err := c.up.GetJSON(ctx, "/payments", query, "Payment", &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
