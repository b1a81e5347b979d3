package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/COMS4153EcommerceProject/Composite-microservice/models"
)

// CheckoutService runs the checkout saga: a read-only validation phase
// followed by dependent writes across the Order and Product services.
type CheckoutService interface {
	Checkout(ctx context.Context, userID uuid.UUID, items []models.CheckoutItem) (*models.CheckoutResult, *ServiceError)
}

type checkoutService struct {
	users    UserAPI
	products ProductAPI
	orders   OrderAPI
}

func NewCheckoutService(users UserAPI, products ProductAPI, orders OrderAPI) CheckoutService {
	return &checkoutService{users: users, products: products, orders: orders}
}

// checkoutLine is the validated snapshot of one requested item. Line totals
// and the eventual inventory decrement both come from these pre-write
// snapshots, never from a re-read.
type checkoutLine struct {
	product   *models.Product
	inventory *models.Inventory
	quantity  int
	lineTotal float64
}

func (s *checkoutService) Checkout(ctx context.Context, userID uuid.UUID, items []models.CheckoutItem) (*models.CheckoutResult, *ServiceError) {
	user, uerr := s.users.GetUser(ctx, userID)
	if uerr != nil {
		return nil, fromUpstream(uerr)
	}

	// Phase 1: read-only validation, in the caller-supplied item order.
	// Aborting anywhere in here leaves no partial state.
	lines := make([]checkoutLine, 0, len(items))
	for _, item := range items {
		product, perr := s.products.GetProduct(ctx, item.ProductID)
		if perr != nil {
			return nil, fromUpstream(perr)
		}

		inventory, ierr := s.products.GetProductInventory(ctx, item.ProductID)
		if ierr != nil {
			return nil, fromUpstream(ierr)
		}

		if inventory.StockQuantity < item.Quantity {
			return nil, &ServiceError{
				StatusCode: 400,
				Message:    fmt.Sprintf("Not enough stock for product %s", item.ProductID),
			}
		}

		lines = append(lines, checkoutLine{
			product:   product,
			inventory: inventory,
			quantity:  item.Quantity,
			lineTotal: product.Price * float64(item.Quantity),
		})
	}

	var totalPrice float64
	for _, line := range lines {
		totalPrice += line.lineTotal
	}

	// Phase 2: writes. The order row is the first externally visible state.
	order, oerr := s.orders.CreateOrder(ctx, models.OrderCreate{
		UserID:     userID,
		OrderDate:  isoNow(),
		TotalPrice: totalPrice,
		Status:     models.OrderStatusPending,
	})
	if oerr != nil {
		return nil, fromUpstream(oerr)
	}

	// decremented tracks the saga's completed inventory writes so a later
	// failure can compensate in reverse.
	var decremented []checkoutLine

	details := make([]models.OrderDetail, 0, len(lines))
	for _, line := range lines {
		detail, derr := s.orders.CreateOrderDetail(ctx, models.OrderDetailCreate{
			OrderID:  order.OrderID,
			ProdID:   line.product.ProductID,
			Quantity: line.quantity,
			Subtotal: line.lineTotal,
		})
		if derr != nil {
			s.compensate(ctx, order.OrderID, decremented)
			return nil, fromUpstream(derr)
		}
		details = append(details, *detail)

		newQuantity := line.inventory.StockQuantity - line.quantity
		if _, ierr := s.products.UpdateInventory(ctx, line.inventory.InventoryID, newQuantity); ierr != nil {
			s.compensate(ctx, order.OrderID, decremented)
			return nil, fromUpstream(ierr)
		}
		decremented = append(decremented, line)
	}

	payment, perr := s.orders.CreatePayment(ctx, models.PaymentCreate{
		OrderID:       order.OrderID,
		PaymentMethod: models.DefaultPaymentMethod,
		PaymentDate:   isoNow(),
		Amount:        totalPrice,
	})
	if perr != nil {
		s.compensate(ctx, order.OrderID, decremented)
		return nil, fromUpstream(perr)
	}

	return &models.CheckoutResult{
		User:         *user,
		Order:        *order,
		OrderDetails: details,
		Payment:      *payment,
	}, nil
}

// compensate undoes the saga's committed writes after a mid-flight failure:
// restores each decremented inventory to its pre-checkout snapshot, newest
// first, then marks the order CANCELLED. Best-effort only; failures are
// logged and never mask the error that triggered compensation.
func (s *checkoutService) compensate(ctx context.Context, orderID uuid.UUID, decremented []checkoutLine) {
	for i := len(decremented) - 1; i >= 0; i-- {
		line := decremented[i]
		if _, err := s.products.UpdateInventory(ctx, line.inventory.InventoryID, line.inventory.StockQuantity); err != nil {
			zap.L().Error("checkout compensation: inventory restore failed",
				zap.String("order_id", orderID.String()),
				zap.String("inventory_id", line.inventory.InventoryID.String()),
				zap.Error(err))
		}
	}

	if err := s.orders.UpdateOrderStatus(ctx, orderID, models.OrderStatusCancelled); err != nil {
		zap.L().Error("checkout compensation: order cancel failed",
			zap.String("order_id", orderID.String()),
			zap.Error(err))
	} else {
		zap.L().Warn("checkout compensated",
			zap.String("order_id", orderID.String()),
			zap.Int("inventories_restored", len(decremented)))
	}
}

// isoNow formats the current UTC time at second precision, matching the
// upstream services' date format.
func isoNow() string {
	return time.Now().UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z")
}
