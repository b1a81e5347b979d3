package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/COMS4153EcommerceProject/Composite-microservice/clients"
	"github.com/COMS4153EcommerceProject/Composite-microservice/executor"
	"github.com/COMS4153EcommerceProject/Composite-microservice/models"
)

// SummaryService assembles a user's order summary with a two-level
// concurrent fan-out. Only a failing user lookup aborts the whole summary;
// every optional sub-resource degrades to absence or an empty list.
type SummaryService interface {
	Summarize(ctx context.Context, userID uuid.UUID) (*models.OrderSummary, *ServiceError)
}

type summaryService struct {
	users    UserAPI
	products ProductAPI
	orders   OrderAPI
	pool     *executor.Pool
}

func NewSummaryService(users UserAPI, products ProductAPI, orders OrderAPI, pool *executor.Pool) SummaryService {
	return &summaryService{users: users, products: products, orders: orders, pool: pool}
}

func (s *summaryService) Summarize(ctx context.Context, userID uuid.UUID) (*models.OrderSummary, *ServiceError) {
	// Level 1: four independent reads. All four are joined before any
	// level-2 work is scheduled, since enrichment depends on the order list.
	type userResult struct {
		user *models.User
		err  *clients.Error
	}
	userCh := make(chan userResult, 1)
	prefCh := make(chan *models.Preference, 1)
	addrCh := make(chan []models.Address, 1)
	ordersCh := make(chan []models.Order, 1)

	s.pool.Submit(func() {
		user, err := s.users.GetUser(ctx, userID)
		userCh <- userResult{user: user, err: err}
	})

	s.pool.Submit(func() {
		pref, err := s.users.GetPreference(ctx, userID)
		if err != nil {
			if !err.IsNotFound() {
				zap.L().Warn("order summary: preference lookup degraded",
					zap.String("user_id", userID.String()), zap.Error(err))
			}
			prefCh <- nil
			return
		}
		prefCh <- pref
	})

	s.pool.Submit(func() {
		addrCh <- s.collectAddresses(ctx, userID)
	})

	s.pool.Submit(func() {
		orders, err := s.orders.ListOrdersByUser(ctx, userID)
		if err != nil {
			zap.L().Warn("order summary: order list degraded",
				zap.String("user_id", userID.String()), zap.Error(err))
			ordersCh <- nil
			return
		}
		ordersCh <- orders
	})

	ur := <-userCh
	preference := <-prefCh
	addresses := <-addrCh
	orders := <-ordersCh

	if ur.err != nil {
		return nil, fromUpstream(ur.err)
	}

	// Level 2: enrich each order independently. Results land in indexed
	// slots so output order follows the order list, not completion order.
	enriched := make([]models.EnrichedOrder, len(orders))
	var wg sync.WaitGroup
	for i, order := range orders {
		i, order := i, order
		wg.Add(1)
		s.pool.Submit(func() {
			defer wg.Done()
			enriched[i] = s.enrich(ctx, order)
		})
	}
	wg.Wait()

	return &models.OrderSummary{
		User:       *ur.user,
		Preference: preference,
		Addresses:  addresses,
		Orders:     enriched,
	}, nil
}

// collectAddresses resolves the user's addresses via the user-address
// mapping table. A failing mapping list degrades to no addresses; an address
// that has vanished since the mapping was read is skipped.
func (s *summaryService) collectAddresses(ctx context.Context, userID uuid.UUID) []models.Address {
	mappings, err := s.users.ListUserAddresses(ctx, userID)
	if err != nil {
		if !err.IsNotFound() {
			zap.L().Warn("order summary: user-address list degraded",
				zap.String("user_id", userID.String()), zap.Error(err))
		}
		return []models.Address{}
	}

	addresses := make([]models.Address, 0, len(mappings))
	for _, mapping := range mappings {
		addr, aerr := s.users.GetAddress(ctx, mapping.AddrID)
		if aerr != nil {
			if !aerr.IsNotFound() {
				zap.L().Warn("order summary: address fetch degraded",
					zap.String("addr_id", mapping.AddrID.String()), zap.Error(aerr))
			}
			continue
		}
		addresses = append(addresses, *addr)
	}
	return addresses
}

// enrich attaches payments, details, and best-effort product/inventory
// snapshots to one order.
func (s *summaryService) enrich(ctx context.Context, order models.Order) models.EnrichedOrder {
	payments, perr := s.orders.ListPayments(ctx, order.OrderID)
	if perr != nil || payments == nil {
		payments = []models.Payment{}
	}

	details, derr := s.orders.ListOrderDetails(ctx, order.OrderID)
	if derr != nil {
		details = nil
	}

	enrichedDetails := make([]models.EnrichedOrderDetail, 0, len(details))
	for _, detail := range details {
		ed := models.EnrichedOrderDetail{OrderDetail: detail}
		if product, err := s.products.GetProduct(ctx, detail.ProdID); err == nil {
			ed.Product = product
		}
		if inventory, err := s.products.GetProductInventory(ctx, detail.ProdID); err == nil {
			ed.Inventory = inventory
		}
		enrichedDetails = append(enrichedDetails, ed)
	}

	return models.EnrichedOrder{
		Order:    order,
		Payments: payments,
		Details:  enrichedDetails,
	}
}
