package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/COMS4153EcommerceProject/Composite-microservice/executor"
	"github.com/COMS4153EcommerceProject/Composite-microservice/models"
)

// ReportService runs order-summary aggregations asynchronously: Submit
// registers a PENDING operation and returns its id immediately; the summary
// runs on the shared pool and writes a single terminal state.
type ReportService interface {
	Submit(userID uuid.UUID) (string, *ServiceError)
	Get(ctx context.Context, operationID string) (*models.Operation, *ServiceError)
}

type reportService struct {
	store   OperationStore
	summary SummaryService
	pool    *executor.Pool
}

func NewReportService(store OperationStore, summary SummaryService, pool *executor.Pool) ReportService {
	return &reportService{store: store, summary: summary, pool: pool}
}

func (s *reportService) Submit(userID uuid.UUID) (string, *ServiceError) {
	operationID := uuid.NewString()
	op := &models.Operation{
		OperationID: operationID,
		Status:      models.OperationPending,
	}
	if err := s.store.Create(context.Background(), op); err != nil {
		zap.L().Error("report: operation registration failed", zap.Error(err))
		return "", &ServiceError{StatusCode: 500, Message: "Failed to register operation"}
	}

	s.pool.Submit(func() {
		// The job outlives the submitting HTTP request, so it runs on a
		// background context rather than the request's.
		ctx := context.Background()
		result, serr := s.summary.Summarize(ctx, userID)
		if serr != nil {
			if err := s.store.Fail(ctx, operationID, serr.Message); err != nil {
				zap.L().Error("report: failed to record FAILED state",
					zap.String("operation_id", operationID), zap.Error(err))
			}
			return
		}
		if err := s.store.Complete(ctx, operationID, result); err != nil {
			zap.L().Error("report: failed to record COMPLETED state",
				zap.String("operation_id", operationID), zap.Error(err))
		}
	})

	return operationID, nil
}

func (s *reportService) Get(ctx context.Context, operationID string) (*models.Operation, *ServiceError) {
	op, err := s.store.Get(ctx, operationID)
	if errors.Is(err, ErrOperationNotFound) {
		return nil, &ServiceError{StatusCode: 404, Message: "Operation not found"}
	}
	if err != nil {
		zap.L().Error("report: operation lookup failed",
			zap.String("operation_id", operationID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load operation"}
	}
	return op, nil
}
