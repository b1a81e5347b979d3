package services

import (
	"context"
	"errors"
	"sync"

	"github.com/COMS4153EcommerceProject/Composite-microservice/models"
)

// ErrOperationNotFound is returned by a store when the id is unknown.
var ErrOperationNotFound = errors.New("operation not found")

// OperationStore owns the registry of asynchronous operations. Entries are
// inserted PENDING, transitioned to a terminal state exactly once by the
// background task, and read concurrently by polling clients.
type OperationStore interface {
	Create(ctx context.Context, op *models.Operation) error
	Complete(ctx context.Context, id string, result *models.OrderSummary) error
	Fail(ctx context.Context, id string, message string) error
	Get(ctx context.Context, id string) (*models.Operation, error)
}

// MemoryStore is the in-process registry: a mutex-guarded map with process
// lifetime and no eviction.
type MemoryStore struct {
	mu  sync.RWMutex
	ops map[string]*models.Operation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ops: make(map[string]*models.Operation)}
}

func (s *MemoryStore) Create(_ context.Context, op *models.Operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *op
	s.ops[op.OperationID] = &stored
	return nil
}

func (s *MemoryStore) Complete(_ context.Context, id string, result *models.OrderSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	op, ok := s.ops[id]
	if !ok {
		return ErrOperationNotFound
	}
	// Terminal states are write-once.
	if op.Status != models.OperationPending {
		return nil
	}
	op.Status = models.OperationCompleted
	op.Result = result
	return nil
}

func (s *MemoryStore) Fail(_ context.Context, id string, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	op, ok := s.ops[id]
	if !ok {
		return ErrOperationNotFound
	}
	if op.Status != models.OperationPending {
		return nil
	}
	op.Status = models.OperationFailed
	op.Error = message
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Operation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	op, ok := s.ops[id]
	if !ok {
		return nil, ErrOperationNotFound
	}
	snapshot := *op
	return &snapshot, nil
}
