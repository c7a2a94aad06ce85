package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/agrimart/agrimart-backend/pkg/logger"
	"github.com/agrimart/agrimart-backend/pkg/metrics"
)

const storeName = "cart"

type repository interface {
	Load(ctx context.Context) ([]Line, error)
	Save(ctx context.Context, lines []Line) error
}

// Service owns the live cart. Every mutation writes through to storage before
// returning. Storage failures never propagate: reads degrade to an empty cart
// and failed writes still return the in-memory result, with the failure logged
// and counted. Callers needing durability guarantees must confirm separately.
type Service interface {
	Load(ctx context.Context) []Line
	Replace(ctx context.Context, lines []Line)
	Merge(ctx context.Context, incoming []Line) []Line
	AdjustQuantity(ctx context.Context, id string, delta int) []Line
	RemoveLine(ctx context.Context, id string) []Line
	Clear(ctx context.Context)
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Repo    repository
	Logger  *logger.Logger
	Metrics *metrics.StoreMetrics
}

type service struct {
	mu      sync.Mutex
	repo    repository
	logg    *logger.Logger
	metrics *metrics.StoreMetrics
}

// NewService builds a cart service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	return &service{
		repo:    params.Repo,
		logg:    params.Logger,
		metrics: params.Metrics,
	}, nil
}

// Load returns the persisted cart, or an empty cart when storage is missing
// or unreadable.
func (s *service) Load(ctx context.Context) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics.IncOp(storeName, "load")
	return s.load(ctx, "load")
}

// Replace overwrites the persisted cart with the given full snapshot.
func (s *service) Replace(ctx context.Context, lines []Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics.IncOp(storeName, "replace")
	s.persist(ctx, "replace", CloneLines(lines))
}

// Merge reconciles an incoming batch of lines into the current cart,
// persists the result, and returns it.
func (s *service) Merge(ctx context.Context, incoming []Line) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics.IncOp(storeName, "merge")

	current := s.load(ctx, "merge")
	merged := mergeLines(current, incoming)
	s.persist(ctx, "merge", merged)
	return merged
}

// AdjustQuantity shifts a line's quantity by delta, clamping at zero and
// dropping the line entirely when it reaches zero. Unknown ids are a no-op.
func (s *service) AdjustQuantity(ctx context.Context, id string, delta int) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics.IncOp(storeName, "adjust_quantity")

	current := s.load(ctx, "adjust_quantity")
	adjusted := adjustLine(current, id, delta)
	s.persist(ctx, "adjust_quantity", adjusted)
	return adjusted
}

// RemoveLine unconditionally removes the line with the given id if present.
func (s *service) RemoveLine(ctx context.Context, id string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics.IncOp(storeName, "remove_line")

	current := s.load(ctx, "remove_line")
	kept := removeLine(current, id)
	s.persist(ctx, "remove_line", kept)
	return kept
}

// Clear persists an empty cart. The key is emptied, not deleted.
func (s *service) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics.IncOp(storeName, "clear")
	s.persist(ctx, "clear", []Line{})
}

func (s *service) load(ctx context.Context, op string) []Line {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		s.metrics.IncReadFailure(storeName, op)
		if s.logg != nil {
			s.logg.Error(ctx, "cart read failed, treating as empty", err)
		}
		return []Line{}
	}
	return lines
}

func (s *service) persist(ctx context.Context, op string, lines []Line) {
	if err := s.repo.Save(ctx, lines); err != nil {
		s.metrics.IncWriteFailure(storeName, op)
		if s.logg != nil {
			s.logg.Error(ctx, "cart write failed, in-memory result returned", err)
		}
	}
}
