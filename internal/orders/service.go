package orders

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/agrimart/agrimart-backend/internal/cart"
	"github.com/agrimart/agrimart-backend/pkg/enums"
	"github.com/agrimart/agrimart-backend/pkg/logger"
	"github.com/agrimart/agrimart-backend/pkg/metrics"
	"github.com/agrimart/agrimart-backend/pkg/types"
)

const storeName = "orders"

type repository interface {
	Load(ctx context.Context) ([]Order, error)
	Save(ctx context.Context, history []Order) error
}

// Service owns the append-only order history. Reads degrade to an empty list
// on storage failure; MaterializeFromCart returns the constructed order even
// when the append could not be persisted, matching the cart store's
// soft-failure policy.
type Service interface {
	Load(ctx context.Context) []Order
	Append(ctx context.Context, order Order)
	MaterializeFromCart(ctx context.Context, lines []cart.Line, totalAmount float64, address types.Address) Order
}

// ServiceParams groups dependencies for the order service. Now and RandInt
// default to the wall clock and math/rand and exist for deterministic tests.
type ServiceParams struct {
	Repo    repository
	Logger  *logger.Logger
	Metrics *metrics.StoreMetrics
	Now     func() time.Time
	RandInt func(int) int
}

type service struct {
	mu      sync.Mutex
	repo    repository
	logg    *logger.Logger
	metrics *metrics.StoreMetrics
	now     func() time.Time
	randInt func(int) int
}

// NewService builds an order service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	if params.RandInt == nil {
		params.RandInt = rand.Intn
	}
	return &service{
		repo:    params.Repo,
		logg:    params.Logger,
		metrics: params.Metrics,
		now:     params.Now,
		randInt: params.RandInt,
	}, nil
}

// Load returns the persisted orders, most recent first, or an empty list when
// storage is missing or unreadable.
func (s *service) Load(ctx context.Context) []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics.IncOp(storeName, "load")
	return s.load(ctx, "load")
}

// Append prepends the order to the history and writes the full list back.
func (s *service) Append(ctx context.Context, order Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics.IncOp(storeName, "append")
	s.append(ctx, order)
}

// MaterializeFromCart snapshots the cart into a new processing order and
// stores it. The order embeds independent copies of the lines and address;
// mutating the live cart or address book afterwards does not touch it.
func (s *service) MaterializeFromCart(ctx context.Context, lines []cart.Line, totalAmount float64, address types.Address) Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics.IncOp(storeName, "materialize")

	now := s.now()
	date, monthName, year := decomposeDate(now)

	order := Order{
		ID:          newOrderID(now),
		DisplayID:   newDisplayID(s.randInt),
		Date:        date,
		Month:       monthName,
		Year:        year,
		Status:      enums.OrderStatusProcessing,
		Lines:       cart.CloneLines(lines),
		TotalAmount: totalAmount,
		Address:     address,
	}

	s.append(ctx, order)
	s.metrics.IncOrderCreated()
	if s.logg != nil {
		s.logg.Info(s.logg.WithOrderID(ctx, order.ID), "order materialized from cart")
	}
	return order
}

func (s *service) load(ctx context.Context, op string) []Order {
	history, err := s.repo.Load(ctx)
	if err != nil {
		s.metrics.IncReadFailure(storeName, op)
		if s.logg != nil {
			s.logg.Error(ctx, "orders read failed, treating as empty", err)
		}
		return []Order{}
	}
	return history
}

func (s *service) append(ctx context.Context, order Order) {
	history := s.load(ctx, "append")
	history = append([]Order{order}, history...)
	if err := s.repo.Save(ctx, history); err != nil {
		s.metrics.IncWriteFailure(storeName, "append")
		if s.logg != nil {
			s.logg.Error(ctx, "orders write failed, order returned without durability", err)
		}
	}
}
