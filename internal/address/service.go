package address

import (
	"context"
	"fmt"
	"sync"

	pkgerrors "github.com/agrimart/agrimart-backend/pkg/errors"
	"github.com/agrimart/agrimart-backend/pkg/logger"
	"github.com/agrimart/agrimart-backend/pkg/types"
)

type repository interface {
	Load(ctx context.Context) ([]types.Address, error)
	Save(ctx context.Context, book []types.Address) error
}

// Service manages the user's address book. At most one entry is the default
// at a time; the invariant is enforced when an address is selected, not when
// it is created.
type Service interface {
	List(ctx context.Context) ([]types.Address, error)
	Add(ctx context.Context, addr types.Address) ([]types.Address, error)
	Update(ctx context.Context, index int, addr types.Address) ([]types.Address, error)
	SelectDefault(ctx context.Context, index int) ([]types.Address, error)
	Default(ctx context.Context) (types.Address, error)
}

// ServiceParams groups dependencies for the address service.
type ServiceParams struct {
	Repo   repository
	Logger *logger.Logger
}

type service struct {
	mu   sync.Mutex
	repo repository
	logg *logger.Logger
}

// NewService builds an address service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("address repository required")
	}
	return &service{repo: params.Repo, logg: params.Logger}, nil
}

// List returns the stored address book.
func (s *service) List(ctx context.Context) ([]types.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Add appends a new entry. New addresses are never the default; the user
// promotes one explicitly via SelectDefault.
func (s *service) Add(ctx context.Context, addr types.Address) ([]types.Address, error) {
	if err := addr.Validate(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid address")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	addr.IsDefault = false
	book = append(book, addr)
	if err := s.save(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Update replaces the entry at index, preserving its default flag.
func (s *service) Update(ctx context.Context, index int, addr types.Address) ([]types.Address, error) {
	if err := addr.Validate(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid address")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(book) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
	}

	addr.IsDefault = book[index].IsDefault
	book[index] = addr
	if err := s.save(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// SelectDefault marks the entry at index as the default and clears the flag
// everywhere else.
func (s *service) SelectDefault(ctx context.Context, index int) ([]types.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(book) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
	}

	for i := range book {
		book[i].IsDefault = i == index
	}
	if err := s.save(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Default returns the current default entry, falling back to the first entry
// when none is flagged.
func (s *service) Default(ctx context.Context) (types.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load(ctx)
	if err != nil {
		return types.Address{}, err
	}
	if len(book) == 0 {
		return types.Address{}, pkgerrors.New(pkgerrors.CodeNotFound, "address book is empty")
	}
	for _, addr := range book {
		if addr.IsDefault {
			return addr, nil
		}
	}
	return book[0], nil
}

func (s *service) load(ctx context.Context) ([]types.Address, error) {
	book, err := s.repo.Load(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load address book")
	}
	return book, nil
}

func (s *service) save(ctx context.Context, book []types.Address) error {
	if err := s.repo.Save(ctx, book); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist address book")
	}
	return nil
}
