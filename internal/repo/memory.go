package repo

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/uniform-analytics/internal/models"
)

// memoryStore keeps records in insertion order behind a mutex.
type memoryStore[T any] struct {
	mu       sync.RWMutex
	items    []T
	id       func(*T) *string
	notFound error
}

func (s *memoryStore[T]) List(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items), nil
}

func (s *memoryStore[T]) GetByID(_ context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if *s.id(&s.items[i]) == id {
			return s.items[i], nil
		}
	}
	var zero T
	return zero, s.notFound
}

func (s *memoryStore[T]) Create(_ context.Context, item T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.id(&item)
	if *id == "" {
		*id = uuid.NewString()
	}
	for i := range s.items {
		if *s.id(&s.items[i]) == *id {
			var zero T
			return zero, ErrDuplicatedValueUnique
		}
	}
	s.items = append(s.items, item)
	return item, nil
}

func (s *memoryStore[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if *s.id(&s.items[i]) == id {
			s.items = slices.Delete(s.items, i, i+1)
			return nil
		}
	}
	return s.notFound
}

func (s *memoryStore[T]) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

// InMemoryOrderRepository is an in-memory implementation of OrderRepository.
type InMemoryOrderRepository struct {
	*memoryStore[models.Order]
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{&memoryStore[models.Order]{
		id:       func(o *models.Order) *string { return &o.ID },
		notFound: ErrOrderNotFound,
	}}
}

// InMemoryBatchRepository is an in-memory implementation of BatchRepository.
type InMemoryBatchRepository struct {
	*memoryStore[models.Batch]
}

func NewInMemoryBatchRepository() *InMemoryBatchRepository {
	return &InMemoryBatchRepository{&memoryStore[models.Batch]{
		id:       func(b *models.Batch) *string { return &b.ID },
		notFound: ErrBatchNotFound,
	}}
}

// InMemorySchoolRepository is an in-memory implementation of SchoolRepository.
type InMemorySchoolRepository struct {
	*memoryStore[models.School]
}

func NewInMemorySchoolRepository() *InMemorySchoolRepository {
	return &InMemorySchoolRepository{&memoryStore[models.School]{
		id:       func(s *models.School) *string { return &s.ID },
		notFound: ErrSchoolNotFound,
	}}
}
