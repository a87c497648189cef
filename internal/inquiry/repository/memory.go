package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	commonerrors "github.com/flannelman48/whirly-rentals-website/internal/common/errors"
	"github.com/flannelman48/whirly-rentals-website/internal/inquiry/domain"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[domain.ID]domain.RentalInquiry
	order []domain.ID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID: make(map[domain.ID]domain.RentalInquiry),
	}
}

func (r *MemoryRepository) Create(_ context.Context, inquiry domain.RentalInquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[inquiry.ID]; exists {
		return fmt.Errorf("failed to create inquiry: duplicate id %s", inquiry.ID)
	}
	r.byID[inquiry.ID] = inquiry
	r.order = append(r.order, inquiry.ID)
	return nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id domain.ID) (domain.RentalInquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inquiry, ok := r.byID[id]
	if !ok {
		return domain.RentalInquiry{}, commonerrors.ErrInquiryNotFound
	}
	return inquiry, nil
}

// List sorts by CreatedAt descending; equal timestamps keep the latest insert first.
func (r *MemoryRepository) List(_ context.Context) ([]domain.RentalInquiry, error) {
	r.mu.RLock()
	result := make([]domain.RentalInquiry, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		result = append(result, r.byID[r.order[i]])
	}
	r.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
