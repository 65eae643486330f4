package expense

import (
	"time"

	"github.com/google/uuid"

	"fleetbook/internal/domain"
	"fleetbook/internal/store"
)

type Store interface {
	Expenses() []domain.Expense
	Commit(fn func(st *store.State) error, touched ...string) error
}

type Service struct {
	store Store
	now   func() time.Time
	newID func() string
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *Service) List() []domain.Expense {
	return s.store.Expenses()
}

// Create books a manual ledger entry. Synthetic rows (gateway fees,
// refunds) come from the reservation lifecycle, not from here.
func (s *Service) Create(description, category string, amount int64, date time.Time) (*domain.Expense, error) {
	if description == "" || amount <= 0 {
		return nil, ErrValidation
	}
	if category == "" {
		category = domain.ExpenseOther
	}

	e := domain.Expense{
		ID:          s.newID(),
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        date,
		CreatedAt:   s.now(),
	}
	err := s.store.Commit(func(st *store.State) error {
		st.InsertExpense(e)
		return nil
	}, "expenses")
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete is the only mutation an expense supports after creation.
func (s *Service) Delete(id string) error {
	return s.store.Commit(func(st *store.State) error {
		if !st.RemoveExpense(id) {
			return ErrNotFound
		}
		return nil
	}, "expenses")
}

// SummaryByCategory totals the ledger per category.
func (s *Service) SummaryByCategory() map[string]int64 {
	out := make(map[string]int64)
	for _, e := range s.store.Expenses() {
		out[e.Category] += e.Amount
	}
	return out
}
