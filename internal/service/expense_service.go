package service

import (
	"fmt"

	"go-resto-backoffice/internal/model"
	"go-resto-backoffice/internal/store"
	"go-resto-backoffice/pkg/validator"

	"github.com/google/uuid"
)

type ExpenseService interface {
	GetExpenses() []model.Expense
	AddExpense(req *model.Expense) (*model.Expense, error)
}

type expenseService struct {
	store *store.Store
}

func NewExpenseService(st *store.Store) ExpenseService {
	return &expenseService{store: st}
}

func (s *expenseService) GetExpenses() []model.Expense {
	return s.store.Expenses()
}

// AddExpense appends a new expense record. Expenses are append-only; there is
// no edit or delete path.
func (s *expenseService) AddExpense(req *model.Expense) (*model.Expense, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	req.ID = uuid.NewString()
	if req.Timestamp == 0 {
		req.Timestamp = model.NowMillis()
	}
	if req.Category == "" {
		req.Category = "Other"
	}
	expense := *req

	err := s.store.MutateExpenses(func(expenses []model.Expense) []model.Expense {
		return append([]model.Expense{expense}, expenses...)
	})
	if err != nil {
		return nil, err
	}
	return &expense, nil
}
