package model

// SuggestedExpenseCategories is offered by the expense form. It is a
// suggestion list only; Expense.Category stays an open string.
var SuggestedExpenseCategories = []string{
	"Grocery",
	"Supplies",
	"Utilities",
	"Rent",
	"Salaries",
	"Maintenance",
	"Marketing",
	"Other",
}

// Expense is one logged cost. Append-only: never edited or deleted.
type Expense struct {
	ID          string  `json:"id"`
	Timestamp   int64   `json:"timestamp"` // unix milliseconds
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Category    string  `json:"category"`
}
