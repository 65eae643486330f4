package domain

import "time"

type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description" validate:"required"`
	Amount      int64     `json:"amount" validate:"gt=0"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpenseOther is the category used for ledger rows the system writes
// itself (gateway transaction fees, refunds).
const ExpenseOther = "other"
