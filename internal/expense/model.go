package expense

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for expense_date.
const dateLayout = "2006-01-02"

// Category is the closed set of expense categories.
type Category string

const (
	CategoryTravel   Category = "travel"
	CategoryFood     Category = "food"
	CategorySupplies Category = "supplies"
	CategoryOther    Category = "other"
)

// Valid reports whether c is one of the four known categories.
// Matching is case-sensitive.
func (c Category) Valid() bool {
	switch c {
	case CategoryTravel, CategoryFood, CategorySupplies, CategoryOther:
		return true
	}
	return false
}

type Expense struct {
	ID          string
	Title       string
	Amount      decimal.Decimal
	Category    Category
	ExpenseDate time.Time
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExpenseJSON is the wire representation of an Expense. Amount is a string
// with exactly two decimal places, expense_date a plain YYYY-MM-DD date.
type ExpenseJSON struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Amount      string    `json:"amount"`
	Category    Category  `json:"category"`
	ExpenseDate string    `json:"expense_date"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e *Expense) JSON() ExpenseJSON {
	return ExpenseJSON{
		ID:          e.ID,
		Title:       e.Title,
		Amount:      e.Amount.StringFixed(2),
		Category:    e.Category,
		ExpenseDate: e.ExpenseDate.Format(dateLayout),
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// Optional tracks whether a JSON field was present in the payload,
// distinguishing an absent field from an explicit null. Set means the key
// appeared at all; Valid means it carried a non-null value.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

type CreateExpenseRequest struct {
	Title       Optional[string]          `json:"title"`
	Amount      Optional[decimal.Decimal] `json:"amount"`
	Category    Optional[string]          `json:"category"`
	ExpenseDate Optional[string]          `json:"expense_date"` // YYYY-MM-DD
	Notes       Optional[string]          `json:"notes"`
}

// UpdateExpenseRequest carries the same fields as create, but every field is
// optional: omitted fields leave the stored record untouched.
type UpdateExpenseRequest struct {
	Title       Optional[string]          `json:"title"`
	Amount      Optional[decimal.Decimal] `json:"amount"`
	Category    Optional[string]          `json:"category"`
	ExpenseDate Optional[string]          `json:"expense_date"`
	Notes       Optional[string]          `json:"notes"`
}
