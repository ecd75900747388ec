package expense

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalUnmarshal(t *testing.T) {
	var req UpdateExpenseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Taxi","notes":null}`), &req))

	assert.True(t, req.Title.Set)
	assert.True(t, req.Title.Valid)
	assert.Equal(t, "Taxi", req.Title.Value)

	// Present but null.
	assert.True(t, req.Notes.Set)
	assert.False(t, req.Notes.Valid)

	// Absent entirely.
	assert.False(t, req.Amount.Set)
	assert.False(t, req.Category.Set)
}

func TestOptionalUnmarshalAmountPrecision(t *testing.T) {
	var req CreateExpenseRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amount":75.5}`), &req))

	assert.True(t, req.Amount.Valid)
	assert.Equal(t, "75.50", req.Amount.Value.StringFixed(2))
}

func TestCategoryValid(t *testing.T) {
	for _, c := range []Category{CategoryTravel, CategoryFood, CategorySupplies, CategoryOther} {
		assert.True(t, c.Valid(), "category %q", c)
	}
	for _, c := range []Category{"", "Travel", "TRAVEL", "groceries"} {
		assert.False(t, c.Valid(), "category %q", c)
	}
}

func TestExpenseJSON(t *testing.T) {
	notes := "Weekly grocery shopping"
	e := Expense{
		ID:          "9a1d8f7e-1b2c-3d4e-5f6a-7b8c9d0e1f2a",
		Title:       "Groceries",
		Amount:      decimal.RequireFromString("50.25"),
		Category:    CategoryFood,
		ExpenseDate: time.Date(2025, 9, 27, 0, 0, 0, 0, time.UTC),
		Notes:       &notes,
	}

	j := e.JSON()
	assert.Equal(t, "50.25", j.Amount)
	assert.Equal(t, "2025-09-27", j.ExpenseDate)
	assert.Equal(t, CategoryFood, j.Category)
	require.NotNil(t, j.Notes)
	assert.Equal(t, notes, *j.Notes)

	// amount always carries two decimals on the wire.
	e.Amount = decimal.RequireFromString("75.5")
	assert.Equal(t, "75.50", e.JSON().Amount)
	e.Amount = decimal.NewFromInt(50)
	assert.Equal(t, "50.00", e.JSON().Amount)
}
