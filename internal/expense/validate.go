package expense

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const maxTitleLength = 255

// FieldErrors maps a field name to the list of violations recorded for it.
// It is the payload of the 422 validation envelope.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Validate checks the create profile: every field but notes is mandatory.
// It returns nil when the request is acceptable.
func (r CreateExpenseRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	checkTitle(errs, r.Title, true)
	checkAmount(errs, r.Amount, true)
	checkCategory(errs, r.Category, true)
	checkExpenseDate(errs, r.ExpenseDate, true)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks the update profile: a field is only validated when it is
// present in the payload, but a present field must satisfy the same rules as
// on create. Notes may be set to null to clear them.
func (r UpdateExpenseRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	checkTitle(errs, r.Title, false)
	checkAmount(errs, r.Amount, false)
	checkCategory(errs, r.Category, false)
	checkExpenseDate(errs, r.ExpenseDate, false)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func checkTitle(errs FieldErrors, title Optional[string], required bool) {
	if !title.Set {
		if required {
			errs.add("title", "The title field is required.")
		}
		return
	}
	if !title.Valid || title.Value == "" {
		errs.add("title", "The title field is required.")
		return
	}
	if utf8.RuneCountInString(title.Value) > maxTitleLength {
		errs.add("title", "The title field must not be greater than 255 characters.")
	}
}

func checkAmount(errs FieldErrors, amount Optional[decimal.Decimal], required bool) {
	if !amount.Set {
		if required {
			errs.add("amount", "The amount field is required.")
		}
		return
	}
	if !amount.Valid {
		errs.add("amount", "The amount field is required.")
		return
	}
	if amount.Value.IsNegative() {
		errs.add("amount", "The amount field must be at least 0.")
	}
}

func checkCategory(errs FieldErrors, category Optional[string], required bool) {
	if !category.Set {
		if required {
			errs.add("category", "The category field is required.")
		}
		return
	}
	if !category.Valid || category.Value == "" {
		errs.add("category", "The category field is required.")
		return
	}
	if !Category(category.Value).Valid() {
		errs.add("category", "The selected category is invalid.")
	}
}

func checkExpenseDate(errs FieldErrors, date Optional[string], required bool) {
	if !date.Set {
		if required {
			errs.add("expense_date", "The expense_date field is required.")
		}
		return
	}
	if !date.Valid || date.Value == "" {
		errs.add("expense_date", "The expense_date field is required.")
		return
	}
	if _, err := time.Parse(dateLayout, date.Value); err != nil {
		errs.add("expense_date", "The expense_date field must be a valid date.")
	}
}
