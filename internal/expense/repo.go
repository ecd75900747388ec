package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rnyll-pntnr/expense-module/internal/storage"
)

// Filter narrows a List call. Nil fields impose no constraint; present
// fields are AND-combined. Date bounds are inclusive at day granularity.
type Filter struct {
	Category  *Category
	StartDate *time.Time
	EndDate   *time.Time
}

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, title, amount_cents, category, expense_date, notes, created_at, updated_at`

// timeLayout is how timestamps are written to storage. Text timestamps keep
// the sqlite and Postgres paths identical; Postgres casts them to
// timestamptz on insert.
const timeLayout = time.RFC3339Nano

var placeholderPattern = regexp.MustCompile(`\$\d+`)

// rebind rewrites the Postgres-style $N placeholders for sqlite. Every query
// here uses each placeholder once, in order, so positional ? is equivalent.
func (r *Repository) rebind(q string) string {
	if r.db.Driver == storage.DriverSQLite {
		return placeholderPattern.ReplaceAllString(q, "?")
	}
	return q
}

func (r *Repository) List(ctx context.Context, f Filter) ([]Expense, error) {
	q := `SELECT ` + selectColumns + ` FROM expenses`

	var conds []string
	var args []any
	if f.Category != nil {
		args = append(args, string(*f.Category))
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.StartDate != nil {
		args = append(args, f.StartDate.Format(dateLayout))
		conds = append(conds, fmt.Sprintf("expense_date >= $%d", len(args)))
	}
	if f.EndDate != nil {
		args = append(args, f.EndDate.Format(dateLayout))
		conds = append(conds, fmt.Sprintf("expense_date <= $%d", len(args)))
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at ASC, id ASC"

	rows, err := r.db.SQL.QueryContext(ctx, r.rebind(q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// FindByID returns the matching expense, or (nil, nil) when no row exists.
// Absence is a normal outcome, not an error.
func (r *Repository) FindByID(ctx context.Context, id string) (*Expense, error) {
	row := r.db.SQL.QueryRowContext(
		ctx,
		r.rebind(`SELECT `+selectColumns+` FROM expenses WHERE id = $1`),
		id,
	)
	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create persists a validated request, assigning id and timestamps.
func (r *Repository) Create(ctx context.Context, req CreateExpenseRequest) (*Expense, error) {
	date, err := time.Parse(dateLayout, req.ExpenseDate.Value)
	if err != nil {
		return nil, fmt.Errorf("parse expense_date: %w", err)
	}

	now := time.Now().UTC()
	e := &Expense{
		ID:          uuid.NewString(),
		Title:       req.Title.Value,
		Amount:      req.Amount.Value.Round(2),
		Category:    Category(req.Category.Value),
		ExpenseDate: date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Notes.Valid {
		notes := req.Notes.Value
		e.Notes = &notes
	}

	_, err = r.db.SQL.ExecContext(
		ctx,
		r.rebind(`INSERT INTO expenses (`+selectColumns+`)
		          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`),
		e.ID,
		e.Title,
		amountCents(e.Amount),
		string(e.Category),
		e.ExpenseDate.Format(dateLayout),
		e.Notes,
		e.CreatedAt.Format(timeLayout),
		e.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Update applies only the fields present in req to the row with the given
// id and refreshes updated_at. It reports false when no such row exists.
func (r *Repository) Update(ctx context.Context, id string, req UpdateExpenseRequest) (bool, error) {
	var sets []string
	var args []any
	set := func(expr string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf(expr, len(args)))
	}

	if req.Title.Set {
		set("title = $%d", req.Title.Value)
	}
	if req.Amount.Set {
		set("amount_cents = $%d", amountCents(req.Amount.Value))
	}
	if req.Category.Set {
		set("category = $%d", req.Category.Value)
	}
	if req.ExpenseDate.Set {
		date, err := time.Parse(dateLayout, req.ExpenseDate.Value)
		if err != nil {
			return false, fmt.Errorf("parse expense_date: %w", err)
		}
		set("expense_date = $%d", date.Format(dateLayout))
	}
	if req.Notes.Set {
		var notes *string
		if req.Notes.Valid {
			v := req.Notes.Value
			notes = &v
		}
		set("notes = $%d", notes)
	}
	set("updated_at = $%d", time.Now().UTC().Format(timeLayout))

	args = append(args, id)
	q := fmt.Sprintf("UPDATE expenses SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	res, err := r.db.SQL.ExecContext(ctx, r.rebind(q), args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes the row with the given id (hard delete). It reports false
// when no such row exists.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.SQL.ExecContext(ctx, r.rebind(`DELETE FROM expenses WHERE id = $1`), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// amountCents converts a monetary amount to integer cents for storage,
// rounding half-up on the third decimal.
func amountCents(d decimal.Decimal) int64 {
	return d.Round(2).Shift(2).IntPart()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (*Expense, error) {
	var (
		e          Expense
		cents      int64
		rawDate    any
		rawCreated any
		rawUpdated any
		notes      sql.NullString
	)
	if err := row.Scan(&e.ID, &e.Title, &cents, &e.Category, &rawDate, &notes, &rawCreated, &rawUpdated); err != nil {
		return nil, err
	}

	e.Amount = decimal.New(cents, -2)

	date, err := parseStored(rawDate, dateLayout)
	if err != nil {
		return nil, err
	}
	e.ExpenseDate = date

	if e.CreatedAt, err = parseStored(rawCreated, timeLayout); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseStored(rawUpdated, timeLayout); err != nil {
		return nil, err
	}

	if notes.Valid {
		v := notes.String
		e.Notes = &v
	}
	return &e, nil
}

// parseStored copes with the two drivers: sqlite hands date and timestamp
// columns back as text, the pgx driver as time.Time.
func parseStored(v any, layout string) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		return time.Parse(layout, t)
	case []byte:
		return time.Parse(layout, string(t))
	default:
		return time.Time{}, fmt.Errorf("unexpected column type %T", v)
	}
}
