package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rnyll-pntnr/expense-module/internal/expense"
)

type Router struct {
	ExpenseHandler *expense.Handler
	WriteLimiter   fiber.Handler
}

// RegisterRoutes wires the expense resource under /v1/api/expenses.
func (r *Router) RegisterRoutes(app *fiber.App) {
	expenses := app.Group("/v1/api/expenses")

	expenses.Get("/", r.ExpenseHandler.ListExpenses)
	expenses.Get("/:id", r.ExpenseHandler.GetExpense)

	if r.WriteLimiter != nil {
		expenses.Post("/", r.WriteLimiter, r.ExpenseHandler.CreateExpense)
		expenses.Put("/:id", r.WriteLimiter, r.ExpenseHandler.UpdateExpense)
		expenses.Delete("/:id", r.WriteLimiter, r.ExpenseHandler.DeleteExpense)
	} else {
		expenses.Post("/", r.ExpenseHandler.CreateExpense)
		expenses.Put("/:id", r.ExpenseHandler.UpdateExpense)
		expenses.Delete("/:id", r.ExpenseHandler.DeleteExpense)
	}
}
