package expense

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) ListExpenses(c *fiber.Ctx) error {
	var f Filter

	if v := strings.TrimSpace(c.Query("category")); v != "" {
		cat := Category(v)
		f.Category = &cat
	}
	if v := strings.TrimSpace(c.Query("start_date")); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "start_date must be YYYY-MM-DD")
		}
		f.StartDate = &t
	}
	if v := strings.TrimSpace(c.Query("end_date")); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "end_date must be YYYY-MM-DD")
		}
		f.EndDate = &t
	}

	items, err := h.Svc.ListExpenses(userContext(c), f)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list expenses: "+err.Error())
	}

	out := make([]ExpenseJSON, 0, len(items))
	for i := range items {
		out = append(out, items[i].JSON())
	}
	return c.JSON(fiber.Map{"data": out})
}

func (h *Handler) GetExpense(c *fiber.Ctx) error {
	e, err := h.Svc.GetExpense(userContext(c), c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch expense: "+err.Error())
	}
	if e == nil {
		return notFound(c)
	}
	return c.JSON(fiber.Map{"data": e.JSON()})
}

func (h *Handler) CreateExpense(c *fiber.Ctx) error {
	var req CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if errs := req.Validate(); errs != nil {
		return validationFailed(c, errs)
	}

	e, err := h.Svc.CreateExpense(userContext(c), req)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to add expense: "+err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": e.JSON()})
}

func (h *Handler) UpdateExpense(c *fiber.Ctx) error {
	var req UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if errs := req.Validate(); errs != nil {
		return validationFailed(c, errs)
	}

	id := c.Params("id")
	ok, err := h.Svc.UpdateExpense(userContext(c), id, req)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update expense: "+err.Error())
	}
	if !ok {
		return notFound(c)
	}

	e, err := h.Svc.GetExpense(userContext(c), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch expense: "+err.Error())
	}
	if e == nil {
		return notFound(c)
	}
	return c.JSON(fiber.Map{"data": e.JSON()})
}

func (h *Handler) DeleteExpense(c *fiber.Ctx) error {
	ok, err := h.Svc.DeleteExpense(userContext(c), c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete expense: "+err.Error())
	}
	if !ok {
		return notFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Expense not found."})
}

func validationFailed(c *fiber.Ctx, errs FieldErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"message": "Validation errors occurred",
		"data":    errs,
	})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
