package expense

import "context"

// Service sits between the HTTP handlers and the repository. Every method is
// a straight delegation; it exists to keep transport code off persistence
// details.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListExpenses(ctx context.Context, f Filter) ([]Expense, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) GetExpense(ctx context.Context, id string) (*Expense, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) CreateExpense(ctx context.Context, req CreateExpenseRequest) (*Expense, error) {
	return s.repo.Create(ctx, req)
}

func (s *Service) UpdateExpense(ctx context.Context, id string, req UpdateExpenseRequest) (bool, error) {
	return s.repo.Update(ctx, id, req)
}

func (s *Service) DeleteExpense(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
